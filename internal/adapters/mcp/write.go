package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tutsync/internal/adapters/prompt"
	"tutsync/internal/application"
	"tutsync/internal/application/commands"
	"tutsync/internal/ports"
)

// RegisterWriteTools adds the apply-capable synchronizer tools to the MCP
// server. There is no interactive prompt over MCP, so the confirmation
// gate becomes an explicit confirm argument: without it the tool only
// reports the plan.
func RegisterWriteTools(s *server.MCPServer, release ports.ReleaseStore, workspace ports.Workspace, journal ports.Journal, exclusions []string) {
	s.AddTool(syncTool(), syncHandler(release, workspace, journal, exclusions))
}

// --- sync ---

func syncTool() mcp.Tool {
	return mcp.NewTool("sync",
		mcp.WithDescription("Reconcile the workspace with the release store: overwrite refreshed documents, copy added ones, delete removed ones. Without confirm=true this only reports the plan."),
		mcp.WithBoolean("confirm",
			mcp.Description("Set to true to actually apply the plan"),
		),
	)
}

func syncHandler(release ports.ReleaseStore, workspace ports.Workspace, journal ports.Journal, exclusions []string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		confirm := req.GetBool("confirm", false)

		var sb strings.Builder
		cmd := commands.NewSyncCommand(release, workspace, prompt.Static{Proceed: confirm}, journal, &sb, exclusions)
		result, err := cmd.Execute(ctx)
		if err != nil {
			// Declined by the static confirmer: the plan report is the answer
			if errors.Is(err, application.ErrCancelled) {
				sb.WriteString("\nPass confirm=true to apply this plan.\n")
				return mcp.NewToolResultText(sb.String()), nil
			}
			return toolError(err)
		}

		sb.WriteString("\n")
		sb.WriteString(result.Message)
		sb.WriteString("\n")
		return mcp.NewToolResultText(sb.String()), nil
	}
}
