package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tutsync/internal/application/commands"
	"tutsync/internal/ports"
)

// RegisterReadTools adds all read-only synchronizer tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, release ports.ReleaseStore, workspace ports.Workspace, journal ports.Journal, exclusions []string) {
	s.AddTool(planTool(), planHandler(release, workspace, exclusions))
	s.AddTool(versionTool(), versionHandler(release))
	s.AddTool(historyTool(), historyHandler(journal))
}

// --- plan ---

func planTool() mcp.Tool {
	return mcp.NewTool("plan",
		mcp.WithDescription("Compute the reconciliation plan between the release store and the workspace without applying it. Lists refreshed, added, and removed documents."),
	)
}

func planHandler(release ports.ReleaseStore, workspace ports.Workspace, exclusions []string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewPlanCommand(release, workspace, exclusions)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		commands.WriteReport(&sb, result)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- version ---

func versionTool() mcp.Tool {
	return mcp.NewTool("version",
		mcp.WithDescription("Return the short version token of the release store."),
	)
}

func versionHandler(release ports.ReleaseStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewVersionCommand(release)
		version, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(version), nil
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("List recent applied sync runs, newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of runs to return (default 20)"),
		),
	)
}

func historyHandler(journal ports.Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := req.GetInt("limit", commands.DefaultHistoryLimit)

		cmd := commands.NewHistoryCommand(journal, limit)
		records, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(records) == 0 {
			return mcp.NewToolResultText("No sync runs recorded."), nil
		}

		var sb strings.Builder
		for _, rec := range records {
			fmt.Fprintf(&sb, "%s  release %s  %d refreshed, %d added, %d removed\n",
				rec.StartedAt.Format("2006-01-02 15:04:05"),
				rec.Version, rec.Refreshed, rec.Added, rec.Removed)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// toolError wraps an error as a tool result so the client sees the message
func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
