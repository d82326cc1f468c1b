package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tutsync/internal/adapters/filesystem"
	mcpadapter "tutsync/internal/adapters/mcp"
	"tutsync/internal/adapters/sqlite"
	"tutsync/internal/config"
)

func main() {
	releaseFlag := flag.String("release", config.ReleaseDirPath(), "release store directory")
	workspaceFlag := flag.String("workspace", config.WorkspaceDirPath(), "workspace directory")
	flag.Parse()

	cfg := config.Default()
	cfg.ReleaseDir = *releaseFlag
	cfg.WorkspaceDir = *workspaceFlag
	cfg.JournalPath = config.DefaultJournalPath(cfg.WorkspaceDir)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("tutsync-mcp: %v", err)
	}

	release := filesystem.NewReleaseStore(cfg.ReleaseDir, cfg.Pattern, cfg.VersionFile)
	workspace := filesystem.NewWorkspace(cfg.WorkspaceDir, cfg.Pattern)

	journal, err := sqlite.Open(cfg.JournalPath)
	if err != nil {
		log.Fatalf("tutsync-mcp: %v", err)
	}
	defer journal.Close()

	mcpServer := server.NewMCPServer(
		"tutsync-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Simple health check that returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, release, workspace, journal, cfg.Exclusions)
	mcpadapter.RegisterWriteTools(mcpServer, release, workspace, journal, cfg.Exclusions)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("tutsync-mcp: %v", err)
	}
}
