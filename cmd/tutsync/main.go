package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tutsync/internal/adapters/editor"
	"tutsync/internal/adapters/filesystem"
	"tutsync/internal/adapters/sqlite"
	"tutsync/internal/adapters/tui"
	"tutsync/internal/config"
)

func main() {
	cfg := config.Default()

	// Initialize adapters
	release := filesystem.NewReleaseStore(cfg.ReleaseDir, cfg.Pattern, cfg.VersionFile)
	workspace := filesystem.NewWorkspace(cfg.WorkspaceDir, cfg.Pattern)
	editorOpener := editor.NewOpener()

	journal, err := sqlite.Open(cfg.JournalPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer journal.Close()

	// Create and run TUI app
	app := tui.NewApp(release, workspace, journal, cfg.Exclusions, editorOpener)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
