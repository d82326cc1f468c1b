package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tutsync/internal/adapters/filesystem"
	"tutsync/internal/config"
	"tutsync/internal/ports"
)

var (
	configPath   string
	releaseDir   string
	workspaceDir string

	cfg       *config.Config
	release   ports.ReleaseStore
	workspace ports.Workspace
)

var rootCmd = &cobra.Command{
	Use:   "tutsync-cli",
	Short: "CLI for syncing tutorial notebooks with a release",
	Long: `tutsync-cli reconciles a working directory of tutorial notebooks
against a released reference set.

It compares the two directories by filename, reports which documents
would be refreshed, added, or removed, and applies the plan only after
explicit confirmation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}

		// Flags override config and environment
		if releaseDir != "" {
			cfg.ReleaseDir = releaseDir
		}
		if workspaceDir != "" {
			cfg.WorkspaceDir = workspaceDir
			// The journal moves with the workspace it describes
			cfg.JournalPath = config.DefaultJournalPath(workspaceDir)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		release = filesystem.NewReleaseStore(cfg.ReleaseDir, cfg.Pattern, cfg.VersionFile)
		workspace = filesystem.NewWorkspace(cfg.WorkspaceDir, cfg.Pattern)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "f", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVarP(&releaseDir, "release", "r", "", "release store directory (default from TUTSYNC_RELEASE_DIR)")
	rootCmd.PersistentFlags().StringVarP(&workspaceDir, "workspace", "w", "", "workspace directory (default from TUTSYNC_WORKSPACE_DIR)")
}

// Stores returns the initialized release store and workspace
func Stores() (ports.ReleaseStore, ports.Workspace) {
	return release, workspace
}

// Cfg returns the effective configuration
func Cfg() *config.Config {
	return cfg
}
