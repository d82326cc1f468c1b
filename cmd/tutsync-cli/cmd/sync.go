package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tutsync/internal/adapters/prompt"
	"tutsync/internal/adapters/sqlite"
	"tutsync/internal/application"
	"tutsync/internal/application/commands"
	"tutsync/internal/ports"
)

var assumeYes bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the workspace with the release",
	Long: `Compute the reconciliation plan, print it, and apply it after
confirmation: refreshed and added documents are copied from the release,
removed documents are deleted from the workspace.

The prompt requires the literal input "yes"; anything else cancels the
sync before any file is touched. Applied runs are recorded in the sync
journal.

Examples:
  tutsync-cli sync
  tutsync-cli sync --yes    # skip the prompt (scripted use)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		release, workspace := Stores()

		var confirmer ports.Confirmer = prompt.NewConfirmer(os.Stdin, os.Stdout)
		if assumeYes {
			confirmer = prompt.Static{Proceed: true}
		}

		journal, err := sqlite.Open(Cfg().JournalPath)
		if err != nil {
			return err
		}
		defer journal.Close()

		syncCmd := commands.NewSyncCommand(release, workspace, confirmer, journal, os.Stdout, Cfg().Exclusions)
		result, err := syncCmd.Execute(context.Background())
		if err != nil {
			if errors.Is(err, application.ErrCancelled) {
				fmt.Println("Cancelled, no files were changed.")
				os.Exit(1)
			}
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "apply without prompting")
	rootCmd.AddCommand(syncCmd)
}
