package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tutsync/internal/application/commands"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what a sync would do, without changing anything",
	Long: `Compute and print the reconciliation plan: which documents would be
refreshed from the release, which would be newly added, and which would
be deleted from the workspace. No files are touched.

Examples:
  tutsync-cli plan
  tutsync-cli plan -r /srv/tutorials/release -w ~/tutorials`,
	RunE: func(cmd *cobra.Command, args []string) error {
		release, workspace := Stores()

		planCmd := commands.NewPlanCommand(release, workspace, Cfg().Exclusions)
		result, err := planCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		commands.WriteReport(os.Stdout, result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
