package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tutsync/internal/application/commands"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the release store's version token",
	RunE: func(cmd *cobra.Command, args []string) error {
		release, _ := Stores()

		verCmd := commands.NewVersionCommand(release)
		version, err := verCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
