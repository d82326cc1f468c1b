package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tutsync/internal/adapters/sqlite"
	"tutsync/internal/application/commands"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent applied sync runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		journal, err := sqlite.Open(Cfg().JournalPath)
		if err != nil {
			return err
		}
		defer journal.Close()

		histCmd := commands.NewHistoryCommand(journal, historyLimit)
		records, err := histCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("No sync runs recorded.")
			return nil
		}

		for _, rec := range records {
			fmt.Printf("%s  release %s  %d refreshed, %d added, %d removed\n",
				rec.StartedAt.Format("2006-01-02 15:04:05"),
				rec.Version, rec.Refreshed, rec.Added, rec.Removed)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", commands.DefaultHistoryLimit, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
