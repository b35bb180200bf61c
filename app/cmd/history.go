package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexcodex/epimake/persistence"
)

// newHistoryCmd lists recent generations recorded in the history store.
func newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent Makefile generations",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory()
			if err != nil {
				return err
			}
			defer store.Close()
			records, err := store.Recent(limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No generations recorded")
				return nil
			}
			for _, rec := range records {
				fmt.Fprintf(out, "%s  %s (%s) -> %s\n",
					rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					rec.ProjectName,
					strings.Join(rec.Sources, ", "),
					rec.OutputPath,
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of records to show")
	cmd.AddCommand(newHistoryClearCmd())
	return cmd
}

// newHistoryClearCmd empties the history store.
func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all recorded generations",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory()
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
			return nil
		},
	}
}

func openHistory() (*persistence.HistoryStore, error) {
	settings := currentSettings()
	if !settings.History.Enabled {
		return nil, errors.New("history is disabled in settings")
	}
	return persistence.OpenHistoryStore(settings.HistoryPath(workspace))
}
