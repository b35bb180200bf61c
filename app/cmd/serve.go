package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/lexcodex/epimake/persistence"
	"github.com/lexcodex/epimake/server"
)

// newServeCmd runs the HTTP render API until the context is cancelled.
func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP render API",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := currentSettings()
			api := &server.APIServer{
				Settings: settings,
				Logger:   log.New(cmd.ErrOrStderr(), "api ", log.LstdFlags),
			}
			if settings.History.Enabled {
				store, err := persistence.OpenHistoryStore(settings.HistoryPath(workspace))
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s Warning: history unavailable: %v\n", warnMark(), err)
				} else {
					defer store.Close()
					api.History = store
				}
			}
			if err := api.ServeContext(cmd.Context(), addr); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8750", "Listen address")
	return cmd
}
