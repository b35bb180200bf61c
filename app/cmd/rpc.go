package cmd

import (
	"context"
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/lexcodex/epimake/server"
)

// newRPCCmd answers JSON-RPC render requests on stdio, or TCP with --addr.
func newRPCCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "rpc",
		Short: "Serve the JSON-RPC render service",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := server.NewRPCService(
				currentSettings(),
				log.New(cmd.ErrOrStderr(), "rpc ", log.LstdFlags),
			)
			var err error
			if addr == "" {
				err = svc.ServeStdio(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			} else {
				err = svc.ListenAndServe(cmd.Context(), addr)
			}
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "TCP listen address (default: stdio)")
	return cmd
}
