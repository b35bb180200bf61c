package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexcodex/epimake/makefile"
)

var (
	cfgFile   string
	workspace string

	globalSettings *makefile.Settings
)

// ExitError carries an exit code for failures that already printed their own
// output, so Execute can exit without repeating anything.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Execute is the entry point for the CLI.
func Execute() {
	ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI under the provided context.
func ExecuteContext(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		var exit *ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd wires the cobra tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "epimake",
		Short:         "EPITECH-style Makefile generator for C projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if workspace == "" {
				if wd, err := os.Getwd(); err == nil {
					workspace = wd
				} else {
					return err
				}
			}
			if cfgFile == "" {
				cfgFile = makefile.DefaultSettingsPath(workspace)
			}
			settings, err := makefile.LoadSettings(cfgFile)
			if err != nil {
				return err
			}
			globalSettings = settings
			return nil
		},
	}
	root.PersistentFlags().StringVar(&workspace, "workspace", "", "Workspace directory")
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to epimake settings file")

	root.AddCommand(
		newGenCmd(),
		newPreviewCmd(),
		newConfigCmd(),
		newHistoryCmd(),
		newServeCmd(),
		newRPCCmd(),
		newWizardCmd(),
	)
	return root
}

// currentSettings never returns nil, even before PersistentPreRunE has run.
func currentSettings() *makefile.Settings {
	if globalSettings == nil {
		return makefile.DefaultSettings()
	}
	return globalSettings
}
