package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lexcodex/epimake/app/wizard"
)

// newWizardCmd walks the interactive prompts, then reuses the gen pipeline.
func newWizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Build a Makefile interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			program := tea.NewProgram(wizard.New())
			finalModel, err := program.Run()
			if err != nil {
				return err
			}
			model, ok := finalModel.(wizard.Model)
			if !ok {
				return errors.New("unexpected wizard model")
			}
			cfg, ok := model.Config()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
			if err := cfg.Validate(); err != nil {
				return usageFailure(cmd, err)
			}
			return generateFromConfig(cmd, cfg)
		},
	}
}
