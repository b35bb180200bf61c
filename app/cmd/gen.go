package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexcodex/epimake/makefile"
	"github.com/lexcodex/epimake/persistence"
)

// newGenCmd generates a Makefile from the historical argument grammar. Flag
// parsing stays disabled so the raw tokens reach makefile.ParseArgs intact.
func newGenCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "gen [options] <project_name> [binary_name] [sources...]",
		Aliases:            []string{"generate"},
		Short:              "Generate an EPITECH-style Makefile",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := makefile.ParseArgs(args)
			if err != nil {
				return usageFailure(cmd, err)
			}
			if err := cfg.Validate(); err != nil {
				return usageFailure(cmd, err)
			}
			return generateFromConfig(cmd, cfg)
		},
	}
}

// newPreviewCmd renders to stdout without touching the filesystem.
func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "preview [options] <project_name> [binary_name] [sources...]",
		Short:              "Render a Makefile to stdout without writing it",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := makefile.ParseArgs(args)
			if err != nil {
				return usageFailure(cmd, err)
			}
			if err := cfg.Validate(); err != nil {
				return usageFailure(cmd, err)
			}
			for _, warning := range cfg.Normalize() {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s Warning: %s\n", warnMark(), warning)
			}
			opts := makefile.RenderOptions{
				Year:     time.Now().Year(),
				BuildDir: currentSettings().BuildDir,
			}
			fmt.Fprint(cmd.OutOrStdout(), makefile.Render(cfg, opts))
			return nil
		},
	}
}

// usageFailure prints the reason (when there is one) and the usage block,
// then signals exit status 1. The caller already produced no other output.
func usageFailure(cmd *cobra.Command, err error) error {
	out := cmd.OutOrStdout()
	var usage *makefile.UsageError
	if errors.As(err, &usage) {
		if usage.Msg != "" {
			fmt.Fprintf(out, "%s Error: %s\n", errorMark(), usage.Msg)
		}
	} else {
		fmt.Fprintf(out, "%s Error: %s\n", errorMark(), err)
	}
	fmt.Fprint(out, usageText)
	return &ExitError{Code: 1}
}

// generateFromConfig runs normalize, summary, write, and history recording
// for an already validated Config. The wizard feeds the same path.
func generateFromConfig(cmd *cobra.Command, cfg *makefile.Config) error {
	out := cmd.OutOrStdout()
	settings := currentSettings()
	for _, warning := range cfg.Normalize() {
		fmt.Fprintf(out, "%s Warning: %s\n", warnMark(), warning)
	}
	printSummary(cmd, cfg, settings.BuildDir)
	opts := makefile.RenderOptions{
		Year:     time.Now().Year(),
		BuildDir: settings.BuildDir,
	}
	if err := makefile.Write(settings.Output, cfg, opts); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s Makefile generated: %s\n", statusMark(), settings.Output)
	recordGeneration(cmd, cfg, settings.BuildDir, settings.Output)
	return nil
}

func printSummary(cmd *cobra.Command, cfg *makefile.Config, buildDir string) {
	out := cmd.OutOrStdout()
	mark := statusMark()
	fmt.Fprintf(out, "%s Generating Makefile for project: %s\n", mark, cfg.ProjectName)
	fmt.Fprintf(out, "%s Compiler: %s\n", mark, makefile.DefaultCC)
	fmt.Fprintf(out, "%s Binary name: %s\n", mark, cfg.BinaryName)
	fmt.Fprintf(out, "%s Source files: %s\n", mark, strings.Join(cfg.SrcFiles, ", "))
	if cfg.HasTests() {
		fmt.Fprintf(out, "%s Test files: %s\n", mark, strings.Join(cfg.TestFiles, ", "))
		fmt.Fprintf(out, "%s Tests: Criterion with coverage enabled\n", mark)
	}
	fmt.Fprintf(out, "%s Include directories: %s\n", mark, strings.Join(cfg.IncludeDirs, ", "))
	fmt.Fprintf(out, "%s Build directory: %s/ (preserves source structure)\n", mark, buildDir)
}

// recordGeneration appends to the history store; failures never block output.
func recordGeneration(cmd *cobra.Command, cfg *makefile.Config, buildDir, outputPath string) {
	settings := currentSettings()
	if !settings.History.Enabled {
		return
	}
	store, err := persistence.OpenHistoryStore(settings.HistoryPath(workspace))
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Warning: history unavailable: %v\n", warnMark(), err)
		return
	}
	defer store.Close()
	rec := &persistence.Record{
		ProjectName: cfg.ProjectName,
		BinaryName:  cfg.BinaryName,
		Sources:     cfg.SrcFiles,
		Tests:       cfg.TestFiles,
		BuildDir:    buildDir,
		OutputPath:  outputPath,
	}
	if err := store.Append(rec); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Warning: could not record generation: %v\n", warnMark(), err)
	}
}
