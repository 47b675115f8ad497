// =============================================================================
// Vocabulary XLSX Converter - Process Command
// =============================================================================
//
// This file defines the 'process' command and the conversion run shared with
// the root command.
//
// COMMAND USAGE:
//   vocab-xlsx process [flags]
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Load the CSV file
//   3. Save the workbook (and read it back to verify)
//   4. Print the summary to stdout
//
// Any failure stops the pipeline and the process exits with status 1.
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/vocab-xlsx/internal/converter"
	"github.com/ginjaninja78/vocab-xlsx/internal/ui"
)

// newProcessCmd builds the 'process' command.
func newProcessCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Convert the CSV file to an Excel workbook",
		Long: `The process command does the same as running vocab-xlsx without a
subcommand: it loads the CSV file, writes the workbook, and prints a summary.

Nothing is written when the CSV file is missing or malformed. An existing
workbook at the output path is overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, opts)
		},
	}
}

// runProcess orchestrates one conversion.
func runProcess(cmd *cobra.Command, opts *globalOptions) error {
	rt, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	conv := converter.New(rt.cfg,
		converter.WithLogger(rt.logger),
		converter.WithOutput(cmd.OutOrStdout()),
		converter.WithRunID(rt.runID),
	)

	status := ui.New(cmd.ErrOrStderr())
	if opts.verbose {
		status.Info("Converting %s into %s (sheet %q)", rt.cfg.InputPath, rt.cfg.OutputPath, rt.cfg.SheetName)
	}

	result := conv.Run()
	if result.Error != nil {
		rt.logger.Error("conversion failed", "error", result.Error)
		return result.Error
	}

	if opts.verbose {
		status.Success("Converted %d rows into %s in %s",
			result.Stats.RowsProcessed, result.OutputFile, result.Stats.ProcessingTime)
	}

	return nil
}
