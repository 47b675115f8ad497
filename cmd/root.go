// =============================================================================
// Vocabulary XLSX Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Run without a
// subcommand, the root command performs the conversion:
//
//   german_english_vocabulary.csv  ->  german_english_vocabulary.xlsx
//
// COBRA CLI STRUCTURE:
//   rootCmd (vocab-xlsx)          converts the configured CSV file
//   ├── processCmd (process)      same as the root command
//   ├── inspectCmd (inspect)     prints the summary of an existing workbook
//   └── versionCmd (version)     prints build information
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose, --input, --output, --sheet)
//   2. Loading the configuration file (optional at the default path)
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/vocab-xlsx/internal/config"
	"github.com/ginjaninja78/vocab-xlsx/internal/logging"
	"github.com/ginjaninja78/vocab-xlsx/internal/ui"
)

// =============================================================================
// GLOBAL OPTIONS
// =============================================================================

// globalOptions holds the values of the persistent flags.
type globalOptions struct {
	// cfgFile is the path to the configuration file.
	cfgFile string

	// verbose enables debug logging.
	verbose bool

	// inputPath, outputPath and sheetName override the configuration file.
	inputPath  string
	outputPath string
	sheetName  string
}

// session is what every command needs after flags and config are resolved.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	runID  string
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "vocab-xlsx",
		Short: "Convert a German-English vocabulary CSV file into an Excel workbook",
		Long: `vocab-xlsx reads german_english_vocabulary.csv from the current directory and
writes german_english_vocabulary.xlsx with a single sheet named "German Vocabulary".
It then prints the output path, the number of words, the column names and the
first rows of the table.

Every setting can be changed in converter.yaml or with flags; with neither,
the command needs no arguments.

Example Usage:
  vocab-xlsx                                # Convert with the defaults
  vocab-xlsx --input words.csv --sheet Wörter
  vocab-xlsx inspect                        # Summarize the existing workbook`,

		Args: cobra.NoArgs,

		// Errors are printed once by Execute.
		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, opts)
		},
	}

	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================
	// Persistent flags are available to this command and all subcommands.

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", config.DefaultConfigFile,
		"Path to the configuration file (optional when left at the default)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging")
	flags.StringVar(&opts.inputPath, "input", "",
		"CSV file to convert (default "+config.DefaultInputPath+")")
	flags.StringVar(&opts.outputPath, "output", "",
		"Workbook to write (default "+config.DefaultOutputPath+")")
	flags.StringVar(&opts.sheetName, "sheet", "",
		"Sheet name in the workbook (default \""+config.DefaultSheetName+"\")")

	rootCmd.AddCommand(newProcessCmd(opts))
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		ui.New(os.Stderr).Error("Error: %v", err)
		os.Exit(1)
	}
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	flags := cmd.Flags()

	// A missing file is fine at the default path, not when asked for explicitly.
	optional := !flags.Changed("config")
	cfg, err := config.Load(opts.cfgFile, optional)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flags.Changed("input") {
		cfg.InputPath = opts.inputPath
	}
	if flags.Changed("output") {
		cfg.OutputPath = opts.outputPath
	}
	if flags.Changed("sheet") {
		cfg.SheetName = opts.sheetName
	}

	runID, err := logging.Setup(logging.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Verbose: opts.verbose,
		Writer:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	logger := slog.Default()

	logger.Debug("configuration loaded",
		"config", opts.cfgFile,
		"input", cfg.InputPath,
		"output", cfg.OutputPath,
		"sheet", cfg.SheetName,
	)

	return &session{cfg: cfg, logger: logger, runID: runID}, nil
}
