package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/vocab-xlsx/internal/converter"
)

// newInspectCmd builds the 'inspect' command.
func newInspectCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [workbook]",
		Short: "Print the summary of an existing workbook",
		Long: `Inspect reads a workbook (by default the configured output file) and prints
the same summary as a conversion run. The configured sheet is read; if the
workbook has no sheet with that name, its first sheet is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			path := rt.cfg.OutputPath
			if len(args) == 1 {
				path = args[0]
			}

			conv := converter.New(rt.cfg,
				converter.WithLogger(rt.logger),
				converter.WithOutput(cmd.OutOrStdout()),
				converter.WithRunID(rt.runID),
			)

			return conv.Inspect(path).Error
		},
	}
}
