package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/parlab/parlay/pkg/buildinfo"
)

// Execute runs the parlay CLI with the given context and returns an error
// if any command fails.
//
// The function sets up the root command with all subcommands (convert,
// render, validate, inspect), configures logging based on the --verbose
// flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "parlay",
		Short:        "Parlay converts between task-graph notations",
		Long:         `Parlay is a CLI tool for working with concurrent task-graph programs: it converts between the structured IR, block-structured Par and linear Fork-Join notations, validates dependency annotations, and renders execution graphs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate("parlay " + buildinfo.String() + "\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newInspectCmd())

	return root.ExecuteContext(ctx)
}
