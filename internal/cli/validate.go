package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parlab/parlay/pkg/notation"
	"github.com/parlab/parlay/pkg/validate"
	"github.com/parlab/parlay/pkg/xerrors"
)

// newValidateCmd creates the validate command.
func newValidateCmd() *cobra.Command {
	var (
		file   string
		inline string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a program's dependency annotations",
		Long: `Check a program's dependency annotations.

Every dependency must name a task that exists somewhere in the program,
and the dependency relation must be acyclic. All violations are reported
in one pass.`,
		Example: `  parlay validate -f pipeline.graph
  parlay validate -i '$a,b#{a}$'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), file, inline)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "input file (.graph, .par or .fk)")
	cmd.Flags().StringVarP(&inline, "inline", "i", "", "inline IR input")

	return cmd
}

func runValidate(ctx context.Context, file, inline string) error {
	logger := loggerFromContext(ctx)

	src, from, err := readInput(file, inline)
	if err != nil {
		return err
	}
	if file != "" {
		printInfo("Checking %s", file)
	}

	graph, err := notation.Decode(from, src)
	if err != nil {
		return err
	}
	logger.Debug("validating", "notation", from, "atomics", len(graph.Atomics()))

	if _, err := validate.Validate(graph); err != nil {
		var list xerrors.List
		if !errors.As(err, &list) {
			return err
		}
		for _, e := range list {
			printError("%s", e.Message)
		}
		return fmt.Errorf("%d validation error(s)", len(list))
	}

	printSuccess("Program is %s", StyleSuccess.Render("valid"))
	printDetail("%d tasks checked", len(graph.Atomics()))
	return nil
}
