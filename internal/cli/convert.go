package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parlab/parlay/pkg/notation"
)

// newConvertCmd creates the convert command.
func newConvertCmd() *cobra.Command {
	var (
		file   string
		inline string
		output string
		to     string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a program between notations",
		Long: `Convert a program between the IR, Par and Fork-Join notations.

The input notation is inferred from the file extension (.graph, .par, .fk);
inline input is always read as IR. The target notation comes from the output
file extension, or from --to when writing to stdout.

Converting to Par fails when the program carries dependency annotations or
terminal markers, which Par cannot express. Converting to Fork-Join drops
both.`,
		Example: `  parlay convert -f pipeline.graph -o pipeline.fk
  parlay convert -f pipeline.par --to ir
  parlay convert -i '$a,{b,c},d$' --to fk`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), file, inline, output, to)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "input file (.graph, .par or .fk)")
	cmd.Flags().StringVarP(&inline, "inline", "i", "", "inline IR input")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; stdout when omitted")
	cmd.Flags().StringVar(&to, "to", "", "target notation for stdout output: ir, par or fk")

	return cmd
}

func runConvert(ctx context.Context, file, inline, output, to string) error {
	logger := loggerFromContext(ctx)

	src, from, err := readInput(file, inline)
	if err != nil {
		return err
	}

	target, err := resolveTarget(output, to)
	if err != nil {
		return err
	}
	logger.Debug("converting", "from", from, "to", target)

	p := newProgress(logger)
	graph, err := notation.Decode(from, src)
	if err != nil {
		return err
	}
	out, err := notation.Encode(target, graph)
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Println(out)
		return nil
	}
	if err := os.WriteFile(output, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	p.done(fmt.Sprintf("Converted %s to %s", from, target))
	printSuccess("Wrote %s notation", target)
	printFile(output)
	return nil
}

// resolveTarget picks the target notation: the output file extension
// wins, then --to, then IR as the default for stdout output.
func resolveTarget(output, to string) (notation.Format, error) {
	if output != "" {
		return notation.FromPath(output)
	}
	if to != "" {
		return notation.ParseFormat(to)
	}
	return notation.IR, nil
}
