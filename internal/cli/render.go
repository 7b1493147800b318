package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parlab/parlay/pkg/flow"
	"github.com/parlab/parlay/pkg/notation"
	"github.com/parlab/parlay/pkg/render"
	"github.com/parlab/parlay/pkg/validate"
)

// Output formats of the render command.
const (
	renderSVG  = "svg"
	renderPNG  = "png"
	renderDOT  = "dot"
	renderJSON = "json"
)

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	var (
		file    string
		inline  string
		output  string
		format  string
		rankdir string
		label   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the execution graph of a program",
		Long: `Render the execution graph of a program.

The program is parsed, validated, and reduced to its execution graph:
one node per task, with control-flow and dependency edges. The graph is
then written as an SVG or PNG diagram, as Graphviz DOT source, or as JSON.

Defaults for --format and --rankdir can be set in ` + configFile + `;
flags win over config values.`,
		Example: `  parlay render -f pipeline.graph -o pipeline.svg
  parlay render -f pipeline.fk --format dot
  parlay render -i '$a,{b,c},d$' --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Render.Format
			}
			if format == "" {
				format = renderSVG
			}
			if rankdir == "" {
				rankdir = cfg.Render.Rankdir
			}
			return runRender(cmd.Context(), renderParams{
				file:    file,
				inline:  inline,
				output:  output,
				format:  strings.ToLower(format),
				rankdir: rankdir,
				label:   label,
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "input file (.graph, .par or .fk)")
	cmd.Flags().StringVarP(&inline, "inline", "i", "", "inline IR input")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; stdout for dot and json")
	cmd.Flags().StringVar(&format, "format", "", "output format: svg (default), png, dot, json")
	cmd.Flags().StringVar(&rankdir, "rankdir", "", "layout direction: TB (default), LR, BT, RL")
	cmd.Flags().StringVar(&label, "label", "", "diagram caption")

	return cmd
}

type renderParams struct {
	file    string
	inline  string
	output  string
	format  string
	rankdir string
	label   string
}

func runRender(ctx context.Context, params renderParams) error {
	logger := loggerFromContext(ctx)

	src, from, err := readInput(params.file, params.inline)
	if err != nil {
		return err
	}

	graph, err := notation.Decode(from, src)
	if err != nil {
		return err
	}
	validated, err := validate.Validate(graph)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	fg := flow.Build(validated)
	logger.Debug("execution graph built", "nodes", len(fg.Nodes), "edges", len(fg.Edges))

	switch params.format {
	case renderJSON:
		if params.output == "" {
			return flow.WriteJSON(fg, os.Stdout)
		}
		if err := flow.ExportJSON(fg, params.output); err != nil {
			return err
		}
	case renderDOT, renderSVG, renderPNG:
		dot := render.ToDOT(fg, render.Options{Rankdir: params.rankdir, Label: params.label})
		if params.output == "" {
			if params.format != renderDOT {
				return fmt.Errorf("%s output requires --output", params.format)
			}
			fmt.Print(dot)
			return nil
		}
		data := []byte(dot)
		switch params.format {
		case renderSVG:
			if data, err = render.SVG(ctx, dot); err != nil {
				return err
			}
		case renderPNG:
			if data, err = render.PNG(ctx, dot); err != nil {
				return err
			}
		}
		if err := os.WriteFile(params.output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", params.output, err)
		}
	default:
		return fmt.Errorf("unknown render format %q (want svg, png, dot or json)", params.format)
	}

	p.done(fmt.Sprintf("Rendered %s", params.format))
	printSuccess("Rendered execution graph")
	printFile(params.output)
	printStats(len(fg.Nodes), len(fg.Edges))
	return nil
}
