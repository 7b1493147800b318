package render

import (
	"bytes"
	"fmt"

	"github.com/parlab/parlay/pkg/flow"
)

// Options configures diagram generation.
type Options struct {
	// Rankdir sets the Graphviz layout direction ("TB", "LR", ...).
	// Empty defaults to "TB".
	Rankdir string

	// Label is an optional caption drawn under the diagram.
	Label string
}

// ToDOT converts an execution graph to Graphviz DOT format. The
// resulting DOT string can be rendered with [SVG] or [PNG], or fed to
// external Graphviz tools.
//
// Control-flow edges are drawn solid; dependency edges dashed with a
// "dep" label, so the two orderings stay distinguishable in the diagram.
func ToDOT(g *flow.Graph, opts Options) string {
	rankdir := opts.Rankdir
	if rankdir == "" {
		rankdir = "TB"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	if opts.Label != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Label)
	}
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q;\n", n.ID)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if e.Kind == flow.KindDep {
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed, label=%q];\n", e.From, e.To, e.Kind)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
