// Package pkg provides the core libraries of the parlay task-graph toolkit.
//
// # Overview
//
// Parlay works with concurrent task-graph programs written in three
// textual notations of different expressive power, and converts freely
// between them through a canonical intermediate representation:
//
//	Fork-Join text (.fk)      Par text (.par)
//	        ↓ [forkjoin]            ↓ [par]
//	        └────────→ [ir] ←───────┘
//	                    ↓
//	               [validate]
//	                    ↓
//	                 [flow]
//	                    ↓
//	               [render] → SVG/PNG/DOT/JSON
//
// # Main Packages
//
// [ir] - The canonical intermediate representation: nested sequential and
// parallel blocks over named atomic tasks, with optional dependency
// annotations and terminal markers. The $...$ notation parser and
// serializer live here.
//
// [par] - The block-structured Par notation (begin/end, parbegin/parend).
// Structurally weaker than the IR: converting an annotated program to Par
// fails rather than dropping information.
//
// [forkjoin] - The linear Fork-Join notation (fork, join, goto over
// labeled statements). Lowering from the IR is generative (labels, join
// counters, deferred branches); the reverse direction rebuilds the nested
// structure from a control-flow graph and tolerates malformed input.
//
// [notation] - Format dispatch by name or file extension, pivoting every
// conversion through the IR.
//
// [validate] - Dependency annotation checks: every dependency must name
// an existing task and the relation must be acyclic. All findings are
// collected into one error value.
//
// [flow] - The execution graph of a validated program: one node per task,
// control-flow and dependency edges, JSON export.
//
// [render] - Graphviz diagrams of execution graphs (DOT, SVG, PNG).
//
// [xerrors] - Structured errors with machine-readable codes shared by all
// of the above.
//
// # Quick Start
//
// Convert a Fork-Join program to the Par notation:
//
//	g, err := notation.Decode(notation.ForkJoin, src)
//	if err != nil { ... }
//	out, err := notation.Encode(notation.Par, g)
//
// Validate and render:
//
//	v, err := validate.Validate(g)
//	if err != nil { ... }
//	svg, err := render.SVG(ctx, render.ToDOT(flow.Build(v), render.Options{}))
//
// [ir]: https://pkg.go.dev/github.com/parlab/parlay/pkg/ir
// [par]: https://pkg.go.dev/github.com/parlab/parlay/pkg/par
// [forkjoin]: https://pkg.go.dev/github.com/parlab/parlay/pkg/forkjoin
// [notation]: https://pkg.go.dev/github.com/parlab/parlay/pkg/notation
// [validate]: https://pkg.go.dev/github.com/parlab/parlay/pkg/validate
// [flow]: https://pkg.go.dev/github.com/parlab/parlay/pkg/flow
// [render]: https://pkg.go.dev/github.com/parlab/parlay/pkg/render
// [xerrors]: https://pkg.go.dev/github.com/parlab/parlay/pkg/xerrors
package pkg
