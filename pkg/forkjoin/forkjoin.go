// Package forkjoin implements the linear Fork-Join notation: a flat list
// of labeled statements over fork/join/goto instructions and named tasks.
//
// The notation has no nesting. Parallelism is expressed by fork
// instructions that branch to labeled statements, and sequencing by
// fall-through and goto. The reserved goto target "end" terminates a
// control path without resolving to a statement.
//
// Two conversions pivot through the canonical IR:
//
//   - [FromIR] lowers a nested IR graph into linear statements, generating
//     labels and deferring non-first parallel branches to the end of the
//     program.
//   - [ToIR] recovers the nested shape from the statement list by building
//     a control-flow graph and structuring it into regions. It tolerates
//     malformed input (unresolved labels, unreachable statements, cycles)
//     by degrading to a best-effort partial tree instead of failing.
//
// Dependency annotations and terminal markers of the IR are not
// representable here; lowering drops them, mirroring the Par notation's
// restriction in the opposite direction.
package forkjoin

// EndTarget is the reserved goto target that terminates a control path.
// It never resolves to a statement.
const EndTarget = "end"

// Node is one Fork-Join instruction.
// The set of implementations is closed: Atomic, Fork, Join, and Goto.
type Node interface {
	fkNode()
}

// Atomic is a single named task.
type Atomic struct {
	Name string
}

// Fork branches control to the statement at Target while also continuing
// at the following statement.
type Fork struct {
	Target string
}

// Join marks a convergence point for forked branches. The optional ID
// names the counter variable of the classic fork/join formulation; it is
// carried through parsing and serialization but has no structural meaning.
type Join struct {
	ID string
}

// Goto transfers control to the statement at Target, or terminates the
// path when Target is [EndTarget] or does not resolve.
type Goto struct {
	Target string
}

func (Atomic) fkNode() {}
func (Fork) fkNode()   {}
func (Join) fkNode()   {}
func (Goto) fkNode()   {}

// Stmt is one line of a Fork-Join program: an instruction with an
// optional label. Labels are unique within a graph.
type Stmt struct {
	Label string // empty when the statement is unlabeled
	Node  Node
}

// Graph is an ordered Fork-Join statement list. Statement order is
// significant: unannotated control falls through to the next statement.
type Graph struct {
	Stmts []Stmt
}

// New creates a graph from the given statements.
func New(stmts ...Stmt) Graph {
	return Graph{Stmts: stmts}
}
