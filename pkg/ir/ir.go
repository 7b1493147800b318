// Package ir defines the canonical task-graph representation that every
// notation converts through.
//
// A graph is an ordered list of nodes, implicitly sequential at the top
// level. Three node kinds exist and the set is closed: [Atomic] tasks,
// [Sequence] blocks, and [Parallel] blocks. Consumers are expected to
// type-switch exhaustively over the three kinds; no other implementation
// of [Node] can be constructed outside this package.
//
// Atomic tasks may declare named dependencies on other tasks and may be
// marked terminal, meaning control never flows from them to a structural
// successor even when later siblings exist. Neither annotation is checked
// at construction time - the validate package resolves them.
//
// Graphs are immutable values. Conversions to and from the other notations
// (par, forkjoin) produce new graphs and never mutate their input.
package ir

// Node is one vertex of the structured task graph.
// The set of implementations is closed: Atomic, Sequence, and Parallel.
type Node interface {
	// irNode keeps the union closed to this package.
	irNode()
}

// Atomic is a single named task.
type Atomic struct {
	Name string // Task identifier, unique per graph by convention

	// Deps lists names of tasks this task depends on, in declaration
	// order. Resolution is deferred to the validate package.
	Deps []string

	// Terminal marks a task with no structural successor: control ends
	// here even when later siblings exist in the enclosing block.
	Terminal bool
}

// Sequence is an ordered block of nodes executed one after another.
type Sequence struct {
	Children []Node
}

// Parallel is a block of branches executed concurrently.
type Parallel struct {
	Branches []Node
}

func (Atomic) irNode()   {}
func (Sequence) irNode() {}
func (Parallel) irNode() {}

// Graph is an ordered list of top-level nodes.
// The zero value is a valid empty graph.
type Graph struct {
	Nodes []Node
}

// New creates a graph from the given top-level nodes.
func New(nodes ...Node) Graph {
	return Graph{Nodes: nodes}
}

// Atomics returns every atomic task in the graph in a left-to-right
// structural walk. Nested Sequence and Parallel blocks are flattened;
// duplicate names are not collapsed.
func (g Graph) Atomics() []Atomic {
	var out []Atomic
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			switch n := n.(type) {
			case Atomic:
				out = append(out, n)
			case Sequence:
				walk(n.Children)
			case Parallel:
				walk(n.Branches)
			}
		}
	}
	walk(g.Nodes)
	return out
}
