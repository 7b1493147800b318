// Package par implements the block-structured Par notation: begin/end
// sequential blocks and parbegin/parend parallel blocks over named tasks.
//
// Par is the weakest of the three notations. It cannot express dependency
// annotations or terminal markers, so converting from the canonical IR
// fails loudly (code [xerrors.CodeCannotRepresent]) the moment either is
// encountered - data is never dropped silently. The opposite direction is
// total: every Par graph maps to an IR graph with empty dependency lists.
package par

import (
	"github.com/parlab/parlay/pkg/ir"
	"github.com/parlab/parlay/pkg/xerrors"
)

// Node is one vertex of a Par graph.
// The set of implementations is closed: Atomic, Sequence, and Parallel.
type Node interface {
	parNode()
}

// Atomic is a single named task. Par atomics carry no annotations.
type Atomic struct {
	Name string
}

// Sequence is a begin/end block executed in order.
type Sequence struct {
	Children []Node
}

// Parallel is a parbegin/parend block of concurrent branches.
type Parallel struct {
	Branches []Node
}

func (Atomic) parNode()   {}
func (Sequence) parNode() {}
func (Parallel) parNode() {}

// Graph is an ordered list of top-level Par nodes, rendered inside one
// outer begin/end block.
type Graph struct {
	Nodes []Node
}

// New creates a graph from the given top-level nodes.
func New(nodes ...Node) Graph {
	return Graph{Nodes: nodes}
}

// ToIR maps the Par graph onto the canonical IR. The mapping is purely
// structural: every atomic task becomes an IR atomic with no dependencies
// and terminal unset. It never fails.
func ToIR(g Graph) ir.Graph {
	nodes := make([]ir.Node, len(g.Nodes))
	for i, n := range g.Nodes {
		nodes[i] = nodeToIR(n)
	}
	return ir.Graph{Nodes: nodes}
}

func nodeToIR(n Node) ir.Node {
	switch n := n.(type) {
	case Atomic:
		return ir.Atomic{Name: n.Name}
	case Sequence:
		children := make([]ir.Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = nodeToIR(c)
		}
		return ir.Sequence{Children: children}
	case Parallel:
		branches := make([]ir.Node, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = nodeToIR(b)
		}
		return ir.Parallel{Branches: branches}
	}
	return nil
}

// FromIR maps an IR graph onto the Par notation. Par cannot express
// dependency annotations or terminal markers; the first atomic carrying
// either makes the conversion fail with [xerrors.CodeCannotRepresent].
func FromIR(g ir.Graph) (Graph, error) {
	nodes := make([]Node, len(g.Nodes))
	for i, n := range g.Nodes {
		pn, err := nodeFromIR(n)
		if err != nil {
			return Graph{}, err
		}
		nodes[i] = pn
	}
	return Graph{Nodes: nodes}, nil
}

func nodeFromIR(n ir.Node) (Node, error) {
	switch n := n.(type) {
	case ir.Atomic:
		if len(n.Deps) > 0 {
			return nil, xerrors.New(xerrors.CodeCannotRepresent,
				"task %q has dependencies, which Par notation cannot express", n.Name)
		}
		if n.Terminal {
			return nil, xerrors.New(xerrors.CodeCannotRepresent,
				"task %q is terminal, which Par notation cannot express", n.Name)
		}
		return Atomic{Name: n.Name}, nil
	case ir.Sequence:
		children := make([]Node, len(n.Children))
		for i, c := range n.Children {
			pn, err := nodeFromIR(c)
			if err != nil {
				return nil, err
			}
			children[i] = pn
		}
		return Sequence{Children: children}, nil
	case ir.Parallel:
		branches := make([]Node, len(n.Branches))
		for i, b := range n.Branches {
			pn, err := nodeFromIR(b)
			if err != nil {
				return nil, err
			}
			branches[i] = pn
		}
		return Parallel{Branches: branches}, nil
	}
	return nil, xerrors.New(xerrors.CodeInternal, "unknown IR node %T", n)
}
