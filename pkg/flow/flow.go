// Package flow derives the execution graph of a validated IR graph: which
// atomic tasks exist and which must complete before which.
//
// Nodes are keyed by atomic name, so repeated occurrences of a name
// collapse into one node. Edges come from two sources: control flow
// (sequencing and parallel block boundaries) and explicit dependency
// annotations, the latter tagged with [KindDep].
package flow

import (
	"github.com/parlab/parlay/pkg/ir"
	"github.com/parlab/parlay/pkg/validate"
)

// KindDep marks an edge that comes from an explicit dependency
// annotation rather than from control flow.
const KindDep = "dep"

// Graph is the execution graph in its serialization format.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one task, keyed by its atomic name.
type Node struct {
	ID string `json:"id"`
}

// Edge is a directed happens-before constraint. Kind is [KindDep] for
// annotation edges and empty for control-flow edges.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Kind string `json:"kind,omitempty"`
}

// Build derives the execution graph of a validated IR graph.
//
// Control-flow edges thread a predecessor set through the node list: an
// atomic draws an edge from every current predecessor and then replaces
// the set, a terminal atomic replaces it with nothing, a sequence
// threads the set through its children, and a parallel block hands the
// incoming set to every branch and continues with the union of the
// branch outcomes. Dependency annotations are added in a second pass as
// [KindDep] edges from the dependency to the dependent.
//
// Nodes appear in first-encounter order and duplicate edges are
// dropped, so the output is deterministic.
func Build(v validate.Validated) *Graph {
	b := &builder{
		seen:     make(map[string]bool),
		edgeSeen: make(map[Edge]bool),
	}
	nodes := v.Graph().Nodes
	b.thread(nodes, nil)
	b.depEdges(nodes)
	return &Graph{Nodes: b.nodes, Edges: b.edges}
}

type builder struct {
	nodes    []Node
	edges    []Edge
	seen     map[string]bool
	edgeSeen map[Edge]bool
}

func (b *builder) addNode(name string) {
	if !b.seen[name] {
		b.seen[name] = true
		b.nodes = append(b.nodes, Node{ID: name})
	}
}

func (b *builder) addEdge(e Edge) {
	if !b.edgeSeen[e] {
		b.edgeSeen[e] = true
		b.edges = append(b.edges, e)
	}
}

// thread walks nodes with the current predecessor set and returns the
// set left after the last node.
func (b *builder) thread(nodes []ir.Node, prev []string) []string {
	for _, n := range nodes {
		switch n := n.(type) {
		case ir.Atomic:
			b.addNode(n.Name)
			for _, p := range prev {
				b.addEdge(Edge{From: p, To: n.Name})
			}
			if n.Terminal {
				prev = nil
			} else {
				prev = []string{n.Name}
			}
		case ir.Sequence:
			prev = b.thread(n.Children, prev)
		case ir.Parallel:
			var out []string
			for _, branch := range n.Branches {
				out = append(out, b.thread([]ir.Node{branch}, prev)...)
			}
			prev = out
		}
	}
	return prev
}

func (b *builder) depEdges(nodes []ir.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case ir.Atomic:
			for _, dep := range n.Deps {
				if b.seen[dep] {
					b.addEdge(Edge{From: dep, To: n.Name, Kind: KindDep})
				}
			}
		case ir.Sequence:
			b.depEdges(n.Children)
		case ir.Parallel:
			b.depEdges(n.Branches)
		}
	}
}
