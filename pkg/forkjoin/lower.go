package forkjoin

import (
	"fmt"

	"github.com/parlab/parlay/pkg/ir"
)

// FromIR lowers a structured graph to fork/join statements.
//
// Sequences emit their children back to back. A parallel region keeps
// its first branch inline: one fork per remaining branch is emitted
// first, then the inline branch, then a labeled join that every deferred
// branch jumps back to. Deferred branches accumulate and are flushed
// after the main program, each closed by a goto to its join label.
//
// Dependency annotations have no equivalent here and are dropped; a
// terminal atomic is followed by goto end. Labels are derived from a
// single monotone counter so that two branches starting with the same
// atomic name still get distinct labels.
func FromIR(g ir.Graph) Graph {
	c := &converter{}
	for _, n := range g.Nodes {
		c.convert(n)
	}
	c.finalize()
	return Graph{Stmts: c.stmts}
}

type converter struct {
	stmts    []Stmt
	deferred []deferredBranch
	counter  int
}

// deferredBranch is a non-inline parallel branch waiting to be emitted:
// its body statements, the label it is entered through, and the join
// label it must jump back to.
type deferredBranch struct {
	label     string
	joinLabel string
	stmts     []Stmt
}

func (c *converter) nextCount() int {
	n := c.counter
	c.counter++
	return n
}

func (c *converter) emit(label string, node Node) {
	c.stmts = append(c.stmts, Stmt{Label: label, Node: node})
}

func (c *converter) convert(n ir.Node) {
	switch n := n.(type) {
	case ir.Atomic:
		c.emit("", Atomic{Name: n.Name})
		if n.Terminal {
			c.emit("", Goto{Target: EndTarget})
		}
	case ir.Sequence:
		for _, child := range n.Children {
			c.convert(child)
		}
	case ir.Parallel:
		c.convertParallel(n)
	}
}

func (c *converter) convertParallel(p ir.Parallel) {
	if len(p.Branches) == 0 {
		return
	}
	if len(p.Branches) == 1 {
		c.convert(p.Branches[0])
		return
	}

	joinLabel := fmt.Sprintf("L%d", c.nextCount())
	joinID := fmt.Sprintf("c%d", c.counter)

	// Fork instructions for every branch except the inline first one.
	labels := make([]string, len(p.Branches))
	for i, branch := range p.Branches[1:] {
		label := fmt.Sprintf("L%s_%d", firstAtomicName(branch), c.nextCount())
		labels[i+1] = label
		c.emit("", Fork{Target: label})
	}

	c.convert(p.Branches[0])
	c.emit(joinLabel, Join{ID: joinID})

	for i, branch := range p.Branches[1:] {
		sub := &converter{counter: c.counter}
		sub.convert(branch)
		c.counter = sub.counter
		c.deferred = append(c.deferred, deferredBranch{
			label:     labels[i+1],
			joinLabel: joinLabel,
			stmts:     sub.stmts,
		})
		c.deferred = append(c.deferred, sub.deferred...)
	}
}

// finalize flushes the deferred branches behind the main program. A
// branch that lowered to nothing is skipped; its fork target stays
// unresolved rather than dangling a bare goto.
func (c *converter) finalize() {
	for _, d := range c.deferred {
		if len(d.stmts) == 0 {
			continue
		}
		first := d.stmts[0]
		first.Label = d.label
		c.stmts = append(c.stmts, first)
		c.stmts = append(c.stmts, d.stmts[1:]...)
		c.emit("", Goto{Target: d.joinLabel})
	}
}

// firstAtomicName finds the leftmost atomic under n, used to seed branch
// labels with something readable.
func firstAtomicName(n ir.Node) string {
	switch n := n.(type) {
	case ir.Atomic:
		return n.Name
	case ir.Sequence:
		for _, child := range n.Children {
			if name := firstAtomicName(child); name != "unknown" {
				return name
			}
		}
	case ir.Parallel:
		for _, branch := range n.Branches {
			if name := firstAtomicName(branch); name != "unknown" {
				return name
			}
		}
	}
	return "unknown"
}
