package forkjoin

// cfg is the transient control-flow graph behind [ToIR]. Statements are
// addressed by their index into the original list, which sidesteps the
// ownership cycles a Fork-Join graph can contain on looping or malformed
// input. A cfg is built once per conversion and discarded afterwards.
type cfg struct {
	stmts  []Stmt
	labels map[string]int // label -> statement index
	succs  [][]int        // statement index -> successor indices
}

// buildCFG resolves labels to statement indices and records successor
// edges:
//
//   - goto: one edge to its target, unless the target is "end" or does
//     not resolve (dead end)
//   - fork: an edge to the following statement (continuation) and, if the
//     target resolves, an edge to it
//   - atomic and join: one edge to the following statement, if any
func buildCFG(g Graph) *cfg {
	c := &cfg{
		stmts:  g.Stmts,
		labels: make(map[string]int),
		succs:  make([][]int, len(g.Stmts)),
	}
	for idx, stmt := range g.Stmts {
		if stmt.Label != "" {
			c.labels[stmt.Label] = idx
		}
	}
	for idx, stmt := range g.Stmts {
		switch n := stmt.Node.(type) {
		case Goto:
			if n.Target == EndTarget {
				continue
			}
			if target, ok := c.labels[n.Target]; ok {
				c.succs[idx] = append(c.succs[idx], target)
			}
		case Fork:
			if idx+1 < len(g.Stmts) {
				c.succs[idx] = append(c.succs[idx], idx+1)
			}
			if target, ok := c.labels[n.Target]; ok {
				c.succs[idx] = append(c.succs[idx], target)
			}
		case Atomic, Join:
			if idx+1 < len(g.Stmts) {
				c.succs[idx] = append(c.succs[idx], idx+1)
			}
		}
	}
	return c
}

// node returns the instruction at idx, or nil when idx is out of range.
func (c *cfg) node(idx int) Node {
	if idx < 0 || idx >= len(c.stmts) {
		return nil
	}
	return c.stmts[idx].Node
}

// next returns the first successor of idx, or -1 when the statement is a
// dead end.
func (c *cfg) next(idx int) int {
	if idx < 0 || idx >= len(c.succs) || len(c.succs[idx]) == 0 {
		return -1
	}
	return c.succs[idx][0]
}

// isJoin reports whether the statement at idx is a join instruction.
func (c *cfg) isJoin(idx int) bool {
	_, ok := c.node(idx).(Join)
	return ok
}
