package ir

import "strings"

// String returns the canonical textual form of the graph: the top-level
// nodes comma-joined and wrapped in dollar signs, e.g.
//
//	$s0,{s1,[s2,s3]},s4#{s1}!$
//
// Parsing the result with [Parse] yields a structurally equal graph.
func (g Graph) String() string {
	var b strings.Builder
	b.WriteByte('$')
	writeNodes(&b, g.Nodes)
	b.WriteByte('$')
	return b.String()
}

func writeNodes(b *strings.Builder, nodes []Node) {
	for i, n := range nodes {
		if i > 0 {
			b.WriteByte(',')
		}
		writeNode(b, n)
	}
}

func writeNode(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case Atomic:
		b.WriteString(n.Name)
		if len(n.Deps) > 0 {
			b.WriteString("#{")
			b.WriteString(strings.Join(n.Deps, ","))
			b.WriteByte('}')
		}
		if n.Terminal {
			b.WriteByte('!')
		}
	case Sequence:
		b.WriteByte('[')
		writeNodes(b, n.Children)
		b.WriteByte(']')
	case Parallel:
		b.WriteByte('{')
		writeNodes(b, n.Branches)
		b.WriteByte('}')
	}
}
