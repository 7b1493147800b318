package par

import "strings"

// indentStep is the per-level indentation of the serialized form.
const indentStep = "  "

// String returns the indented textual form of the graph: the top-level
// nodes inside one outer begin/end block, e.g.
//
//	begin
//	  s0
//	  parbegin
//	    s1
//	    s2
//	  parend
//	end
//
// Parsing the result with [Parse] yields a structurally equal graph.
func (g Graph) String() string {
	var b strings.Builder
	b.WriteString("begin\n")
	for _, n := range g.Nodes {
		writeNode(&b, n, 1)
	}
	b.WriteString("end")
	return b.String()
}

func writeNode(b *strings.Builder, n Node, indent int) {
	pad := strings.Repeat(indentStep, indent)
	switch n := n.(type) {
	case Atomic:
		b.WriteString(pad)
		b.WriteString(n.Name)
		b.WriteByte('\n')
	case Parallel:
		b.WriteString(pad)
		b.WriteString("parbegin\n")
		for _, c := range n.Branches {
			writeNode(b, c, indent+1)
		}
		b.WriteString(pad)
		b.WriteString("parend\n")
	case Sequence:
		b.WriteString(pad)
		b.WriteString("begin\n")
		for _, c := range n.Children {
			writeNode(b, c, indent+1)
		}
		b.WriteString(pad)
		b.WriteString("end\n")
	}
}
