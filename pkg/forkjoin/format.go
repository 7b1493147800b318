package forkjoin

import "strings"

// String returns the textual form of the program. Statements are indented
// four spaces, or eight while inside a labeled branch; a label starts a
// branch and a goto or join ends it:
//
//	begin
//	    s0
//	    fork Ls2_1
//	    s1
//	    L0: join c1
//	    s3
//	    Ls2_1: s2
//	        goto L0
//	end
//
// Parsing the result with [Parse] yields a structurally equal graph.
func (g Graph) String() string {
	var b strings.Builder
	b.WriteString("begin\n")
	inBranch := false
	for _, stmt := range g.Stmts {
		if stmt.Label != "" {
			b.WriteString("    ")
			b.WriteString(stmt.Label)
			b.WriteString(": ")
			inBranch = true
		} else if inBranch {
			b.WriteString("        ")
		} else {
			b.WriteString("    ")
		}
		switch n := stmt.Node.(type) {
		case Atomic:
			b.WriteString(n.Name)
		case Fork:
			b.WriteString("fork ")
			b.WriteString(n.Target)
		case Goto:
			b.WriteString("goto ")
			b.WriteString(n.Target)
			inBranch = false
		case Join:
			b.WriteString("join")
			if n.ID != "" {
				b.WriteByte(' ')
				b.WriteString(n.ID)
			}
			inBranch = false
		}
		b.WriteByte('\n')
	}
	b.WriteString("end")
	return b.String()
}
