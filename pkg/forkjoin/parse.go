package forkjoin

import (
	"strings"

	"github.com/parlab/parlay/pkg/xerrors"
)

// Parse reads the Fork-Join notation and returns the graph it denotes.
//
// The notation is line-based: one statement per line inside an outer
// begin/end pair. A statement is one of
//
//	[label:] ident
//	[label:] fork <target>
//	[label:] join [<id>]
//	[label:] goto <target>
//
// Blank lines are skipped; indentation is ignored. Malformed input yields
// an error with code [xerrors.CodeParse].
func Parse(src string) (Graph, error) {
	var lines []string
	for _, ln := range strings.Split(src, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	if len(lines) == 0 || lines[0] != "begin" {
		return Graph{}, xerrors.New(xerrors.CodeParse, "expected 'begin' to open the program")
	}
	if lines[len(lines)-1] != "end" {
		return Graph{}, xerrors.New(xerrors.CodeParse, "expected 'end' to close the program")
	}

	var g Graph
	seen := make(map[string]bool)
	for _, ln := range lines[1 : len(lines)-1] {
		stmt, err := parseStmt(ln)
		if err != nil {
			return Graph{}, err
		}
		if stmt.Label != "" {
			if seen[stmt.Label] {
				return Graph{}, xerrors.New(xerrors.CodeParse, "duplicate label %q", stmt.Label)
			}
			seen[stmt.Label] = true
		}
		g.Stmts = append(g.Stmts, stmt)
	}
	return g, nil
}

func parseStmt(line string) (Stmt, error) {
	fields := strings.Fields(line)

	var stmt Stmt
	if label, ok := strings.CutSuffix(fields[0], ":"); ok {
		if label == "" {
			return Stmt{}, xerrors.New(xerrors.CodeParse, "empty label in %q", line)
		}
		stmt.Label = label
		fields = fields[1:]
		if len(fields) == 0 {
			return Stmt{}, xerrors.New(xerrors.CodeParse, "label %q without a statement", label)
		}
	}

	switch fields[0] {
	case "fork":
		if len(fields) != 2 {
			return Stmt{}, xerrors.New(xerrors.CodeParse, "fork requires exactly one target in %q", line)
		}
		stmt.Node = Fork{Target: fields[1]}
	case "goto":
		if len(fields) != 2 {
			return Stmt{}, xerrors.New(xerrors.CodeParse, "goto requires exactly one target in %q", line)
		}
		stmt.Node = Goto{Target: fields[1]}
	case "join":
		switch len(fields) {
		case 1:
			stmt.Node = Join{}
		case 2:
			stmt.Node = Join{ID: fields[1]}
		default:
			return Stmt{}, xerrors.New(xerrors.CodeParse, "join takes at most one counter id in %q", line)
		}
	default:
		if len(fields) != 1 {
			return Stmt{}, xerrors.New(xerrors.CodeParse, "unexpected input after task name in %q", line)
		}
		stmt.Node = Atomic{Name: fields[0]}
	}
	return stmt, nil
}
