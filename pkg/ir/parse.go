package ir

import (
	"fmt"

	"github.com/parlab/parlay/pkg/xerrors"
)

// Parse reads the canonical IR notation and returns the graph it denotes.
//
// The grammar, with whitespace allowed between any two tokens:
//
//	program  = "$" nodes "$"
//	nodes    = [ node { "," node } ]
//	node     = "{" nodes "}" | "[" nodes "]" | task
//	task     = ident [ "#{" ident { "," ident } "}" ] [ "!" ]
//
// Curly braces denote parallel blocks, square brackets sequential blocks,
// "#{...}" a dependency list and a trailing "!" the terminal marker.
// Malformed input yields an error with code [xerrors.CodeParse].
func Parse(src string) (Graph, error) {
	s := &scanner{src: src}
	s.skipSpace()
	if !s.consume('$') {
		return Graph{}, s.errf("expected '$' to open the graph")
	}
	nodes, err := s.parseNodes('$')
	if err != nil {
		return Graph{}, err
	}
	if !s.consume('$') {
		return Graph{}, s.errf("expected '$' to close the graph")
	}
	s.skipSpace()
	if !s.eof() {
		return Graph{}, s.errf("trailing input after closing '$'")
	}
	return Graph{Nodes: nodes}, nil
}

// scanner is a minimal cursor over the source text. All parse functions
// leave the cursor on the first byte they did not consume.
type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) consume(ch byte) bool {
	s.skipSpace()
	if !s.eof() && s.src[s.pos] == ch {
		s.pos++
		return true
	}
	return false
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) errf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if s.eof() {
		return xerrors.New(xerrors.CodeParse, "%s at end of input", msg)
	}
	return xerrors.New(xerrors.CodeParse, "%s at offset %d (%q)", msg, s.pos, s.src[s.pos])
}

// parseNodes parses a possibly empty comma-separated node list, stopping
// before the given closing delimiter.
func (s *scanner) parseNodes(close byte) ([]Node, error) {
	var nodes []Node
	s.skipSpace()
	if s.peek() == close {
		return nodes, nil
	}
	for {
		n, err := s.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
		if !s.consume(',') {
			return nodes, nil
		}
	}
}

func (s *scanner) parseNode() (Node, error) {
	s.skipSpace()
	switch s.peek() {
	case '{':
		s.pos++
		branches, err := s.parseNodes('}')
		if err != nil {
			return nil, err
		}
		if !s.consume('}') {
			return nil, s.errf("expected '}' to close parallel block")
		}
		return Parallel{Branches: branches}, nil
	case '[':
		s.pos++
		children, err := s.parseNodes(']')
		if err != nil {
			return nil, err
		}
		if !s.consume(']') {
			return nil, s.errf("expected ']' to close sequential block")
		}
		return Sequence{Children: children}, nil
	default:
		return s.parseTask()
	}
}

func (s *scanner) parseTask() (Node, error) {
	name := s.ident()
	if name == "" {
		return nil, s.errf("expected task name")
	}
	task := Atomic{Name: name}

	s.skipSpace()
	if s.peek() == '#' {
		s.pos++
		if !s.consume('{') {
			return nil, s.errf("expected '{' after '#'")
		}
		for {
			dep := s.ident()
			if dep == "" {
				return nil, s.errf("expected dependency name")
			}
			task.Deps = append(task.Deps, dep)
			if !s.consume(',') {
				break
			}
		}
		if !s.consume('}') {
			return nil, s.errf("expected '}' to close dependency list")
		}
	}
	if s.consume('!') {
		task.Terminal = true
	}
	return task, nil
}

// ident reads an identifier: letters, digits and underscores.
// Returns the empty string when the cursor is not on an identifier byte.
func (s *scanner) ident() string {
	s.skipSpace()
	start := s.pos
	for !s.eof() && isIdent(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

func isIdent(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		return true
	case ch >= '0' && ch <= '9':
		return true
	case ch == '_':
		return true
	}
	return false
}
