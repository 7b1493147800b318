package par

import (
	"strings"

	"github.com/parlab/parlay/pkg/xerrors"
)

// Parse reads the Par notation and returns the graph it denotes.
//
// The grammar is token-based, with tokens separated by any whitespace:
//
//	program  = "begin" nodes "end"
//	nodes    = { ident | "begin" nodes "end" | "parbegin" nodes "parend" }
//
// A trailing semicolon on an identifier is tolerated and stripped.
// Malformed input yields an error with code [xerrors.CodeParse].
func Parse(src string) (Graph, error) {
	p := &parser{toks: strings.Fields(src)}
	if !p.accept("begin") {
		return Graph{}, xerrors.New(xerrors.CodeParse, "expected 'begin' to open the program")
	}
	nodes, err := p.parseNodes("end")
	if err != nil {
		return Graph{}, err
	}
	if !p.accept("end") {
		return Graph{}, xerrors.New(xerrors.CodeParse, "expected 'end' to close the program")
	}
	if !p.eof() {
		return Graph{}, xerrors.New(xerrors.CodeParse, "trailing input after closing 'end': %q", p.toks[p.pos])
	}
	return Graph{Nodes: nodes}, nil
}

type parser struct {
	toks []string
	pos  int
}

func (p *parser) eof() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() string {
	if p.eof() {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) accept(tok string) bool {
	if p.peek() == tok {
		p.pos++
		return true
	}
	return false
}

// parseNodes consumes nodes until the given closing keyword or the end of
// input. The closer itself is left unconsumed.
func (p *parser) parseNodes(close string) ([]Node, error) {
	var nodes []Node
	for !p.eof() && p.peek() != close {
		switch {
		case p.accept("begin"):
			children, err := p.parseNodes("end")
			if err != nil {
				return nil, err
			}
			if !p.accept("end") {
				return nil, xerrors.New(xerrors.CodeParse, "expected 'end' to close sequential block")
			}
			nodes = append(nodes, Sequence{Children: children})
		case p.accept("parbegin"):
			branches, err := p.parseNodes("parend")
			if err != nil {
				return nil, err
			}
			if !p.accept("parend") {
				return nil, xerrors.New(xerrors.CodeParse, "expected 'parend' to close parallel block")
			}
			nodes = append(nodes, Parallel{Branches: branches})
		case p.peek() == "end" || p.peek() == "parend":
			return nil, xerrors.New(xerrors.CodeParse, "unexpected %q", p.peek())
		default:
			name := strings.TrimSuffix(p.peek(), ";")
			if name == "" {
				return nil, xerrors.New(xerrors.CodeParse, "empty task name")
			}
			p.pos++
			nodes = append(nodes, Atomic{Name: name})
		}
	}
	return nodes, nil
}
