// Package notation dispatches between the three textual task-graph
// notations by name or file extension.
//
// The IR notation is the pivot: [Decode] brings any notation into an
// [ir.Graph] and [Encode] writes one out in any notation, so converting
// between two surface notations is a decode followed by an encode.
package notation

import (
	"path/filepath"
	"strings"

	"github.com/parlab/parlay/pkg/forkjoin"
	"github.com/parlab/parlay/pkg/ir"
	"github.com/parlab/parlay/pkg/par"
	"github.com/parlab/parlay/pkg/xerrors"
)

// Format identifies one of the three notations.
type Format string

const (
	// IR is the canonical structured notation ($...$).
	IR Format = "ir"
	// Par is the block-structured parbegin/parend notation.
	Par Format = "par"
	// ForkJoin is the linear fork/join/goto notation.
	ForkJoin Format = "fk"
)

// File extensions per notation.
const (
	ExtIR       = ".graph"
	ExtPar      = ".par"
	ExtForkJoin = ".fk"
)

// ParseFormat resolves a format name as given on the command line.
// Unknown names yield an error with code [xerrors.CodeInvalidFormat].
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case IR:
		return IR, nil
	case Par:
		return Par, nil
	case ForkJoin:
		return ForkJoin, nil
	}
	return "", xerrors.New(xerrors.CodeInvalidFormat,
		"unknown format %q (want %q, %q or %q)", name, IR, Par, ForkJoin)
}

// FromPath infers the notation from a file extension: .graph for IR,
// .par for Par, .fk for Fork-Join. Any other extension yields an error
// with code [xerrors.CodeInvalidFormat].
func FromPath(path string) (Format, error) {
	switch filepath.Ext(path) {
	case ExtIR:
		return IR, nil
	case ExtPar:
		return Par, nil
	case ExtForkJoin:
		return ForkJoin, nil
	}
	return "", xerrors.New(xerrors.CodeInvalidFormat,
		"cannot infer notation from %q (want %s, %s or %s)", path, ExtIR, ExtPar, ExtForkJoin)
}

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	switch f {
	case Par:
		return ExtPar
	case ForkJoin:
		return ExtForkJoin
	default:
		return ExtIR
	}
}

// Decode parses src in the given notation and returns the IR graph.
func Decode(f Format, src string) (ir.Graph, error) {
	switch f {
	case IR:
		return ir.Parse(src)
	case Par:
		g, err := par.Parse(src)
		if err != nil {
			return ir.Graph{}, err
		}
		return par.ToIR(g), nil
	case ForkJoin:
		g, err := forkjoin.Parse(src)
		if err != nil {
			return ir.Graph{}, err
		}
		return forkjoin.ToIR(g), nil
	}
	return ir.Graph{}, xerrors.New(xerrors.CodeInvalidFormat, "unknown format %q", f)
}

// Encode writes the IR graph in the given notation. Encoding to Par
// fails with [xerrors.CodeCannotRepresent] when the graph carries
// dependency annotations or terminal markers; the other notations are
// total (Fork-Join silently drops both).
func Encode(f Format, g ir.Graph) (string, error) {
	switch f {
	case IR:
		return g.String(), nil
	case Par:
		p, err := par.FromIR(g)
		if err != nil {
			return "", err
		}
		return p.String(), nil
	case ForkJoin:
		return forkjoin.FromIR(g).String(), nil
	}
	return "", xerrors.New(xerrors.CodeInvalidFormat, "unknown format %q", f)
}
