package render

import (
	"strings"
	"testing"

	"github.com/parlab/parlay/pkg/flow"
)

func testGraph() *flow.Graph {
	return &flow.Graph{
		Nodes: []flow.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []flow.Edge{
			{From: "a", To: "b"},
			{From: "a", To: "c"},
			{From: "b", To: "c", Kind: flow.KindDep},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testGraph(), Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=TB;",
		`"a";`,
		`"a" -> "b";`,
		`"a" -> "c";`,
		`"b" -> "c" [style=dashed, label="dep"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTOptions(t *testing.T) {
	dot := ToDOT(testGraph(), Options{Rankdir: "LR", Label: "pipeline"})
	if !strings.Contains(dot, "rankdir=LR;") {
		t.Errorf("DOT output missing rankdir=LR:\n%s", dot)
	}
	if !strings.Contains(dot, `label="pipeline";`) {
		t.Errorf("DOT output missing graph label:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(&flow.Graph{}, Options{})
	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty graph produced malformed DOT:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>
<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("viewBox not normalized:\n%s", out)
	}
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("pixel dimensions not set:\n%s", out)
	}
	if strings.Contains(out, "pt") {
		t.Errorf("pt units survived normalization:\n%s", out)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte("<svg></svg>")
	if got := normalizeViewBox(in); string(got) != string(in) {
		t.Errorf("input without viewBox was modified: %s", got)
	}
}
