package flow

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/parlab/parlay/pkg/ir"
	"github.com/parlab/parlay/pkg/validate"
)

func build(t *testing.T, src string) *Graph {
	t.Helper()
	g, err := ir.Parse(src)
	if err != nil {
		t.Fatalf("ir.Parse(%q) returned error: %v", src, err)
	}
	v, err := validate.Validate(g)
	if err != nil {
		t.Fatalf("Validate(%q) returned error: %v", src, err)
	}
	return Build(v)
}

func TestBuildSequence(t *testing.T) {
	g := build(t, "$a,b,c$")
	wantNodes := []Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	wantEdges := []Edge{{From: "a", To: "b"}, {From: "b", To: "c"}}
	if !reflect.DeepEqual(g.Nodes, wantNodes) {
		t.Errorf("nodes = %v, want %v", g.Nodes, wantNodes)
	}
	if !reflect.DeepEqual(g.Edges, wantEdges) {
		t.Errorf("edges = %v, want %v", g.Edges, wantEdges)
	}
}

// A parallel block fans out from the preceding task and back in to the
// following one, with no shortcut edge around the block.
func TestBuildParallel(t *testing.T) {
	g := build(t, "$a,{b,c},d$")
	wantEdges := []Edge{
		{From: "a", To: "b"},
		{From: "a", To: "c"},
		{From: "b", To: "d"},
		{From: "c", To: "d"},
	}
	if !reflect.DeepEqual(g.Edges, wantEdges) {
		t.Errorf("edges = %v, want %v", g.Edges, wantEdges)
	}
	for _, e := range g.Edges {
		if e.From == "a" && e.To == "d" {
			t.Errorf("unexpected shortcut edge a -> d")
		}
	}
}

// A terminal task contributes no outgoing control-flow edge.
func TestBuildTerminal(t *testing.T) {
	g := build(t, "$x!,y$")
	wantNodes := []Node{{ID: "x"}, {ID: "y"}}
	if !reflect.DeepEqual(g.Nodes, wantNodes) {
		t.Errorf("nodes = %v, want %v", g.Nodes, wantNodes)
	}
	if len(g.Edges) != 0 {
		t.Errorf("edges = %v, want none", g.Edges)
	}
}

func TestBuildDependencyEdges(t *testing.T) {
	g := build(t, "${a,b},c#{a}$")
	var deps []Edge
	for _, e := range g.Edges {
		if e.Kind == KindDep {
			deps = append(deps, e)
		}
	}
	want := []Edge{{From: "a", To: "c", Kind: KindDep}}
	if !reflect.DeepEqual(deps, want) {
		t.Errorf("dep edges = %v, want %v", deps, want)
	}
}

// Repeated atomic names collapse into one node, and the duplicate flow
// edges that collapse would otherwise create are dropped.
func TestBuildDuplicateNames(t *testing.T) {
	g := build(t, "$a,b,a,b$")
	wantNodes := []Node{{ID: "a"}, {ID: "b"}}
	if !reflect.DeepEqual(g.Nodes, wantNodes) {
		t.Errorf("nodes = %v, want %v", g.Nodes, wantNodes)
	}
	wantEdges := []Edge{{From: "a", To: "b"}, {From: "b", To: "a"}}
	if !reflect.DeepEqual(g.Edges, wantEdges) {
		t.Errorf("edges = %v, want %v", g.Edges, wantEdges)
	}
}

func TestWriteJSONGolden(t *testing.T) {
	var sb strings.Builder
	if err := WriteJSON(build(t, "$a,{b,c},d#{a}$"), &sb); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "execution_graph", []byte(sb.String()))
}

func TestWriteJSON(t *testing.T) {
	g := build(t, "$a,b#{a}$")
	var sb strings.Builder
	if err := WriteJSON(g, &sb); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}
	out := sb.String()
	for _, want := range []string{`"id": "a"`, `"id": "b"`, `"kind": "dep"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"kind": ""`) {
		t.Errorf("empty kind should be omitted:\n%s", out)
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := ExportJSON(build(t, "$a,b$"), path); err != nil {
		t.Fatalf("ExportJSON returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var sb strings.Builder
	if err := WriteJSON(build(t, "$a,b$"), &sb); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}
	if string(data) != sb.String() {
		t.Errorf("file content differs from WriteJSON output:\n%s", data)
	}
}
