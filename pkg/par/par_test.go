package par

import (
	"reflect"
	"testing"

	"github.com/parlab/parlay/pkg/ir"
	"github.com/parlab/parlay/pkg/xerrors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Graph
	}{
		{
			name: "Empty",
			src:  "begin end",
			want: Graph{},
		},
		{
			name: "Flat",
			src:  "begin s0 s1 end",
			want: New(Atomic{Name: "s0"}, Atomic{Name: "s1"}),
		},
		{
			name: "Parallel",
			src: `begin
			  s0
			  parbegin
			    s1
			    s2
			  parend
			  s3
			end`,
			want: New(
				Atomic{Name: "s0"},
				Parallel{Branches: []Node{Atomic{Name: "s1"}, Atomic{Name: "s2"}}},
				Atomic{Name: "s3"},
			),
		},
		{
			name: "NestedSequence",
			src:  "begin parbegin begin s0 s1 end s2 parend end",
			want: New(
				Parallel{Branches: []Node{
					Sequence{Children: []Node{Atomic{Name: "s0"}, Atomic{Name: "s1"}}},
					Atomic{Name: "s2"},
				}},
			),
		},
		{
			name: "Semicolons",
			src:  "begin s0; s1; end",
			want: New(Atomic{Name: "s0"}, Atomic{Name: "s1"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"NoBegin", "s0 end"},
		{"NoEnd", "begin s0"},
		{"UnclosedParallel", "begin parbegin s0 end"},
		{"StrayParend", "begin parend s0 end"},
		{"TrailingInput", "begin s0 end s1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.src)
			}
			if !xerrors.Is(err, xerrors.CodeParse) {
				t.Errorf("error code = %v, want %v", xerrors.GetCode(err), xerrors.CodeParse)
			}
		})
	}
}

func TestString(t *testing.T) {
	g := New(
		Atomic{Name: "s0"},
		Parallel{Branches: []Node{
			Atomic{Name: "s1"},
			Sequence{Children: []Node{Atomic{Name: "s2"}, Atomic{Name: "s3"}}},
		}},
	)

	want := `begin
  s0
  parbegin
    s1
    begin
      s2
      s3
    end
  parend
end`
	if got := g.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

// Par carries no annotations, so Par -> IR -> Par must always reproduce
// the original graph.
func TestRoundTripThroughIR(t *testing.T) {
	srcs := []string{
		"begin end",
		"begin s0 s1 end",
		"begin parbegin s0 s1 parend end",
		"begin s0 parbegin begin s1 s2 end s3 parend s4 end",
	}

	for _, src := range srcs {
		g, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", src, err)
		}
		back, err := FromIR(ToIR(g))
		if err != nil {
			t.Fatalf("FromIR(ToIR) error for %q: %v", src, err)
		}
		if !reflect.DeepEqual(normalize(g), normalize(back)) {
			t.Errorf("round trip of %q: got %#v, want %#v", src, back, g)
		}
	}
}

// normalize maps a graph to its canonical string so nil and empty child
// slices compare equal.
func normalize(g Graph) string { return g.String() }

func TestFromIR(t *testing.T) {
	tests := []struct {
		name     string
		graph    ir.Graph
		wantErr  bool
		wantCode xerrors.Code
	}{
		{
			name:  "Plain",
			graph: ir.New(ir.Atomic{Name: "s0"}, ir.Parallel{Branches: []ir.Node{ir.Atomic{Name: "s1"}, ir.Atomic{Name: "s2"}}}),
		},
		{
			name:     "Deps",
			graph:    ir.New(ir.Atomic{Name: "s1", Deps: []string{"s0"}}),
			wantErr:  true,
			wantCode: xerrors.CodeCannotRepresent,
		},
		{
			name:     "Terminal",
			graph:    ir.New(ir.Atomic{Name: "s0", Terminal: true}),
			wantErr:  true,
			wantCode: xerrors.CodeCannotRepresent,
		},
		{
			name:     "NestedDeps",
			graph:    ir.New(ir.Sequence{Children: []ir.Node{ir.Atomic{Name: "s0"}, ir.Atomic{Name: "s1", Deps: []string{"s0"}}}}),
			wantErr:  true,
			wantCode: xerrors.CodeCannotRepresent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromIR(tt.graph)
			if tt.wantErr {
				if err == nil {
					t.Fatal("FromIR succeeded, want error")
				}
				if !xerrors.Is(err, tt.wantCode) {
					t.Errorf("error code = %v, want %v", xerrors.GetCode(err), tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromIR error: %v", err)
			}
		})
	}
}

// IR graphs without annotations survive IR -> Par -> IR unchanged.
func TestIRRoundTrip(t *testing.T) {
	g := ir.New(
		ir.Atomic{Name: "s0"},
		ir.Parallel{Branches: []ir.Node{
			ir.Atomic{Name: "s1"},
			ir.Sequence{Children: []ir.Node{ir.Atomic{Name: "s2"}, ir.Atomic{Name: "s3"}}},
		}},
	)

	p, err := FromIR(g)
	if err != nil {
		t.Fatalf("FromIR error: %v", err)
	}
	back := ToIR(p)
	if back.String() != g.String() {
		t.Errorf("IR round trip = %s, want %s", back.String(), g.String())
	}
}
