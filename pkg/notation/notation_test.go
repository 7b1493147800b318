package notation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/parlab/parlay/pkg/xerrors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{input: "ir", want: IR},
		{input: "par", want: Par},
		{input: "fk", want: ForkJoin},
		{input: "IR", want: IR},
		{input: "FK", want: ForkJoin},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.input)
		if err != nil {
			t.Errorf("ParseFormat(%q) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}

	if _, err := ParseFormat("yaml"); xerrors.GetCode(err) != xerrors.CodeInvalidFormat {
		t.Errorf("ParseFormat(\"yaml\") error = %v, want %v", err, xerrors.CodeInvalidFormat)
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "pipeline.graph", want: IR},
		{path: "dir/pipeline.par", want: Par},
		{path: "/abs/pipeline.fk", want: ForkJoin},
	}
	for _, tc := range tests {
		got, err := FromPath(tc.path)
		if err != nil {
			t.Errorf("FromPath(%q) returned error: %v", tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("FromPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}

	for _, path := range []string{"pipeline.txt", "pipeline", ""} {
		if _, err := FromPath(path); xerrors.GetCode(err) != xerrors.CodeInvalidFormat {
			t.Errorf("FromPath(%q) error = %v, want %v", path, err, xerrors.CodeInvalidFormat)
		}
	}
}

func TestExt(t *testing.T) {
	if got := IR.Ext(); got != ExtIR {
		t.Errorf("IR.Ext() = %q, want %q", got, ExtIR)
	}
	if got := Par.Ext(); got != ExtPar {
		t.Errorf("Par.Ext() = %q, want %q", got, ExtPar)
	}
	if got := ForkJoin.Ext(); got != ExtForkJoin {
		t.Errorf("ForkJoin.Ext() = %q, want %q", got, ExtForkJoin)
	}
}

// TestConvertGolden pipes each fixture through Decode and Encode and
// compares against golden files. Run with -update to regenerate them.
func TestConvertGolden(t *testing.T) {
	tests := []struct {
		name  string
		input string // fixture under testdata/
		to    Format
	}{
		{name: "pipeline_to_ir", input: "pipeline.graph", to: IR},
		{name: "pipeline_to_par", input: "pipeline.graph", to: Par},
		{name: "pipeline_to_fk", input: "pipeline.graph", to: ForkJoin},
		{name: "pipeline_par_to_ir", input: "pipeline.par", to: IR},
		{name: "pipeline_fk_to_ir", input: "pipeline.fk", to: IR},
		{name: "annotated_to_fk", input: "annotated.graph", to: ForkJoin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join("testdata", tc.input))
			if err != nil {
				t.Fatalf("read fixture: %v", err)
			}
			from, err := FromPath(tc.input)
			if err != nil {
				t.Fatalf("FromPath(%q) returned error: %v", tc.input, err)
			}
			graph, err := Decode(from, string(src))
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			out, err := Encode(tc.to, graph)
			if err != nil {
				t.Fatalf("Encode returned error: %v", err)
			}

			g := goldie.New(t,
				goldie.WithFixtureDir("testdata/golden"),
				goldie.WithNameSuffix(".golden"),
			)
			g.Assert(t, tc.name, []byte(out))
		})
	}
}

func TestDecodeError(t *testing.T) {
	if _, err := Decode(IR, "not a graph"); xerrors.GetCode(err) != xerrors.CodeParse {
		t.Errorf("Decode error = %v, want %v", err, xerrors.CodeParse)
	}
}

func TestEncodeCannotRepresent(t *testing.T) {
	graph, err := Decode(IR, "$a,b#{a}$")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if _, err := Encode(Par, graph); xerrors.GetCode(err) != xerrors.CodeCannotRepresent {
		t.Errorf("Encode error = %v, want %v", err, xerrors.CodeCannotRepresent)
	}
}
