package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/parlab/parlay/pkg/ir"
)

func mustParseIR(t *testing.T, src string) ir.Graph {
	t.Helper()
	g, err := ir.Parse(src)
	if err != nil {
		t.Fatalf("ir.Parse(%q) returned error: %v", src, err)
	}
	return g
}

func TestInspectModelTabs(t *testing.T) {
	m := newInspectModel("prog.graph", mustParseIR(t, "${a,b},c$"))

	if len(m.tabs) != 4 {
		t.Fatalf("got %d tabs, want 4", len(m.tabs))
	}
	if m.tabs[0].content != "${a,b},c$" {
		t.Errorf("IR tab = %q, want %q", m.tabs[0].content, "${a,b},c$")
	}
	if !strings.Contains(m.tabs[1].content, "parbegin") {
		t.Errorf("Par tab missing parbegin:\n%s", m.tabs[1].content)
	}
	if !strings.Contains(m.tabs[2].content, "fork") {
		t.Errorf("Fork-Join tab missing fork:\n%s", m.tabs[2].content)
	}
	if !strings.Contains(m.tabs[3].content, "digraph G {") {
		t.Errorf("DOT tab missing digraph:\n%s", m.tabs[3].content)
	}
}

func TestInspectModelUnrepresentable(t *testing.T) {
	m := newInspectModel("prog.graph", mustParseIR(t, "$a,b#{a}$"))

	if !strings.Contains(m.tabs[1].content, "not representable") {
		t.Errorf("Par tab should note unrepresentable program:\n%s", m.tabs[1].content)
	}
	// Fork-Join drops annotations instead of failing.
	if !strings.Contains(m.tabs[2].content, "begin") {
		t.Errorf("Fork-Join tab should still render:\n%s", m.tabs[2].content)
	}
}

func TestInspectModelInvalidProgram(t *testing.T) {
	m := newInspectModel("prog.graph", mustParseIR(t, "$a#{missing}$"))

	if !strings.Contains(m.tabs[3].content, "validation failed") {
		t.Errorf("DOT tab should surface validator findings:\n%s", m.tabs[3].content)
	}
}

func TestInspectModelNavigation(t *testing.T) {
	var m tea.Model = newInspectModel("prog.graph", mustParseIR(t, "$a$"))

	key := func(s string) tea.KeyMsg {
		if s == "tab" {
			return tea.KeyMsg{Type: tea.KeyTab}
		}
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}

	m, _ = m.Update(key("l"))
	if got := m.(inspectModel).active; got != 1 {
		t.Errorf("after l: active = %d, want 1", got)
	}
	m, _ = m.Update(key("tab"))
	if got := m.(inspectModel).active; got != 2 {
		t.Errorf("after tab: active = %d, want 2", got)
	}
	m, _ = m.Update(key("h"))
	if got := m.(inspectModel).active; got != 1 {
		t.Errorf("after h: active = %d, want 1", got)
	}
	// Wraps backwards past the first tab.
	m, _ = m.Update(key("h"))
	m, _ = m.Update(key("h"))
	if got := m.(inspectModel).active; got != 3 {
		t.Errorf("after wrap: active = %d, want 3", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestInspectModelView(t *testing.T) {
	m := newInspectModel("prog.graph", mustParseIR(t, "$a,b$"))
	view := m.View()

	for _, want := range []string{"Inspect", "prog.graph", "IR", "Par", "Fork-Join", "DOT", "[1/4]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if !strings.Contains(view, "$a,b$") {
		t.Errorf("view missing IR content:\n%s", view)
	}
}
