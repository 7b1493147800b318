package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/parlab/parlay/pkg/flow"
	"github.com/parlab/parlay/pkg/ir"
	"github.com/parlab/parlay/pkg/notation"
	"github.com/parlab/parlay/pkg/render"
	"github.com/parlab/parlay/pkg/validate"
	"github.com/parlab/parlay/pkg/xerrors"
)

// newInspectCmd creates the inspect command.
func newInspectCmd() *cobra.Command {
	var (
		file   string
		inline string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "View a program in every notation",
		Long: `View a program in every notation.

Opens an interactive viewer with one tab per notation (IR, Par,
Fork-Join) plus the Graphviz DOT source of the execution graph. Use the
arrow keys or tab to switch, q to quit.`,
		Example: `  parlay inspect -f pipeline.graph
  parlay inspect -i '$a,{b,c},d$'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), file, inline)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "input file (.graph, .par or .fk)")
	cmd.Flags().StringVarP(&inline, "inline", "i", "", "inline IR input")

	return cmd
}

func runInspect(ctx context.Context, file, inline string) error {
	src, from, err := readInput(file, inline)
	if err != nil {
		return err
	}
	graph, err := notation.Decode(from, src)
	if err != nil {
		return err
	}

	source := file
	if source == "" {
		source = "(inline)"
	}
	model := newInspectModel(source, graph)

	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// inspectTab is one rendered view of the program.
type inspectTab struct {
	title   string
	content string
}

// inspectModel is the bubbletea model of the notation viewer.
type inspectModel struct {
	source string
	tabs   []inspectTab
	active int
}

var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorGray)
	tabContentStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 2)
)

// newInspectModel pre-renders every tab. Notations that cannot express
// the program show the reason instead of text, and the DOT tab shows
// validator findings when the program is invalid.
func newInspectModel(source string, g ir.Graph) inspectModel {
	tabs := []inspectTab{
		{title: "IR", content: g.String()},
		{title: "Par", content: encodeTab(notation.Par, g)},
		{title: "Fork-Join", content: encodeTab(notation.ForkJoin, g)},
		{title: "DOT", content: dotTab(g)},
	}
	return inspectModel{source: source, tabs: tabs}
}

func encodeTab(f notation.Format, g ir.Graph) string {
	out, err := notation.Encode(f, g)
	if err != nil {
		return StyleWarning.Render("not representable: " + xerrors.UserMessage(err))
	}
	return out
}

func dotTab(g ir.Graph) string {
	validated, err := validate.Validate(g)
	if err != nil {
		return StyleWarning.Render("validation failed:\n" + err.Error())
	}
	return strings.TrimRight(render.ToDOT(flow.Build(validated), render.Options{}), "\n")
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "tab":
			m.active = (m.active + 1) % len(m.tabs)
		case "left", "h", "shift+tab":
			m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
		}
	}
	return m, nil
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inspect"))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render(m.source))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ switch notation  q quit"))
	b.WriteString("\n\n")

	titles := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.active {
			titles[i] = tabActiveStyle.Render(tab.title)
		} else {
			titles[i] = tabInactiveStyle.Render(tab.title)
		}
	}
	b.WriteString("  " + strings.Join(titles, "   "))
	b.WriteString("\n")

	b.WriteString(tabContentStyle.Render(m.tabs[m.active].content))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.active+1, len(m.tabs))))

	return b.String()
}
