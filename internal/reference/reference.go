// Package reference is a full-screen browser of the BMI status tiers, their
// ranges and the advice that goes with each.
package reference

import (
	"fmt"
	"io"
	"strings"

	"github.com/Utility-Gods/bmichart/internal/bmi"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	adviceStyle = lipgloss.NewStyle().PaddingLeft(2).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// chartZones names the header label a tier falls under on the printed chart.
var chartZones = map[bmi.Tier]string{
	bmi.Underweight:   "Under",
	bmi.Normal:        "Normal",
	bmi.Overweight:    "Over",
	bmi.Obese:         "Obese",
	bmi.MorbidlyObese: "Obese",
}

type Model struct {
	table      table.Model
	showAdvice bool
}

func New() Model {
	columns := []table.Column{
		{Title: "Status", Width: 16},
		{Title: "BMI", Width: 12},
		{Title: "Chart zone", Width: 10},
	}

	rows := make([]table.Row, 0, len(bmi.Tiers))
	for _, tier := range bmi.Tiers {
		rows = append(rows, table.Row{tier.String(), tier.Range(), chartZones[tier]})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{table: t}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			m.showAdvice = !m.showAdvice
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Selected returns the tier under the cursor.
func (m Model) Selected() bmi.Tier {
	return bmi.Tiers[m.table.Cursor()]
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(baseStyle.Render(m.table.View()))
	b.WriteString("\n")

	if m.showAdvice {
		tier := m.Selected()
		b.WriteString(adviceStyle.Render(fmt.Sprintf("Advice for %s patients:\n%s", tier, tier.Advice())))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ move • enter advice • q quit"))
	b.WriteString("\n")
	return b.String()
}

// Run shows the browser until the operator quits.
func Run(in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tier browser: %w", err)
	}
	return nil
}
