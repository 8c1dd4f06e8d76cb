// Package repl is an interactive prompt that solves one equation per line.
package repl

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wildfunctions/computor/pkg/engine"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Model is the bubbletea model for the prompt. Each submitted line is solved
// on its own; nothing carries over between equations.
type Model struct {
	engine  *engine.Engine
	input   textinput.Model
	history []string
	solved  int
	failed  int
	quit    bool
}

// New creates a prompt backed by e.
func New(e *engine.Engine) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "x^2 + 2*x + 1 = 0"
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	return Model{engine: e, input: ti}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	switch line {
	case "":
		return m, nil
	case "quit", "exit":
		m.quit = true
		return m, tea.Quit
	}

	r, err := m.engine.Solve(line)
	if err != nil {
		m.failed++
	} else {
		m.solved++
	}

	var buf bytes.Buffer
	if werr := m.engine.Write(&buf, r); werr != nil {
		buf.WriteString("Error: " + werr.Error() + "\n")
	}
	m.history = append(m.history, strings.TrimRight(buf.String(), "\n"))
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("computor"))
	b.WriteString("\n\n")
	for _, h := range m.history {
		b.WriteString(h)
		b.WriteString("\n\n")
	}
	if m.quit {
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: solve • quit, esc or ctrl+c: exit"))
	b.WriteString("\n")
	return b.String()
}

// History returns the rendered output of every submitted equation.
func (m Model) History() []string { return m.history }

// Counts returns how many equations were solved and how many failed.
func (m Model) Counts() (solved, failed int) { return m.solved, m.failed }

// Run starts the prompt on the terminal and blocks until the user quits.
func Run(e *engine.Engine, opts ...tea.ProgramOption) (Model, error) {
	final, err := tea.NewProgram(New(e), opts...).Run()
	if err != nil {
		return Model{}, err
	}
	return final.(Model), nil
}
