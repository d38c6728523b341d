// Package tui implements the interactive coordinator console.
package tui

import (
	"strings"

	"github.com/AgentricAI/agentricai/internal/coordinator"
	"github.com/AgentricAI/agentricai/internal/tui/styles"
	"github.com/AgentricAI/agentricai/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultHistoryLimit is used when New is given a non-positive limit.
const DefaultHistoryLimit = 200

type entryKind int

const (
	entryCommand entryKind = iota
	entryNotice
	entryInfo
	entryError
)

// entry is one line of console history
type entry struct {
	kind    entryKind
	text    string
	outcome string
}

// Model is the Bubbletea model for the coordinator console
type Model struct {
	coord     *coordinator.Coordinator
	textInput textinput.Model
	history   []entry
	limit     int
	width     int
	height    int
	quitting  bool
}

// New creates a console model driving c. historyLimit caps the number of
// history lines kept.
func New(c *coordinator.Coordinator, historyLimit int) Model {
	ti := textinput.New()
	ti.Placeholder = "authorize <token> | instruct <task> [context] | help"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 60

	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	return Model{
		coord:     c,
		textInput: ti,
		limit:     historyLimit,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Width > 8 {
			m.textInput.Width = msg.Width - 4
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			line := m.textInput.Value()
			m.textInput.SetValue("")
			return m.execute(line)
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) execute(line string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.push(entry{kind: entryCommand, text: line})

	res := Execute(m.coord, line)
	switch {
	case res.Quit:
		m.quitting = true
		return m, tea.Quit
	case res.Err != nil:
		m.push(entry{kind: entryError, text: res.Err.Error()})
	case res.Notice != nil:
		m.push(entry{kind: entryNotice, text: res.Notice.Message, outcome: res.Notice.Outcome.String()})
	case res.Info != "":
		m.push(entry{kind: entryInfo, text: res.Info})
	}
	return m, nil
}

// push appends e and drops the oldest entries beyond the limit.
func (m *Model) push(e entry) {
	m.history = append(m.history, e)
	if over := len(m.history) - m.limit; over > 0 {
		m.history = append(m.history[:0:0], m.history[over:]...)
	}
}

// Quitting reports whether the console has been asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "AgentricAI Console"
	if m.width > 4 {
		b.WriteString(styles.Header.Width(m.width - 4).Render(title))
	} else {
		b.WriteString(styles.Header.Render(title))
	}
	b.WriteString("\n")

	for _, line := range m.visibleHistory() {
		b.WriteString(util.FitLines(renderEntry(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")
	b.WriteString(m.statusBar())

	return b.String()
}

// visibleHistory returns the tail of the history that fits the window.
// Header, input, status bar and spacing take 6 lines.
func (m Model) visibleHistory() []entry {
	if m.height <= 0 {
		return m.history
	}
	avail := m.height - 6
	if avail < 1 {
		avail = 1
	}
	if len(m.history) > avail {
		return m.history[len(m.history)-avail:]
	}
	return m.history
}

func (m Model) statusBar() string {
	s := m.coord.Status()
	state := styles.Error.Render("unauthorized")
	if s.Authorized {
		state = styles.Secondary.Render("authorized")
	}
	help := styles.HelpKey.Render("enter") + " run  " +
		styles.HelpKey.Render("help") + " commands  " +
		styles.HelpKey.Render("ctrl+c") + " quit"
	return styles.StatusBar.Render(s.ID+" "+state) + "  " + styles.HelpBar.Render(help)
}

// RenderResult formats a Result the way the console shows it. It is
// shared with the line-oriented fallback.
func RenderResult(res Result) string {
	switch {
	case res.Err != nil:
		return renderEntry(entry{kind: entryError, text: res.Err.Error()})
	case res.Notice != nil:
		return renderEntry(entry{kind: entryNotice, text: res.Notice.Message, outcome: res.Notice.Outcome.String()})
	case res.Info != "":
		return renderEntry(entry{kind: entryInfo, text: res.Info})
	default:
		return ""
	}
}

func renderEntry(e entry) string {
	switch e.kind {
	case entryCommand:
		return styles.Prompt.Render("> " + e.text)
	case entryNotice:
		return styles.Notice(e.outcome, e.text)
	case entryError:
		return styles.ErrorMsg.Render(e.text)
	default:
		return styles.Text.Render(e.text)
	}
}
