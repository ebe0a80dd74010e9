package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// headerLines is the number of rows used by the title, the input and the hint.
const headerLines = 4

// Model is the state of the selection prompt.
type Model struct {
	Names   []string
	Input   textinput.Model
	Matches []fuzzy.Match

	ListHeight  int
	ListOffset  int
	SelectedIdx int

	Chosen    string
	Cancelled bool
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and window resizes.
//
//nolint:cyclop // key dispatch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Cancelled = true
			return m, tea.Quit
		case "enter":
			if len(m.Matches) == 0 {
				return m, nil
			}
			m.Chosen = m.Matches[m.SelectedIdx].Str
			return m, tea.Quit
		case "up", "ctrl+p", "ctrl+k", "shift+tab":
			m.moveCursor(-1)
			return m, nil
		case "down", "ctrl+n", "ctrl+j", "tab":
			m.moveCursor(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.ListHeight = max(1, msg.Height-headerLines)
		m.ensureVisible()
		return m, nil
	}

	before := m.Input.Value()
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	if m.Input.Value() != before {
		m.filter()
	}
	return m, cmd
}

// Query returns the current filter text.
func (m *Model) Query() string {
	return m.Input.Value()
}

// filter ranks Names against the query. An empty query keeps the original order.
func (m *Model) filter() {
	query := m.Input.Value()
	if query == "" {
		m.Matches = make([]fuzzy.Match, len(m.Names))
		for i, name := range m.Names {
			m.Matches[i] = fuzzy.Match{Str: name, Index: i}
		}
	} else {
		m.Matches = fuzzy.Find(query, m.Names)
	}
	m.SelectedIdx = 0
	m.ListOffset = 0
}

func (m *Model) moveCursor(delta int) {
	if len(m.Matches) == 0 {
		return
	}
	m.SelectedIdx = min(max(m.SelectedIdx+delta, 0), len(m.Matches)-1)
	m.ensureVisible()
}

// ensureVisible slides the list window so that the selected row is shown.
func (m *Model) ensureVisible() {
	height := max(m.ListHeight, 1)
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	}
	if m.SelectedIdx >= m.ListOffset+height {
		m.ListOffset = m.SelectedIdx - height + 1
	}
}
