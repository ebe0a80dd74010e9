package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rehost/internal/adapters/tui"
)

func typeText(m *tui.Model, text string) *tui.Model {
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(*tui.Model)
	}
	return m
}

func press(m *tui.Model, key tea.KeyType) (*tui.Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	return updated.(*tui.Model), cmd
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModel(t *testing.T) {
	m := tui.NewModel([]string{"api", "db", "web"})

	require.Len(t, m.Matches, 3)
	assert.Equal(t, "api", m.Matches[0].Str)
	assert.Equal(t, "web", m.Matches[2].Str)
	assert.Equal(t, 0, m.SelectedIdx)
	assert.Empty(t, m.Query())
	assert.NotNil(t, m.Init())
}

func TestUpdate_EnterSelectsFirst(t *testing.T) {
	m := tui.NewModel([]string{"api", "db", "web"})

	m, cmd := press(m, tea.KeyEnter)

	assert.Equal(t, "api", m.Chosen)
	assert.False(t, m.Cancelled)
	assert.True(t, isQuit(t, cmd))
}

func TestUpdate_NavigateThenSelect(t *testing.T) {
	m := tui.NewModel([]string{"api", "db", "web"})

	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	assert.Equal(t, 2, m.SelectedIdx, "cursor stops at the last row")

	m, _ = press(m, tea.KeyUp)
	m, cmd := press(m, tea.KeyEnter)

	assert.Equal(t, "db", m.Chosen)
	assert.True(t, isQuit(t, cmd))
}

func TestUpdate_FilterNarrowsChoices(t *testing.T) {
	m := tui.NewModel([]string{"api-gateway", "db-primary", "web"})

	m = typeText(m, "dbp")

	assert.Equal(t, "dbp", m.Query())
	require.Len(t, m.Matches, 1)
	assert.Equal(t, "db-primary", m.Matches[0].Str)

	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, "db-primary", m.Chosen)
}

func TestUpdate_FilterResetsCursor(t *testing.T) {
	m := tui.NewModel([]string{"alpha", "beta", "gamma"})
	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)

	m = typeText(m, "a")

	assert.Equal(t, 0, m.SelectedIdx)
	assert.Equal(t, 0, m.ListOffset)
}

func TestUpdate_EnterWithoutMatchesIsIgnored(t *testing.T) {
	m := tui.NewModel([]string{"api", "db"})
	m = typeText(m, "zzz")
	require.Empty(t, m.Matches)

	m, cmd := press(m, tea.KeyEnter)

	assert.Empty(t, m.Chosen)
	assert.False(t, isQuit(t, cmd))
}

func TestUpdate_Cancel(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		t.Run(key.String(), func(t *testing.T) {
			m := tui.NewModel([]string{"api", "db"})

			m, cmd := press(m, key)

			assert.True(t, m.Cancelled)
			assert.Empty(t, m.Chosen)
			assert.True(t, isQuit(t, cmd))
			assert.Empty(t, m.View())
		})
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := tui.NewModel([]string{"a", "b"})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = updated.(*tui.Model)
	assert.Equal(t, 6, m.ListHeight)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 2})
	m = updated.(*tui.Model)
	assert.Equal(t, 1, m.ListHeight)
}
