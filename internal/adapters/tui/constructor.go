// Package tui provides the interactive directive selection prompt.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"go.trai.ch/rehost/internal/ui/style"
)

const defaultListHeight = 10

// NewModel creates a prompt model offering names in the given order.
func NewModel(names []string) *Model {
	input := textinput.New()
	input.Prompt = style.Pointer + " "
	input.Placeholder = "type to filter"
	input.PromptStyle = promptStyle
	input.Focus()

	m := &Model{
		Names:      names,
		Input:      input,
		ListHeight: defaultListHeight,
	}
	m.filter()
	return m
}
