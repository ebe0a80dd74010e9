package tui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/rehost/internal/core/domain"
	"go.trai.ch/zerr"
)

// Selector implements ports.Selector with a bubbletea prompt.
type Selector struct {
	In      io.Reader
	Out     io.Writer
	Options []tea.ProgramOption
}

// NewSelector creates a Selector that reads stdin and draws on stderr, keeping
// stdout free for piping.
func NewSelector() *Selector {
	return &Selector{In: os.Stdin, Out: os.Stderr}
}

// Select runs the prompt until the user picks a name or aborts.
func (s *Selector) Select(ctx context.Context, names []string) (string, error) {
	if len(names) == 0 {
		return "", domain.ErrSelectionCancelled
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithInput(s.In), tea.WithOutput(s.Out)}
	opts = append(opts, s.Options...)

	final, err := tea.NewProgram(NewModel(names), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil {
			return "", zerr.Wrap(domain.ErrSelectionCancelled, "prompt interrupted")
		}
		return "", zerr.Wrap(err, "selection prompt failed")
	}

	m, ok := final.(*Model)
	if !ok || m.Cancelled || m.Chosen == "" {
		return "", domain.ErrSelectionCancelled
	}
	return m.Chosen, nil
}
