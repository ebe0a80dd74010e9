// Package detector provides environment detection for the selection prompt.
package detector

import (
	"os"

	"golang.org/x/term"
)

// Detector implements ports.Terminal.
type Detector struct {
	// IsTerminal reports whether fd refers to a terminal. Defaults to term.IsTerminal.
	IsTerminal func(fd int) bool
	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string
	// In and Out are the streams the prompt reads from and draws on.
	In, Out *os.File
}

// New creates a Detector for the process's stdin and stderr.
func New() *Detector {
	return &Detector{
		IsTerminal: term.IsTerminal,
		Getenv:     os.Getenv,
		In:         os.Stdin,
		Out:        os.Stderr,
	}
}

// Interactive reports whether a prompt can be shown: both streams must be
// terminals and the process must not run under CI.
func (d *Detector) Interactive() bool {
	if IsCI(d.Getenv) {
		return false
	}
	if d.In == nil || d.Out == nil {
		return false
	}
	isTerminal := d.IsTerminal
	if isTerminal == nil {
		isTerminal = term.IsTerminal
	}
	return isTerminal(int(d.In.Fd())) && isTerminal(int(d.Out.Fd()))
}

// IsCI reports whether the CI environment variable is set to a true value.
func IsCI(getenv func(string) string) bool {
	if getenv == nil {
		getenv = os.Getenv
	}
	ci := getenv("CI")
	return ci == "true" || ci == "1"
}
