package domain

import "time"

// Outcome is the terminal state a refresh run ended in.
type Outcome int

const (
	// OutcomeWritten means at least one line changed and the file was rewritten.
	OutcomeWritten Outcome = iota
	// OutcomeUnchanged means the commands ran but the content is identical.
	OutcomeUnchanged
	// OutcomeDryRun means changes were computed but not written.
	OutcomeDryRun
	// OutcomeConfigNotFound means the input file does not exist.
	OutcomeConfigNotFound
	// OutcomeNoDirectives means the document has no annotation/HostName pairs.
	OutcomeNoDirectives
	// OutcomeCancelled means the selection was aborted or empty.
	OutcomeCancelled
	// OutcomeInterrupted means the run was stopped by a signal before writing.
	OutcomeInterrupted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWritten:
		return "written"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeDryRun:
		return "dry-run"
	case OutcomeConfigNotFound:
		return "config-not-found"
	case OutcomeNoDirectives:
		return "no-directives"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Resolution is the result of running one task's command.
type Resolution struct {
	Task     UpdateTask
	Value    string
	Err      error
	Duration time.Duration
	// Changed is set when Value differs from the line's previous value.
	Changed bool
}

// Report summarises a refresh run.
type Report struct {
	Outcome     Outcome
	Path        string
	Resolutions []Resolution
}

// Updated counts the resolutions that produced a value.
func (r *Report) Updated() int {
	n := 0
	for _, res := range r.Resolutions {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Failed counts the resolutions that failed.
func (r *Report) Failed() int {
	return len(r.Resolutions) - r.Updated()
}

// Changed counts the lines whose content differs after the run.
func (r *Report) Changed() int {
	n := 0
	for _, res := range r.Resolutions {
		if res.Err == nil && res.Changed {
			n++
		}
	}
	return n
}

// Written reports whether the run modified the file.
func (r *Report) Written() bool {
	return r.Outcome == OutcomeWritten
}
