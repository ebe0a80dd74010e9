package domain

import (
	"cmp"
	"slices"
)

// UpdateTask pairs one directive with the HostName line it refreshes.
type UpdateTask struct {
	// Name is the directive group label between the sentinels.
	Name string
	// Command is the shell command line whose output becomes the new value.
	Command string
	// AnnotationLine is the zero-based index of the directive line.
	AnnotationLine int
	// TargetLine is the zero-based index of the HostName line to overwrite.
	TargetLine int
	// Prefix is the indentation, keyword and separator of the target line,
	// kept verbatim on rewrite.
	Prefix string
}

// Rewrite returns the target line carrying value.
func (t UpdateTask) Rewrite(value string) string {
	return t.Prefix + value
}

// Orphan is a directive that has no HostName line directly below it.
type Orphan struct {
	Name string
	Line int
}

// ParseResult holds everything a single parse pass found.
type ParseResult struct {
	Tasks   []UpdateTask
	Orphans []Orphan
}

// SortByTarget returns a copy of tasks ordered by ascending target line.
func SortByTarget(tasks []UpdateTask) []UpdateTask {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b UpdateTask) int {
		return cmp.Compare(a.TargetLine, b.TargetLine)
	})
	return sorted
}
