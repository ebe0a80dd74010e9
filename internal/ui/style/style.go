// Package style holds the colors and icons shared by the logger and the prompt.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Pointer = "›"
)
