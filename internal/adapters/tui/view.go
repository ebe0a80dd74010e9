package tui

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"go.trai.ch/rehost/internal/ui/style"
)

// View renders the prompt. It renders nothing once a choice has been made so
// the prompt disappears from the terminal.
func (m *Model) View() string {
	if m.Chosen != "" || m.Cancelled {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("Select hosts to refresh") + "\n")
	s.WriteString(m.Input.View() + "\n")

	if len(m.Matches) == 0 {
		s.WriteString(hintStyle.Render("  no matches") + "\n")
	}

	end := min(m.ListOffset+max(m.ListHeight, 1), len(m.Matches))
	for i := m.ListOffset; i < end; i++ {
		if i == m.SelectedIdx {
			s.WriteString(selectedStyle.Render(style.Pointer+" ") + highlight(m.Matches[i], true) + "\n")
			continue
		}
		s.WriteString(itemStyle.Render(highlight(m.Matches[i], false)) + "\n")
	}

	s.WriteString(hintStyle.Render(fmt.Sprintf("%d/%d  ↑/↓ move  enter select  esc cancel", len(m.Matches), len(m.Names))))
	return s.String()
}

// highlight underlines the characters the query matched.
func highlight(match fuzzy.Match, selected bool) string {
	matched := make(map[int]struct{}, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = struct{}{}
	}

	var s strings.Builder
	for i, r := range match.Str {
		part := string(r)
		if _, ok := matched[i]; ok {
			part = matchStyle.Render(part)
		}
		if selected {
			part = selectedStyle.Render(part)
		}
		s.WriteString(part)
	}
	return s.String()
}
