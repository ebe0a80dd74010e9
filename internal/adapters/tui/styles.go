package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/rehost/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	promptStyle = lipgloss.NewStyle().
			Foreground(style.Iris)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	matchStyle = lipgloss.NewStyle().
			Underline(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(style.Slate)
)
