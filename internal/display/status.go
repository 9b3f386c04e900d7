// Package display renders attendance tables and status lines for the CLI
// front-end.
package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/tui/theme"
)

// Success styles a positive status line (e.g. merge results).
func Success(s string) string {
	return lipgloss.NewStyle().Foreground(theme.DefaultColors.Green).Render(s)
}

// Warn styles a warning line (e.g. zero names detected).
func Warn(s string) string {
	return lipgloss.NewStyle().Foreground(theme.DefaultColors.Yellow).Render(s)
}

// Muted styles secondary information such as masked credentials.
func Muted(s string) string {
	return lipgloss.NewStyle().Foreground(theme.DefaultColors.MutedText).Render(s)
}
