// Package ui renders the sweep report for the terminal.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for sweep outcomes.
var (
	successColor = lipgloss.Color("#8BC34A") // kept / deleted cleanly
	dangerColor  = lipgloss.Color("#e53935") // marked for deletion / failed
	warningColor = lipgloss.Color("#FFC107") // not found, degraded versions
	mutedColor   = lipgloss.Color("240")
)

// Styles holds the lipgloss styles used by the report renderer.
type Styles struct {
	Title  lipgloss.Style
	Bold   lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Keep   lipgloss.Style
	Delete lipgloss.Style
	Warn   lipgloss.Style
}

// DefaultStyles returns the standard report styling.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Underline(true),
		Bold:   lipgloss.NewStyle().Bold(true),
		Body:   lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Foreground(mutedColor),
		Keep:   lipgloss.NewStyle().Foreground(successColor),
		Delete: lipgloss.NewStyle().Foreground(dangerColor),
		Warn:   lipgloss.NewStyle().Foreground(warningColor),
	}
}
