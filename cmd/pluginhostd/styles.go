package main

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for CLI output, tuned for dark terminals.
var (
	// TitleStyle is for primary headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	// SubtitleStyle is for secondary text.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	// OKStyle marks available items.
	OKStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981"))

	// MissingStyle marks unavailable items.
	MissingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))
)
