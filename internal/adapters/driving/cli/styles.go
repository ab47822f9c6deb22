package cli

import "github.com/charmbracelet/lipgloss"

// Summary styling. Palette follows the project theme: green for
// matched, yellow for drift, red for unmatched.
var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	metricStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")) // Cyan

	matchedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")) // Green

	unmatchedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")) // Red

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")) // Medium gray
)
