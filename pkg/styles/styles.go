// Package styles defines the shared lipgloss styles for console output.
// Colors are adaptive so output stays readable on light and dark terminals.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Success is used for passing checks and confirmation messages.
	Success = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "35"})

	// Error is used for failing checks and error messages.
	Error = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "161"})

	// Warning is used for recoverable problems.
	Warning = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "136", Dark: "178"})

	// Info is used for neutral progress messages.
	Info = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "33", Dark: "39"})

	// Muted is used for secondary detail such as paths and counts.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "246"})

	// Header is used for section titles and table headers.
	Header = lipgloss.NewStyle().Bold(true)
)
