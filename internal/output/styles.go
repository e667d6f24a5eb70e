package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sedlib/sedvet/internal/sed"
)

// Color palette. Use these named colors instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: file paths, subtree names.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for the "header" reason (data is usable, header is not).
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the "nan" reason.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for the "could not load" reason (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (file paths, subtree names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (separators, counts).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// ReasonStyle returns the lipgloss style for a failure reason.
// Unknown reasons return an unstyled default.
func ReasonStyle(reason sed.Reason) lipgloss.Style {
	switch reason {
	case sed.ReasonNaN:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case sed.ReasonHeader:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case sed.ReasonCouldNotLoad:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatFailureLine renders one report line.
//
// Format: <path>: failed because of <reason>
func FormatFailureLine(path string, reason sed.Reason) string {
	return StyleNoun.Render(path) + ": failed because of " + ReasonStyle(reason).Render(reason.String())
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
