// Package console renders user-facing output: styled one-line messages,
// section headers, and plain-text tables.
package console

import (
	"github.com/kyora-dev/agentos-check/pkg/styles"
)

// FormatSuccessMessage formats a message indicating a passing check.
func FormatSuccessMessage(message string) string {
	return styles.Success.Render("✓ " + message)
}

// FormatErrorMessage formats a message indicating a failing check.
func FormatErrorMessage(message string) string {
	return styles.Error.Render("✗ " + message)
}

// FormatWarningMessage formats a message for a recoverable problem.
func FormatWarningMessage(message string) string {
	return styles.Warning.Render("! " + message)
}

// FormatInfoMessage formats a neutral progress message.
func FormatInfoMessage(message string) string {
	return styles.Info.Render(message)
}

// FormatMutedMessage formats secondary detail such as paths and counts.
func FormatMutedMessage(message string) string {
	return styles.Muted.Render(message)
}

// FormatSectionHeader formats a section title with an underline rule.
func FormatSectionHeader(title string) string {
	rule := make([]byte, 0, len(title))
	for range title {
		rule = append(rule, '-')
	}
	return styles.Header.Render(title) + "\n" + string(rule)
}
