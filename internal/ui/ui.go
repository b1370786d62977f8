// Package ui renders the tool's status line markers. Progress lines carry a
// "==>" marker, warnings a "WARNING:" tag and errors an "ERROR:" tag; the
// prefixes are part of the output contract, the colors are cosmetic.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	stepStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// Step prints a progress line.
func Step(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, stepStyle.Render("==>"), fmt.Sprintf(format, a...))
}

// Success prints a completion line.
func Success(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, successStyle.Render("==>"), fmt.Sprintf(format, a...))
}

// Warn prints a non-fatal warning line.
func Warn(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, warnStyle.Render("WARNING:"), fmt.Sprintf(format, a...))
}

// Error prints a fatal error line.
func Error(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, errorStyle.Render("ERROR:"), fmt.Sprintf(format, a...))
}
