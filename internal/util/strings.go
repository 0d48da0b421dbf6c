// Package util provides shared utility functions used across the codebase.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateANSI truncates a string to maxWidth visual columns, adding "..."
// if truncated. Handles ANSI escape codes and wide characters, so it is safe
// on styled terminal output.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate includes the tail in the final width calculation
	return ansi.Truncate(s, maxWidth, "...")
}

// ClampWidth truncates every line of a multi-line render to maxWidth visual
// columns. A maxWidth of zero or less leaves the render untouched.
func ClampWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > maxWidth {
			lines[i] = TruncateANSI(line, maxWidth)
		}
	}
	return strings.Join(lines, "\n")
}
