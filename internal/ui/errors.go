package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	minErrorWidth  = 10
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay renders err for the status line: word-wrapped to
// maxWidth, at most maxErrorLines lines, with "..." marking dropped text.
// The first line carries the "Error: " prefix and is shorter by its width.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minErrorWidth)
	firstWidth := max(maxWidth-utf8.RuneCountInString(errorPrefix), minErrorWidth)

	var lines []string
	line := ""
	limit := firstWidth
	truncated := false
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line == "" || utf8.RuneCountInString(candidate) <= limit {
			line = candidate
			continue
		}

		lines = append(lines, line)
		if len(lines) == maxErrorLines {
			truncated = true
			line = ""
			break
		}
		line = word
		limit = width
	}
	if line != "" {
		lines = append(lines, line)
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := width - utf8.RuneCountInString(truncationMark)
		if len(last) > keep && keep > 0 {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
