package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// centerOverlay draws overlay in the middle of a width x height screen whose
// remaining cells show background restyled with dim
func centerOverlay(background, overlay string, width, height int, dim lipgloss.Style) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := lipgloss.Width(overlay)
	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	result := make([]string, len(bgLines))
	for y, line := range bgLines {
		plain := ansi.Strip(line)
		i := y - startY
		if i < 0 || i >= len(overlayLines) {
			result[y] = dim.Render(padRight(plain, width))
			continue
		}

		// Keep the background visible on both sides of the overlay
		left := padRight(ansi.Truncate(plain, startX, ""), startX)
		right := ""
		if rightStart := startX + lipgloss.Width(overlayLines[i]); rightStart < width {
			right = padRight(ansi.Cut(plain, rightStart, width), width-rightStart)
		}
		result[y] = dim.Render(left) + overlayLines[i] + dim.Render(right)
	}

	return strings.Join(result, "\n")
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
