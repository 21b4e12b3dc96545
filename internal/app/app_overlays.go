package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayCenter draws overlay in the middle of bg.
func overlayCenter(bg, overlay string, width, height int) string {
	x := (width - lipgloss.Width(overlay)) / 2
	y := (height - lipgloss.Height(overlay)) / 2
	return overlayAt(bg, overlay, x, y)
}

// overlayTopRight draws overlay in the top-right corner of bg, two cells
// in from the edge.
func overlayTopRight(bg, overlay string, width int) string {
	x := width - lipgloss.Width(overlay) - 2
	return overlayAt(bg, overlay, x, 0)
}

// overlayAt splices overlay into bg with its top-left corner at (x, y).
// bg keeps its line count, so zone positions found by Scan match what
// the terminal shows.
func overlayAt(bg, overlay string, x, y int) string {
	if overlay == "" {
		return bg
	}
	x = max(x, 0)
	y = max(y, 0)

	bgLines := strings.Split(bg, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		under := bgLines[row]
		if w := ansi.StringWidth(under); w < x {
			under += strings.Repeat(" ", x-w)
		}
		left := ansi.Truncate(under, x, "")
		right := ansi.TruncateLeft(under, x+ansi.StringWidth(line), "")
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}
