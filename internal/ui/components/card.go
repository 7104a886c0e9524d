package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/allyquest/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for cards so stacked
// boxes line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// Card wraps content in a rounded border of the given accent color.
func Card(content string, accent color.Color, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Width(cw).
		Padding(0, 2).
		Render(content)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Stars renders n filled stars out of total.
func Stars(n, total int) string {
	n = min(max(n, 0), total)
	return theme.Star.Render(strings.Repeat("★", n)) +
		theme.Dimmed.Render(strings.Repeat("☆", total-n))
}
