package welcome

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/allyquest/internal/ui/theme"
)

const bannerArt = `
  █████╗ ██╗     ██╗  ██╗   ██╗ ██████╗ ██╗   ██╗███████╗███████╗████████╗
 ██╔══██╗██║     ██║  ╚██╗ ██╔╝██╔═══██╗██║   ██║██╔════╝██╔════╝╚══██╔══╝
 ███████║██║     ██║   ╚████╔╝ ██║   ██║██║   ██║█████╗  ███████╗   ██║
 ██╔══██║██║     ██║    ╚██╔╝  ██║▄▄ ██║██║   ██║██╔══╝  ╚════██║   ██║
 ██║  ██║███████╗███████╗██║   ╚██████╔╝╚██████╔╝███████╗███████║   ██║
 ╚═╝  ╚═╝╚══════╝╚══════╝╚═╝    ╚══▀▀═╝  ╚═════╝ ╚══════╝╚══════╝   ╚═╝`

const bannerCompact = "A L L Y Q U E S T"

// rainbow is the stripe order of the pride flag.
var rainbow = []color.Color{
	lipgloss.Color("#E40303"),
	lipgloss.Color("#FF8C00"),
	lipgloss.Color("#FFED00"),
	lipgloss.Color("#008026"),
	lipgloss.Color("#24408E"),
	lipgloss.Color("#732982"),
}

// RenderBanner returns the banner styled in the primary color. Uses a
// compact fallback for terminals narrower than 76 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 76 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

// RenderRainbow draws up to n stripes of the given width.
func RenderRainbow(n, width int) string {
	n = min(n, len(rainbow))
	lines := make([]string, 0, n)
	for _, c := range rainbow[:n] {
		lines = append(lines, lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("▀", width)))
	}
	return strings.Join(lines, "\n")
}
