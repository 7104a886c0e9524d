package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/allyquest/internal/nav"
	"github.com/abhisek/allyquest/internal/screen"
	"github.com/abhisek/allyquest/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	stripeWidth  = 24
)

type tickMsg time.Time

// WelcomeScreen shows a short splash before the name gate or the map.
type WelcomeScreen struct {
	duration     time.Duration
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a splash that continues on its own after duration, or on any
// key press.
func New(duration time.Duration) *WelcomeScreen {
	return &WelcomeScreen{duration: duration}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		if w.elapsed >= w.duration {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return func() tea.Msg { return nav.StartMsg{} }
}

// stripes grows the flag over the first half of the splash.
func (w *WelcomeScreen) stripes() int {
	if w.duration <= 0 {
		return len(rainbow)
	}
	half := w.duration / 2
	if w.elapsed >= half {
		return len(rainbow)
	}
	return 1 + int(w.elapsed*time.Duration(len(rainbow)-1)/max(half, 1))
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderRainbow(w.stripes(), stripeWidth)}

	if w.stripes() == len(rainbow) {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("Learn to be an affirming counselor"),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
