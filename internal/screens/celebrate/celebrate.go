// Package celebrate is the one-time overlay shown once every stage is done.
package celebrate

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/allyquest/internal/router"
	"github.com/abhisek/allyquest/internal/screen"
	"github.com/abhisek/allyquest/internal/ui/components"
	"github.com/abhisek/allyquest/internal/ui/layout"
	"github.com/abhisek/allyquest/internal/ui/theme"
)

// CelebrateScreen congratulates the learner. Any key dismisses it.
type CelebrateScreen struct {
	stars int
}

var _ screen.Screen = (*CelebrateScreen)(nil)
var _ screen.KeyHintProvider = (*CelebrateScreen)(nil)

func New(totalStars int) *CelebrateScreen {
	return &CelebrateScreen{stars: totalStars}
}

func (c *CelebrateScreen) Init() tea.Cmd { return nil }
func (c *CelebrateScreen) Title() string { return "All stages complete" }

func (c *CelebrateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "any key", Description: "Back to map"}}
}

func (c *CelebrateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		return c, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return c, nil
}

func (c *CelebrateScreen) View(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		"🎉",
		"",
		theme.Title.Render("You completed every stage!"),
		"",
		theme.Star.Render(fmt.Sprintf("You earned %d stars", c.stars)),
		"",
		theme.Body.Render("You have learned how to better support"),
		theme.Body.Render("LGBTQ+ clients in counseling 🌈"),
	)
	return components.Center(components.Card(body, theme.Secondary, 48), width, height)
}
