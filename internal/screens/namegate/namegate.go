// Package namegate asks for the learner's display name.
package namegate

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/allyquest/internal/nav"
	"github.com/abhisek/allyquest/internal/screen"
	"github.com/abhisek/allyquest/internal/ui/components"
	"github.com/abhisek/allyquest/internal/ui/layout"
	"github.com/abhisek/allyquest/internal/ui/theme"
)

const nameLimit = 32

// NameGateScreen collects a display name.
type NameGateScreen struct {
	input   components.TextInput
	editing bool
}

var _ screen.Screen = (*NameGateScreen)(nil)
var _ screen.KeyHintProvider = (*NameGateScreen)(nil)

// New creates the gate prefilled with current. A non-empty current name
// means the learner is editing and may cancel.
func New(current string) *NameGateScreen {
	in := components.NewTextInput("Your name", nameLimit)
	in.Model.SetValue(current)
	in.Model.CursorEnd()
	return &NameGateScreen{input: in, editing: strings.TrimSpace(current) != ""}
}

func (n *NameGateScreen) Init() tea.Cmd {
	return n.input.Init()
}

func (n *NameGateScreen) Title() string {
	return "Welcome"
}

func (n *NameGateScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Start"}}
	if n.editing {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Cancel"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (n *NameGateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "enter":
			if n.input.Blank() {
				return n, nil
			}
			name := n.input.Value()
			return n, func() tea.Msg { return nav.SubmitNameMsg{Name: name} }
		case "esc":
			if n.editing {
				return n, func() tea.Msg { return nav.BackMsg{} }
			}
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

func (n *NameGateScreen) View(width, height int) string {
	cw := min(components.ContentWidth(width), 48)

	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Render("🌈"),
		theme.Title.Render("AllyQuest"),
		theme.Subtitle.Render("Affirming counseling, one stage at a time"),
		"",
		theme.Body.Render("What should we call you?"),
		"",
		n.input.View(),
		"",
		components.NewButton("Start the quest", !n.input.Blank()).View(),
	}
	card := components.Card(lipgloss.JoinVertical(lipgloss.Center, lines...), theme.Primary, cw)
	return components.Center(card, width, height)
}
