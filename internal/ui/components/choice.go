package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/allyquest/internal/ui/theme"
)

// Choice renders a numbered option list with a cursor. It is a view helper:
// the owning engine decides whether input is accepted and what is correct.
type Choice struct {
	Options []string
	Cursor  int
}

// NewChoice creates a choice list with the cursor on the first option.
func NewChoice(options []string) Choice {
	return Choice{Options: options}
}

// ChoiceState describes how options should be highlighted.
type ChoiceState struct {
	// Selected is the option the learner picked, or -1.
	Selected int
	// Correct is revealed once an answer is locked, or -1 to hide it.
	Correct int
	// Locked hides the cursor.
	Locked bool
}

// Update moves the cursor. picked is set to an option index when the
// learner presses enter or a number key, otherwise -1.
func (c Choice) Update(msg tea.Msg) (choice Choice, picked int) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(c.Options) == 0 {
		return c, -1
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter":
		return c, c.Cursor
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(c.Options) {
				c.Cursor = i
				return c, i
			}
		}
	}
	return c, -1
}

// View renders the options in st.
func (c Choice) View(st ChoiceState) string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor && !st.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case st.Locked && i == st.Correct:
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		case st.Locked && i == st.Selected && st.Correct >= 0:
			b.WriteString(theme.Incorrect.Render(line + "  ✗"))
		case st.Locked && i == st.Selected:
			b.WriteString(theme.Selected.Render(line))
		case st.Locked:
			b.WriteString(theme.Dimmed.Render(line))
		case i == st.Selected:
			b.WriteString(theme.Selected.Render(line + "  ●"))
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
