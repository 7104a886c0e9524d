package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b", Disabled: true}, {Label: "c"}})
	assert.Equal(t, 0, m.Selected)

	m, _ = m.Update(key("down"))
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(key("up"))
	assert.Equal(t, 0, m.Selected)

	assert.False(t, m.Select(1))
	assert.True(t, m.Select(2))
}

func TestMenu_EnterChoosesEnabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}})
	_, chosen := m.Update(key("enter"))
	assert.True(t, chosen)

	m = NewMenu([]MenuItem{{Label: "locked", Disabled: true}})
	_, chosen = m.Update(key("enter"))
	assert.False(t, chosen)
}

func TestChoice_NumberKeysPick(t *testing.T) {
	c := NewChoice([]string{"He", "She", "They"})

	c, picked := c.Update(key("3"))
	assert.Equal(t, 2, picked)
	assert.Equal(t, 2, c.Cursor)

	_, picked = c.Update(key("9"))
	assert.Equal(t, -1, picked)
}

func TestChoice_CursorAndEnter(t *testing.T) {
	c := NewChoice([]string{"a", "b"})
	c, picked := c.Update(key("down"))
	assert.Equal(t, -1, picked)
	c, _ = c.Update(key("down"))
	assert.Equal(t, 1, c.Cursor)

	_, picked = c.Update(key("enter"))
	assert.Equal(t, 1, picked)
}

func TestChoice_ViewMarksResult(t *testing.T) {
	c := NewChoice([]string{"right", "wrong"})
	out := c.View(ChoiceState{Selected: 1, Correct: 0, Locked: true})
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "✗")

	out = c.View(ChoiceState{Selected: -1, Correct: -1})
	assert.NotContains(t, out, "✓")
}

func TestStars(t *testing.T) {
	out := Stars(2, 3)
	assert.Contains(t, out, "★★")
	assert.Contains(t, out, "☆")
}
