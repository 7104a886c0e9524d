package stagemap

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/allyquest/internal/catalog"
	"github.com/abhisek/allyquest/internal/kv"
	"github.com/abhisek/allyquest/internal/nav"
	"github.com/abhisek/allyquest/internal/progress"
)

func newTestMap(t *testing.T, completed ...int) (*MapScreen, *progress.Tracker) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	tr := progress.NewTracker(context.Background(), kv.NewMemory(), nil)
	for _, id := range completed {
		tr.CompleteStage(context.Background(), id, 2)
	}
	return New(cat, tr), tr
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestCursorStartsOnNextStage(t *testing.T) {
	m, _ := newTestMap(t, 1, 2)
	assert.Equal(t, 2, m.menu.Selected)
}

func TestEnterOpensSelected(t *testing.T) {
	m, _ := newTestMap(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, nav.SelectStageMsg{StageID: 1}, cmd())
}

func TestLockedStageNotOpened(t *testing.T) {
	m, _ := newTestMap(t)

	_, cmd := m.Update(keyPress('3'))
	assert.Nil(t, cmd)

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.menu.Selected, "cursor skips locked stages")
}

func TestNumberKeyOpensUnlocked(t *testing.T) {
	m, _ := newTestMap(t, 1)
	_, cmd := m.Update(keyPress('2'))
	require.NotNil(t, cmd)
	assert.Equal(t, nav.SelectStageMsg{StageID: 2}, cmd())
}

func TestEditName(t *testing.T) {
	m, _ := newTestMap(t)
	_, cmd := m.Update(keyPress('e'))
	require.NotNil(t, cmd)
	assert.Equal(t, nav.EditNameMsg{}, cmd())
}

func TestViewShowsLockAndStars(t *testing.T) {
	m, _ := newTestMap(t, 1)
	view := m.View(90, 40)
	assert.Contains(t, view, "1 / 5 stages")
	assert.Contains(t, view, "✓ Completed")
	assert.Contains(t, view, "★★")
	assert.Contains(t, view, "🔒")
}
