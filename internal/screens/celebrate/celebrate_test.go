package celebrate

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/allyquest/internal/router"
)

func TestAnyKeyDismisses(t *testing.T) {
	c := New(12)
	_, cmd := c.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestViewShowsStars(t *testing.T) {
	assert.Contains(t, New(12).View(80, 24), "12 stars")
}
