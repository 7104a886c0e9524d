package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestRenderHeader_ShowsLearnerSummary(t *testing.T) {
	out := RenderHeader("Stage Map", HeaderInfo{Name: "Sam", Stars: 7, Completed: 3, Total: 5}, 90)
	assert.Contains(t, out, "AllyQuest")
	assert.Contains(t, out, "Stage Map")
	assert.Contains(t, out, "Sam")
	assert.Contains(t, out, "★ 7")
	assert.Contains(t, out, "3/5")
}

func TestRenderHeader_NoNameHidesSummary(t *testing.T) {
	out := RenderHeader("Welcome", HeaderInfo{Stars: 4, Total: 5}, 90)
	assert.NotContains(t, out, "★")
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}, {Key: "Esc", Description: "Back"}}, 80)
	assert.Contains(t, out, "Enter")
	assert.Contains(t, out, "Back")
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("T", HeaderInfo{}, 80)
	footer := RenderFooter(nil, 80)
	out := RenderFrame(header, "body", footer, 80, 24)
	assert.Equal(t, 24, strings.Count(out, "\n")+1)
}
