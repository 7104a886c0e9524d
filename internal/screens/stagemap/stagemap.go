// Package stagemap shows the five stages with lock state and stars.
package stagemap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/allyquest/internal/catalog"
	"github.com/abhisek/allyquest/internal/nav"
	"github.com/abhisek/allyquest/internal/progress"
	"github.com/abhisek/allyquest/internal/screen"
	"github.com/abhisek/allyquest/internal/ui/components"
	"github.com/abhisek/allyquest/internal/ui/layout"
	"github.com/abhisek/allyquest/internal/ui/theme"
)

// MapScreen is the stage selection screen.
type MapScreen struct {
	catalog *catalog.Catalog
	tracker *progress.Tracker
	menu    components.Menu
}

var _ screen.Screen = (*MapScreen)(nil)
var _ screen.KeyHintProvider = (*MapScreen)(nil)

// New creates the map. The cursor starts on the first unlocked stage that
// has not been completed yet.
func New(cat *catalog.Catalog, tracker *progress.Tracker) *MapScreen {
	m := &MapScreen{catalog: cat, tracker: tracker}
	m.menu = components.NewMenu(m.items())
	for i, st := range cat.Stages {
		if r, ok := tracker.Record(st.ID); (!ok || !r.Completed) && tracker.IsUnlocked(st.ID) {
			m.menu.Select(i)
			break
		}
	}
	return m
}

func (m *MapScreen) items() []components.MenuItem {
	items := make([]components.MenuItem, len(m.catalog.Stages))
	for i, st := range m.catalog.Stages {
		items[i] = components.MenuItem{Label: st.Title, Disabled: !m.tracker.IsUnlocked(st.ID)}
	}
	return items
}

func (m *MapScreen) Init() tea.Cmd {
	return nil
}

func (m *MapScreen) Title() string {
	return "Stage Map"
}

func (m *MapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "E", Description: "Edit name"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m *MapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := k.String()
	switch {
	case key == "e":
		return m, func() tea.Msg { return nav.EditNameMsg{} }
	case len(key) == 1 && key[0] >= '1' && key[0] <= '9':
		i := int(key[0] - '1')
		if !m.menu.Select(i) {
			return m, nil
		}
		return m, m.open(i)
	}

	var chosen bool
	m.menu, chosen = m.menu.Update(msg)
	if chosen {
		return m, m.open(m.menu.Selected)
	}
	return m, nil
}

func (m *MapScreen) open(i int) tea.Cmd {
	id := m.catalog.Stages[i].ID
	return func() tea.Msg { return nav.SelectStageMsg{StageID: id} }
}

func (m *MapScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	total := m.catalog.Len()
	done := m.tracker.CompletedCount()

	var b strings.Builder
	b.WriteString(components.NewProgressBar(
		fmt.Sprintf("%d / %d stages", done, total),
		float64(done)/float64(max(total, 1)), false, cw).View())
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(cw).Render("Choose a stage to start learning"))
	b.WriteString("\n")

	compact := layout.IsCompactHeight(height)
	for i, st := range m.catalog.Stages {
		b.WriteString("\n")
		b.WriteString(m.renderCard(st, i == m.menu.Selected, cw, compact))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (m *MapScreen) renderCard(st catalog.Stage, selected bool, cw int, compact bool) string {
	unlocked := m.tracker.IsUnlocked(st.ID)
	rec, _ := m.tracker.Record(st.ID)

	name := fmt.Sprintf("Stage %d  %s %s", st.ID, st.Icon, st.Title)
	var status string
	switch {
	case !unlocked:
		status = theme.Dimmed.Render("🔒 Complete the previous stage to unlock")
	case rec.Completed:
		status = theme.Correct.Render("✓ Completed") + "   " + components.Stars(rec.Stars, 3)
	default:
		status = theme.Dimmed.Render("▶ Ready")
	}

	accent := theme.StageColor(st.Color)
	titleStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	if !unlocked {
		accent = theme.Locked
		titleStyle = theme.Dimmed
	}
	if selected {
		name = "▸ " + name
	}

	if compact {
		return titleStyle.Render(name) + "   " + status
	}
	border := lipgloss.NormalBorder()
	if selected {
		border = lipgloss.ThickBorder()
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(accent).
		Width(cw).
		Padding(0, 1).
		Render(titleStyle.Render(name) + "\n" + status)
}
