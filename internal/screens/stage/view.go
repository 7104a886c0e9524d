package stage

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/allyquest/internal/engine"
	"github.com/abhisek/allyquest/internal/ui/components"
	"github.com/abhisek/allyquest/internal/ui/theme"
)

const wallLimit = 5

func (s *StageScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	accent := theme.StageColor(s.stage.Color)

	var body string
	if s.eng.Phase() == engine.Finished {
		body = s.renderResult()
	} else {
		body = s.renderPlay(cw)
	}

	heading := lipgloss.NewStyle().Foreground(accent).Bold(true).
		Render(fmt.Sprintf("Stage %d  %s", s.stage.ID, s.stage.Title))

	content := heading + "\n\n" + components.Card(body, accent, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, "\n"+content)
}

func (s *StageScreen) renderPlay(cw int) string {
	var b strings.Builder

	switch e := s.eng.(type) {
	case *engine.PronounDrill:
		c := e.Content()
		b.WriteString(theme.Dimmed.Render(c.Prompt) + "\n\n")
		b.WriteString(progressLine(e.Index(), e.Total(), cw) + "\n\n")
		b.WriteString(theme.Body.Bold(true).Render(e.Current().Text) + "\n\n")
		st := components.ChoiceState{Selected: e.Selected(), Correct: -1}
		if e.Phase() == engine.AwaitingTransition {
			st.Locked = true
			st.Correct = e.Current().Answer
		}
		b.WriteString(s.choice.View(st))
		if st.Locked {
			b.WriteString("\n" + verdictLine(e.LastCorrect(), "Correct!", "Not quite."))
		}

	case *engine.LanguageCheck:
		c := e.Content()
		b.WriteString(theme.Dimmed.Render(c.Prompt) + "\n\n")
		b.WriteString(progressLine(e.Index(), e.Total(), cw) + "\n\n")
		b.WriteString(theme.Body.Bold(true).Render("“"+e.Current().Text+"”") + "\n\n")
		st := components.ChoiceState{Selected: -1, Correct: -1}
		if v, ok := e.Verdict(); ok {
			st.Locked = true
			st.Selected = verdictIndex(v)
			st.Correct = verdictIndex(e.Current().Appropriate)
		}
		b.WriteString(s.choice.View(st))
		if st.Locked {
			b.WriteString("\n" + verdictLine(e.LastCorrect(), "Correct!", "Not quite."))
			b.WriteString("\n" + wrap(e.Current().Explanation, cw))
		}

	case *engine.ScenarioDecision:
		c := e.Content()
		b.WriteString(theme.Dimmed.Render(c.Prompt) + "\n\n")
		b.WriteString(theme.Body.Bold(true).Render(c.Title) + "\n")
		b.WriteString(wrap(c.Description, cw) + "\n\n")
		st := components.ChoiceState{Selected: e.Selected(), Correct: -1}
		if opt, ok := e.Chosen(); ok {
			st.Locked = true
			b.WriteString(s.choice.View(st))
			b.WriteString("\n" + components.Stars(opt.Stars, 3) + "\n")
			b.WriteString(wrap(opt.Feedback, cw))
		} else {
			b.WriteString(s.choice.View(st))
		}

	case *engine.FriendlyActions:
		c := e.Content()
		b.WriteString(theme.Dimmed.Render(c.Prompt) + "\n\n")
		b.WriteString(progressLine(e.Index(), e.Total(), cw) + "\n\n")
		b.WriteString(wrap(e.Current().Text, cw) + "\n\n")
		st := components.ChoiceState{Selected: e.Selected(), Correct: -1}
		if e.Phase() == engine.AwaitingTransition {
			st.Locked = true
			st.Correct = e.Current().Answer
		}
		b.WriteString(s.choice.View(st))
		b.WriteString("\n")
		switch {
		case st.Locked:
			b.WriteString(verdictLine(e.LastCorrect(), "Correct!", "That option may not feel affirming."))
		case e.CanConfirm():
			b.WriteString(components.NewButton("Confirm answer", true).View())
		default:
			b.WriteString(components.NewButton("Choose an answer", false).View())
		}

	case *engine.Reflection:
		c := e.Content()
		b.WriteString(theme.Dimmed.Render(c.Prompt) + "\n\n")
		b.WriteString(s.input.View() + "\n\n")
		b.WriteString(components.NewButton("Share my reflection", !s.input.Blank()).View())
		b.WriteString("\n\n" + s.renderWall(cw))
	}

	return b.String()
}

func (s *StageScreen) renderResult() string {
	stars, _ := s.eng.Rating()

	var lines []string
	lines = append(lines, theme.Title.Render("Stage complete!"), "", components.Stars(stars, 3), "")

	switch e := s.eng.(type) {
	case *engine.PronounDrill:
		lines = append(lines,
			fmt.Sprintf("%d / %d correct", e.Correct(), e.Total()),
			"", theme.Hint.Render(e.Content().Tip))
	case *engine.LanguageCheck:
		lines = append(lines,
			fmt.Sprintf("%d / %d correct", e.Correct(), e.Total()),
			"", theme.Hint.Render(e.Content().Tip))
	case *engine.ScenarioDecision:
		lines = append(lines, theme.Hint.Render(e.Content().Tip))
	case *engine.FriendlyActions:
		lines = append(lines,
			fmt.Sprintf("%d / %d correct", e.Correct(), e.Total()),
			"", theme.Hint.Render(e.Content().Tip))
	case *engine.Reflection:
		lines = append(lines, theme.Body.Render(e.Content().Thanks))
	}

	lines = append(lines, "", theme.Dimmed.Render("Returning to the map..."))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (s *StageScreen) renderWall(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Selected.Render("Reflections from others") + "\n")
	if len(s.wall) == 0 {
		b.WriteString(theme.Dimmed.Render("No reflections yet. Be the first!"))
		return b.String()
	}
	for i, n := range s.wall {
		if i == wallLimit {
			b.WriteString(theme.Dimmed.Render(fmt.Sprintf("...and %d more", len(s.wall)-wallLimit)))
			break
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(n.By) + "\n")
		b.WriteString(wrap(n.Text, cw) + "\n")
	}
	return b.String()
}

func progressLine(index, total, cw int) string {
	label := fmt.Sprintf("%d / %d", index+1, total)
	return components.NewProgressBar(label, float64(index)/float64(total), false, cw-8).View()
}

func verdictLine(ok bool, yes, no string) string {
	if ok {
		return theme.Correct.Render("✓ " + yes)
	}
	return theme.Incorrect.Render("✗ " + no)
}

func verdictIndex(appropriate bool) int {
	if appropriate {
		return 0
	}
	return 1
}

func wrap(text string, cw int) string {
	return theme.Body.Width(max(cw-8, 10)).Render(text)
}
