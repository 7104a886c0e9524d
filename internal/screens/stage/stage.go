// Package stage is the screen that plays any of the five stage engines.
package stage

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/allyquest/internal/catalog"
	"github.com/abhisek/allyquest/internal/config"
	"github.com/abhisek/allyquest/internal/engine"
	"github.com/abhisek/allyquest/internal/kv"
	"github.com/abhisek/allyquest/internal/nav"
	"github.com/abhisek/allyquest/internal/notes"
	"github.com/abhisek/allyquest/internal/screen"
	"github.com/abhisek/allyquest/internal/ui/components"
	"github.com/abhisek/allyquest/internal/ui/layout"
)

// Deps are the collaborators a stage screen needs.
type Deps struct {
	Catalog *catalog.Catalog
	Notes   *notes.Store
	Author  string
	Timing  config.TimingConfig
}

// StageScreen implements screen.Screen for one stage session.
type StageScreen struct {
	stage     catalog.Stage
	sessionID string
	deps      Deps
	eng       engine.Engine

	choice components.Choice
	input  components.TextInput
	wall   []notes.Entry

	reported bool
}

var _ screen.Screen = (*StageScreen)(nil)
var _ screen.KeyHintProvider = (*StageScreen)(nil)

// New creates the screen for stage st under sessionID.
func New(st catalog.Stage, sessionID string, deps Deps) *StageScreen {
	s := &StageScreen{stage: st, sessionID: sessionID, deps: deps}
	c := deps.Catalog

	switch st.ID {
	case catalog.StagePronouns:
		e := engine.NewPronounDrill(c.Pronouns)
		s.eng = e
		s.choice = components.NewChoice(e.Current().Options)
	case catalog.StageLanguage:
		s.eng = engine.NewLanguageCheck(c.Language)
		s.choice = components.NewChoice([]string{"Appropriate", "Not appropriate"})
	case catalog.StageScenario:
		e := engine.NewScenarioDecision(c.Scenario)
		s.eng = e
		opts := make([]string, len(c.Scenario.Options))
		for i, o := range c.Scenario.Options {
			opts[i] = o.Text
		}
		s.choice = components.NewChoice(opts)
	case catalog.StageActions:
		e := engine.NewFriendlyActions(c.Actions)
		s.eng = e
		s.choice = components.NewChoice(e.Current().Options)
	case catalog.StageReflection:
		s.eng = engine.NewReflection(c.Reflection, deps.Notes, deps.Author)
		s.input = components.NewTextInput(c.Reflection.Placeholder, 280)
		s.wall = deps.Notes.List(context.Background())
	}
	return s
}

func (s *StageScreen) Init() tea.Cmd {
	if s.stage.ID == catalog.StageReflection {
		return s.input.Init()
	}
	return nil
}

func (s *StageScreen) Title() string {
	return s.stage.Icon + " " + s.stage.Title
}

// SessionID returns the session this screen belongs to.
func (s *StageScreen) SessionID() string {
	return s.sessionID
}

func (s *StageScreen) KeyHints() []layout.KeyHint {
	back := layout.KeyHint{Key: "Esc", Description: "Back to map"}
	if s.eng.Phase() != engine.InProgress {
		return []layout.KeyHint{back}
	}
	switch s.stage.ID {
	case catalog.StageLanguage:
		return []layout.KeyHint{
			{Key: "T", Description: "Appropriate"},
			{Key: "F", Description: "Not appropriate"},
			back,
		}
	case catalog.StageActions:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Select"},
			{Key: "Enter", Description: "Confirm"},
			back,
		}
	case catalog.StageReflection:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			back,
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "1-4", Description: "Answer"},
			back,
		}
	}
}

func (s *StageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if msg.session != s.sessionID {
			return s, nil
		}
		return s, s.advance()

	case nav.StoreChangedMsg:
		if msg.Key == kv.KeyNotes && s.stage.ID == catalog.StageReflection {
			s.wall = s.deps.Notes.List(context.Background())
		}
		return s, nil

	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			back := nav.BackMsg{}
			if stars, ok := s.eng.Rating(); ok && s.reported {
				back.Pending = &nav.StageCompleteMsg{SessionID: s.sessionID, Stars: stars}
			}
			return s, func() tea.Msg { return back }
		}
		if s.eng.Phase() != engine.InProgress {
			return s, nil
		}
		return s, s.handleKey(msg)
	}

	if s.stage.ID == catalog.StageReflection && s.eng.Phase() == engine.InProgress {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StageScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch e := s.eng.(type) {
	case *engine.PronounDrill:
		var picked int
		s.choice, picked = s.choice.Update(msg)
		if picked >= 0 && e.Choose(picked) {
			return s.feedback(s.deps.Timing.PronounFeedback)
		}

	case *engine.LanguageCheck:
		verdict := -1
		switch msg.String() {
		case "t", "y":
			verdict = 0
		case "f", "n":
			verdict = 1
		default:
			s.choice, verdict = s.choice.Update(msg)
		}
		if verdict >= 0 && e.Judge(verdict == 0) {
			s.choice.Cursor = verdict
			return s.feedback(s.deps.Timing.LanguageFeedback)
		}

	case *engine.ScenarioDecision:
		var picked int
		s.choice, picked = s.choice.Update(msg)
		if picked >= 0 && e.Choose(picked) {
			return s.feedback(s.deps.Timing.ScenarioFeedback)
		}

	case *engine.FriendlyActions:
		if msg.String() == "c" {
			if e.Confirm() {
				return s.feedback(s.deps.Timing.ActionFeedback)
			}
			return nil
		}
		var picked int
		s.choice, picked = s.choice.Update(msg)
		if picked < 0 {
			return nil
		}
		// Enter on the already-selected option confirms it.
		if msg.String() == "enter" && picked == e.Selected() {
			if e.Confirm() {
				return s.feedback(s.deps.Timing.ActionFeedback)
			}
			return nil
		}
		e.Select(picked)

	case *engine.Reflection:
		if msg.String() == "enter" {
			if e.Submit(context.Background(), s.input.Value()) {
				s.wall = s.deps.Notes.List(context.Background())
				return s.finish()
			}
			return nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}
	return nil
}

// feedback schedules the end of the feedback pause for this session.
func (s *StageScreen) feedback(d time.Duration) tea.Cmd {
	id := s.sessionID
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackDoneMsg{session: id}
	})
}

func (s *StageScreen) advance() tea.Cmd {
	adv, ok := s.eng.(engine.Advancer)
	if !ok || !adv.Advance() {
		return nil
	}
	if s.eng.Phase() == engine.Finished {
		return s.finish()
	}

	switch e := s.eng.(type) {
	case *engine.PronounDrill:
		s.choice = components.NewChoice(e.Current().Options)
	case *engine.LanguageCheck:
		s.choice.Cursor = 0
	case *engine.FriendlyActions:
		s.choice = components.NewChoice(e.Current().Options)
	}
	return nil
}

// finish reports the rating once and schedules the return to the map after
// the result has been on screen.
func (s *StageScreen) finish() tea.Cmd {
	stars, ok := s.eng.Rating()
	if !ok || s.reported {
		return nil
	}
	s.reported = true

	id := s.sessionID
	wait := s.deps.Timing.Result
	if s.stage.ID == catalog.StageActions {
		wait = s.deps.Timing.ActionResult
	}
	wait += s.deps.Timing.ReturnToMap

	return tea.Batch(
		func() tea.Msg { return nav.StageCompleteMsg{SessionID: id, Stars: stars} },
		tea.Tick(wait, func(time.Time) tea.Msg { return nav.ReturnToMapMsg{SessionID: id} }),
	)
}
