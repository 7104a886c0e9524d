package engine

import "github.com/abhisek/allyquest/internal/catalog"

// ScenarioDecision plays stage 3: one scenario, one choice. The rating is the
// star value attached to the chosen option.
type ScenarioDecision struct {
	session
	content catalog.ScenarioContent
}

func NewScenarioDecision(content catalog.ScenarioContent) *ScenarioDecision {
	return &ScenarioDecision{session: newSession(), content: content}
}

func (s *ScenarioDecision) Content() catalog.ScenarioContent { return s.content }

func (s *ScenarioDecision) Choose(option int) bool {
	if s.phase != InProgress || option < 0 || option >= len(s.content.Options) {
		return false
	}
	s.selected = option
	s.phase = AwaitingTransition
	return true
}

// Chosen returns the locked option.
func (s *ScenarioDecision) Chosen() (catalog.ScenarioOption, bool) {
	if s.selected < 0 {
		return catalog.ScenarioOption{}, false
	}
	return s.content.Options[s.selected], true
}

func (s *ScenarioDecision) Advance() bool {
	if s.phase != AwaitingTransition {
		return false
	}
	s.phase = Finished
	s.rating = RateScenario(s.content.Options[s.selected].Stars)
	return true
}

// RateScenario clamps an option's star value into 1..3.
func RateScenario(stars int) int {
	return max(1, min(3, stars))
}
