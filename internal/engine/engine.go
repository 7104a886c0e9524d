// Package engine implements the five stage engines. Each engine is a pure
// state machine over fixed catalog content: it records selections, moves
// through its items and, once finished, yields exactly one star rating.
//
// Engines know nothing about timers. The caller shows feedback while an
// engine is AwaitingTransition and calls Advance when the delay elapses.
package engine

// Phase is the lifecycle position of an engine session.
type Phase int

const (
	// InProgress accepts input for the current item.
	InProgress Phase = iota
	// AwaitingTransition shows feedback; input is locked until Advance.
	AwaitingTransition
	// Finished holds the final rating. No further input is accepted.
	Finished
)

func (p Phase) String() string {
	switch p {
	case InProgress:
		return "in-progress"
	case AwaitingTransition:
		return "awaiting-transition"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Engine is the contract shared by every stage.
type Engine interface {
	Phase() Phase
	// Rating returns the star rating once the engine is Finished.
	Rating() (stars int, ok bool)
}

// Advancer is implemented by engines that pause on feedback between items.
type Advancer interface {
	Engine
	Advance() bool
}

// session is the bookkeeping shared by the quiz-style engines.
type session struct {
	phase    Phase
	index    int
	correct  int
	selected int
	rating   int
}

func newSession() session {
	return session{selected: -1}
}

func (s *session) Phase() Phase { return s.phase }

func (s *session) Rating() (int, bool) {
	if s.phase != Finished {
		return 0, false
	}
	return s.rating, true
}

// Index is the zero-based position of the current item.
func (s *session) Index() int { return s.index }

// Correct is the running count of correct answers.
func (s *session) Correct() int { return s.correct }

// Selected is the chosen option for the current item, or -1.
func (s *session) Selected() int { return s.selected }

// advance moves to the next of total items, finishing with rate(correct)
// after the last one. It only acts while awaiting a transition.
func (s *session) advance(total int, rate func(int) int) bool {
	if s.phase != AwaitingTransition {
		return false
	}
	s.index++
	s.selected = -1
	if s.index >= total {
		s.index = total - 1
		s.phase = Finished
		s.rating = rate(s.correct)
		return true
	}
	s.phase = InProgress
	return true
}
