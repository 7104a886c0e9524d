package engine

import "github.com/abhisek/allyquest/internal/catalog"

// PronounDrill plays stage 1: multiple-choice pronoun questions. A choice
// locks the question until Advance.
type PronounDrill struct {
	session
	content catalog.PronounContent
}

func NewPronounDrill(content catalog.PronounContent) *PronounDrill {
	return &PronounDrill{session: newSession(), content: content}
}

func (d *PronounDrill) Content() catalog.PronounContent { return d.content }
func (d *PronounDrill) Total() int                      { return len(d.content.Questions) }

// Current returns the question being asked.
func (d *PronounDrill) Current() catalog.Question {
	return d.content.Questions[d.index]
}

// Choose answers the current question. Returns false if input is locked or
// option is out of range.
func (d *PronounDrill) Choose(option int) bool {
	if d.phase != InProgress || option < 0 || option >= len(d.Current().Options) {
		return false
	}
	d.selected = option
	if option == d.Current().Answer {
		d.correct++
	}
	d.phase = AwaitingTransition
	return true
}

// LastCorrect reports whether the locked choice was right.
func (d *PronounDrill) LastCorrect() bool {
	return d.selected >= 0 && d.selected == d.Current().Answer
}

func (d *PronounDrill) Advance() bool {
	return d.advance(d.Total(), RatePronouns)
}

// RatePronouns maps a stage 1 score to stars.
func RatePronouns(score int) int {
	switch {
	case score >= 3:
		return 3
	case score >= 2:
		return 2
	default:
		return 1
	}
}
