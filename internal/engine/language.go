package engine

import "github.com/abhisek/allyquest/internal/catalog"

// LanguageCheck plays stage 2: judge each phrase appropriate or not.
type LanguageCheck struct {
	session
	content catalog.LanguageContent
	judged  *bool
}

func NewLanguageCheck(content catalog.LanguageContent) *LanguageCheck {
	return &LanguageCheck{session: newSession(), content: content}
}

func (l *LanguageCheck) Content() catalog.LanguageContent { return l.content }
func (l *LanguageCheck) Total() int                       { return len(l.content.Phrases) }

func (l *LanguageCheck) Current() catalog.Phrase {
	return l.content.Phrases[l.index]
}

// Judge records a verdict for the current phrase.
func (l *LanguageCheck) Judge(appropriate bool) bool {
	if l.phase != InProgress {
		return false
	}
	l.judged = &appropriate
	if appropriate == l.Current().Appropriate {
		l.correct++
	}
	l.phase = AwaitingTransition
	return true
}

// Verdict returns the locked judgment for the current phrase.
func (l *LanguageCheck) Verdict() (appropriate, ok bool) {
	if l.judged == nil {
		return false, false
	}
	return *l.judged, true
}

// LastCorrect reports whether the locked verdict matched.
func (l *LanguageCheck) LastCorrect() bool {
	v, ok := l.Verdict()
	return ok && v == l.Current().Appropriate
}

func (l *LanguageCheck) Advance() bool {
	if !l.advance(l.Total(), RateLanguage) {
		return false
	}
	if l.phase == InProgress {
		l.judged = nil
	}
	return true
}

// RateLanguage maps a stage 2 score to stars.
func RateLanguage(score int) int {
	switch {
	case score >= 4:
		return 3
	case score >= 3:
		return 2
	default:
		return 1
	}
}
