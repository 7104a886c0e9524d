package engine

import "github.com/abhisek/allyquest/internal/catalog"

// FriendlyActions plays stage 4: multiple choice with an explicit confirm.
// The selection may change freely until Confirm locks it.
type FriendlyActions struct {
	session
	content catalog.ActionContent
}

func NewFriendlyActions(content catalog.ActionContent) *FriendlyActions {
	return &FriendlyActions{session: newSession(), content: content}
}

func (f *FriendlyActions) Content() catalog.ActionContent { return f.content }
func (f *FriendlyActions) Total() int                     { return len(f.content.Questions) }

func (f *FriendlyActions) Current() catalog.Question {
	return f.content.Questions[f.index]
}

// Select marks an option without committing to it.
func (f *FriendlyActions) Select(option int) bool {
	if f.phase != InProgress || option < 0 || option >= len(f.Current().Options) {
		return false
	}
	f.selected = option
	return true
}

// CanConfirm reports whether Confirm would be accepted.
func (f *FriendlyActions) CanConfirm() bool {
	return f.phase == InProgress && f.selected >= 0
}

// Confirm commits the current selection.
func (f *FriendlyActions) Confirm() bool {
	if !f.CanConfirm() {
		return false
	}
	if f.selected == f.Current().Answer {
		f.correct++
	}
	f.phase = AwaitingTransition
	return true
}

func (f *FriendlyActions) LastCorrect() bool {
	return f.phase != InProgress && f.selected >= 0 && f.selected == f.Current().Answer
}

func (f *FriendlyActions) Advance() bool {
	return f.advance(f.Total(), RateActions)
}

// RateActions maps a stage 4 score to stars.
func RateActions(correct int) int {
	switch {
	case correct == 2:
		return 3
	case correct >= 1:
		return 2
	default:
		return 1
	}
}
