package engine

import (
	"context"
	"strings"

	"github.com/abhisek/allyquest/internal/catalog"
	"github.com/abhisek/allyquest/internal/notes"
)

// NoteWriter appends to the reflection wall.
type NoteWriter interface {
	Prepend(ctx context.Context, text, by string) notes.Entry
}

// Reflection plays stage 5: a free-text reflection that always earns three
// stars once submitted.
type Reflection struct {
	content catalog.ReflectionContent
	writer  NoteWriter
	author  string
	phase   Phase
	entry   notes.Entry
}

func NewReflection(content catalog.ReflectionContent, writer NoteWriter, author string) *Reflection {
	return &Reflection{content: content, writer: writer, author: author}
}

func (r *Reflection) Content() catalog.ReflectionContent { return r.content }
func (r *Reflection) Phase() Phase                       { return r.phase }

func (r *Reflection) Rating() (int, bool) {
	if r.phase != Finished {
		return 0, false
	}
	return 3, true
}

// CanSubmit reports whether text would be accepted.
func CanSubmit(text string) bool {
	return strings.TrimSpace(text) != ""
}

// Submit stores text on the wall as typed. Whitespace-only text and repeat
// submissions are rejected.
func (r *Reflection) Submit(ctx context.Context, text string) bool {
	if r.phase != InProgress || !CanSubmit(text) {
		return false
	}
	r.entry = r.writer.Prepend(ctx, text, r.author)
	r.phase = Finished
	return true
}

// Entry returns the submitted entry.
func (r *Reflection) Entry() (notes.Entry, bool) {
	return r.entry, r.phase == Finished
}
