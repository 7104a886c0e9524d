// Package notes keeps the reflection wall: an append-only list of entries,
// newest first, shared by everyone using the same storage.
package notes

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/allyquest/internal/kv"
)

// Entry is a single reflection.
type Entry struct {
	ID        int64  `json:"id"` // creation time in Unix milliseconds, unique
	Text      string `json:"text"`
	By        string `json:"by"`
	Timestamp int64  `json:"timestamp"`
}

func emptyList() []Entry { return []Entry{} }

// Store manages the reflection list.
type Store struct {
	value *kv.Value[[]Entry]
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source for new entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a notes store over kv.
func NewStore(store kv.Store, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		value: kv.NewValue(store, kv.KeyNotes, emptyList, logger),
		now:   time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// List returns all entries, newest first. The list is re-read from storage
// so entries written by other processes show up.
func (s *Store) List(ctx context.Context) []Entry {
	list := s.value.Load(ctx)
	if list == nil {
		return emptyList()
	}
	return list
}

// Prepend adds a new entry at the front and persists the whole list.
func (s *Store) Prepend(ctx context.Context, text, by string) Entry {
	list := s.List(ctx)

	ts := s.now().UnixMilli()
	id := ts
	if len(list) > 0 && id <= list[0].ID {
		id = list[0].ID + 1
	}

	e := Entry{ID: id, Text: text, By: by, Timestamp: ts}
	out := make([]Entry, 0, len(list)+1)
	out = append(out, e)
	out = append(out, list...)
	s.value.Save(ctx, out)
	return e
}

// Clear removes every entry. Only used by the reset command.
func (s *Store) Clear(ctx context.Context) {
	s.value.Save(ctx, emptyList())
}
