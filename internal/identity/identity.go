// Package identity stores the learner's display name.
package identity

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/allyquest/internal/kv"
)

// Store holds the display name, persisted under its own key.
type Store struct {
	value *kv.Value[string]
	name  string
}

// NewStore loads the stored name; absent or malformed data yields "".
func NewStore(ctx context.Context, store kv.Store, logger *zap.Logger) *Store {
	v := kv.NewValue(store, kv.KeyName, func() string { return "" }, logger)
	return &Store{value: v, name: v.Load(ctx)}
}

// Name returns the current display name.
func (s *Store) Name() string {
	return s.name
}

// HasName reports whether a usable name is stored.
func (s *Store) HasName() bool {
	return strings.TrimSpace(s.name) != ""
}

// SetName trims and saves name. Blank input is rejected.
func (s *Store) SetName(ctx context.Context, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	s.name = name
	s.value.Save(ctx, name)
	return true
}

// Clear forgets the stored name.
func (s *Store) Clear(ctx context.Context) {
	s.name = ""
	s.value.Save(ctx, "")
}
