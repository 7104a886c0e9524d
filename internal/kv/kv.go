// Package kv provides the persistent key-value storage used for learner
// state. Values are text (JSON) keyed by short names such as "progress".
package kv

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// Well-known keys for persisted learner state.
const (
	KeyProgress = "progress"
	KeyName     = "name"
	KeyNotes    = "notes"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("kv: store closed")

// ErrInvalidKey is returned when a key cannot be stored by a backend.
var ErrInvalidKey = errors.New("kv: invalid key")

// Store is the host storage consumed by the application.
type Store interface {
	// Get returns the stored text for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores text under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Value is a typed accessor over a single key. Reads fall back to a default
// on absence or malformed data; writes are best-effort.
type Value[T any] struct {
	store  Store
	key    string
	def    func() T
	logger *zap.Logger
}

// NewValue creates a typed accessor for key. def is called for every fallback
// so callers may mutate the returned value freely.
func NewValue[T any](store Store, key string, def func() T, logger *zap.Logger) *Value[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Value[T]{store: store, key: key, def: def, logger: logger}
}

// Load reads and decodes the stored value.
func (v *Value[T]) Load(ctx context.Context) T {
	raw, ok, err := v.store.Get(ctx, v.key)
	if err != nil {
		v.logger.Warn("read failed, using default", zap.String("key", v.key), zap.Error(err))
		return v.def()
	}
	if !ok || raw == "" {
		return v.def()
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		v.logger.Warn("malformed value, using default", zap.String("key", v.key), zap.Error(err))
		return v.def()
	}
	return out
}

// Save encodes and stores val. Failures are logged and otherwise ignored.
func (v *Value[T]) Save(ctx context.Context, val T) {
	b, err := json.Marshal(val)
	if err != nil {
		v.logger.Warn("encode failed, value not saved", zap.String("key", v.key), zap.Error(err))
		return
	}
	if err := v.store.Set(ctx, v.key, string(b)); err != nil {
		v.logger.Warn("write failed, value not saved", zap.String("key", v.key), zap.Error(err))
	}
}
