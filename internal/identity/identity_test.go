package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/allyquest/internal/kv"
)

func TestNewStore_DefaultsToEmpty(t *testing.T) {
	s := NewStore(context.Background(), kv.NewMemory(), nil)
	assert.Equal(t, "", s.Name())
	assert.False(t, s.HasName())
}

func TestSetName_TrimsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	s := NewStore(ctx, store, nil)

	require.True(t, s.SetName(ctx, "  Sam  "))
	assert.Equal(t, "Sam", s.Name())

	raw, ok, err := store.Get(ctx, kv.KeyName)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"Sam"`, raw)

	assert.Equal(t, "Sam", NewStore(ctx, store, nil).Name())
}

func TestSetName_RejectsBlank(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, kv.NewMemory(), nil)
	require.True(t, s.SetName(ctx, "Sam"))

	assert.False(t, s.SetName(ctx, "   "))
	assert.Equal(t, "Sam", s.Name())
}

func TestMalformedName(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, kv.KeyName, "{"))

	assert.False(t, NewStore(ctx, store, nil).HasName())
}
