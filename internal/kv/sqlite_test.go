package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_GetAbsent(t *testing.T) {
	s := openTestSQLite(t)

	_, ok, err := s.Get(context.Background(), KeyProgress)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLite_SetGetOverwrite(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyName, `"Sam"`))
	require.NoError(t, s.Set(ctx, KeyName, `"Alex"`))

	got, ok, err := s.Get(ctx, KeyName)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"Alex"`, got)

	var rows int
	require.NoError(t, s.db.Get(&rows, `SELECT COUNT(*) FROM kv`))
	assert.Equal(t, 1, rows)
}

func TestSQLite_Delete(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyNotes, `[]`))
	require.NoError(t, s.Delete(ctx, KeyNotes))
	require.NoError(t, s.Delete(ctx, KeyNotes))

	_, ok, err := s.Get(ctx, KeyNotes)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyProgress, `{"1":{"completed":true,"stars":2,"timestamp":1}}`))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.Get(ctx, KeyProgress)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"1":{"completed":true,"stars":2,"timestamp":1}}`, got)
}

func TestSQLite_PragmasApplied(t *testing.T) {
	s := openTestSQLite(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, s.db.QueryRow("PRAGMA "+tt.pragma).Scan(&got), tt.pragma)
		assert.Equal(t, tt.want, got, tt.pragma)
	}
}

func TestSQLite_ClosedStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Set(context.Background(), KeyName, `"x"`), ErrClosed)
}
