package kv

import (
	"fmt"
	"path/filepath"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendDir    = "dir"
	BackendMemory = "memory"
)

// Open creates a Store for the named backend. path is the database file for
// sqlite and the directory for dir; memory ignores it. An empty path selects
// the default location.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendSQLite:
		if path == "" {
			p, err := DefaultDBPath()
			if err != nil {
				return nil, fmt.Errorf("resolve DB path: %w", err)
			}
			path = p
		} else if err := EnsureDir(path); err != nil {
			return nil, fmt.Errorf("create DB dir: %w", err)
		}
		return OpenSQLite(path)

	case BackendDir:
		if path == "" {
			p, err := DefaultDBPath()
			if err != nil {
				return nil, fmt.Errorf("resolve store path: %w", err)
			}
			path = filepath.Join(filepath.Dir(p), "kv")
		}
		return OpenDir(path)

	case BackendMemory:
		return NewMemory(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
