package storage

import (
	"context"
	"fmt"
	"path/filepath"
)

// Open creates the configured backend rooted at dataDir. SQLite databases
// are migrated before they are returned.
func Open(ctx context.Context, kind Kind, dataDir string) (Backend, error) {
	switch kind {
	case KindFile, "":
		return NewFileBackend(dataDir)
	case KindSQLite:
		backend, err := NewSQLiteBackend(filepath.Join(dataDir, "snacker.db"))
		if err != nil {
			return nil, err
		}
		if err := backend.Migrate(ctx); err != nil {
			_ = backend.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return backend, nil
	case KindMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
