package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Store persists one JSON document of type T under a fixed key.
// Load, Save and Reset never fail for expected conditions: missing keys,
// corrupt data and write failures are logged and absorbed.
type Store[T any] struct {
	backend  Backend
	defaults func() T
	logger   *slog.Logger
	key      string
	mu       sync.Mutex
	loaded   bool
}

// StoreOption configures a Store.
type StoreOption func(*storeOptions)

type storeOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for storage warnings.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(o *storeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewStore creates a store for key. backend may be nil, in which case every
// Load returns defaults() and every Save is skipped.
func NewStore[T any](backend Backend, key string, defaults func() T, opts ...StoreOption) *Store[T] {
	o := storeOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{
		backend:  backend,
		key:      key,
		defaults: defaults,
		logger:   o.logger.With("component", "store", "key", key),
	}
}

// Key returns the storage key.
func (s *Store[T]) Key() string {
	return s.key
}

// IsLoading is true until the first Load finishes.
func (s *Store[T]) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.loaded
}

// Load reads the stored document, falling back to defaults when it is
// missing, unreadable or not valid JSON. A valid document with fields of the
// wrong shape is kept: those fields stay zero and the rest is returned.
func (s *Store[T]) Load(ctx context.Context) T {
	value := s.read(ctx)

	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()

	return value
}

func (s *Store[T]) read(ctx context.Context) T {
	if s.backend == nil {
		return s.defaults()
	}

	raw, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, ErrKeyNotFound) {
		return s.defaults()
	}
	if err != nil {
		s.logger.Warn("Error reading stored data, using defaults", "error", err)
		return s.defaults()
	}

	if !json.Valid(raw) {
		s.logger.Warn("Stored data is not valid JSON, using defaults")
		return s.defaults()
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.Warn("Stored data has unexpected values, keeping the rest", "error", err)
	}
	return value
}

// Save writes value under the key. Failures are logged, not returned.
func (s *Store[T]) Save(ctx context.Context, value T) {
	if s.backend == nil {
		s.logger.Warn("No storage backend available, skipping save")
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Error serializing data", "error", err)
		return
	}

	if err := s.backend.Set(ctx, s.key, raw); err != nil {
		s.logger.Warn("Error saving data", "error", err)
	}
}

// Reset removes the stored document; the next Load returns defaults.
func (s *Store[T]) Reset(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}
	if err := s.backend.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to reset stored data: %w", err)
	}
	return nil
}
