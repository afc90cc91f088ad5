// Package appstate holds the in-memory Snacker document and the operations
// that change it. Every mutation builds a new document value and writes the
// whole document back through the store.
package appstate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Veraticus/snacker/internal/model"
	"github.com/Veraticus/snacker/internal/storage"
	"github.com/google/uuid"
)

// DocumentStore is the persistence the facade needs.
type DocumentStore interface {
	Load(ctx context.Context) model.Document
	Save(ctx context.Context, doc model.Document)
	Reset(ctx context.Context) error
	IsLoading() bool
}

var _ DocumentStore = (*storage.Store[model.Document])(nil)

// State is the application state facade.
type State struct {
	store       DocumentStore
	logger      *slog.Logger
	newID       func() string
	now         func() time.Time
	doc         model.Document
	mu          sync.RWMutex
	initialized bool
}

// Option configures a State.
type Option func(*State)

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *State) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the clock used for "today" defaults.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a facade over store. Call Load before use.
func New(store DocumentStore, opts ...Option) *State {
	s := &State{
		store:  store,
		logger: slog.Default(),
		newID:  uuid.NewString,
		now:    time.Now,
		doc:    model.DefaultDocument(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the stored document and merges in default categories.
// Only the first call does any work.
func (s *State) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return
	}

	doc := s.store.Load(ctx)
	if doc.Transactions == nil {
		doc.Transactions = []model.Transaction{}
	}

	merged, changed := mergeDefaultCategories(doc)
	if changed {
		s.logger.Debug("Merged default categories", "categories", len(merged.Categories))
		s.store.Save(ctx, merged)
	}

	s.doc = merged
	s.initialized = true
}

// IsLoadingData is true until Load has completed.
func (s *State) IsLoadingData() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.initialized || s.store.IsLoading()
}

// Now returns the facade clock's current time.
func (s *State) Now() time.Time {
	return s.now()
}

// Document returns a copy of the current document.
func (s *State) Document() model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// update applies fn to a copy of the document, installs the result and saves
// it. The lock is held across the save so writes land in mutation order.
func (s *State) update(ctx context.Context, fn func(doc model.Document) model.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.doc.Clone())
	s.doc = next
	s.store.Save(ctx, next)
}

// ResetApplicationData removes the stored document. The in-memory state is
// left as is; callers reload by building a new State.
func (s *State) ResetApplicationData(ctx context.Context) error {
	return s.store.Reset(ctx)
}
