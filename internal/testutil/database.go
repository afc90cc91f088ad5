// Package testutil provides shared test helpers for storage and state.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"sync"
	"testing"

	"github.com/Veraticus/snacker/internal/appstate"
	"github.com/Veraticus/snacker/internal/model"
	"github.com/Veraticus/snacker/internal/storage"
)

// TestDB is an in-memory SQLite backend with a document store on top.
type TestDB struct {
	Backend *storage.SQLiteBackend
	Store   *storage.Store[model.Document]
	Logs    *LogBuffer
	t       *testing.T
}

// SetupTestDB creates a migrated in-memory database. It is closed when the
// test ends.
//
// Example:
//
//	db := testutil.SetupTestDB(t)
//	db.Seed(documents.New().WithDefaultCategories().Build())
//	state := db.State()
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	backend, err := storage.NewSQLiteBackend(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := backend.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = backend.Close()
	})

	logs := NewLogBuffer()
	return &TestDB{
		Backend: backend,
		Store:   storage.NewStore(backend, storage.DocumentKey, model.DefaultDocument, storage.WithLogger(logs.Logger())),
		Logs:    logs,
		t:       t,
	}
}

// Seed writes doc as the stored document.
func (db *TestDB) Seed(doc model.Document) {
	db.t.Helper()
	db.Store.Save(context.Background(), doc)
	if db.Logs.Len() > 0 {
		db.t.Fatalf("failed to seed document: %s", db.Logs.String())
	}
}

// SeedRaw writes raw bytes as the stored document.
func (db *TestDB) SeedRaw(raw string) {
	db.t.Helper()
	if err := db.Backend.Set(context.Background(), storage.DocumentKey, []byte(raw)); err != nil {
		db.t.Fatalf("failed to seed raw document: %v", err)
	}
}

// Stored reads the persisted document back, bypassing any state.
func (db *TestDB) Stored() model.Document {
	db.t.Helper()
	fresh := storage.NewStore(db.Backend, storage.DocumentKey, model.DefaultDocument, storage.WithLogger(db.Logs.Logger()))
	return fresh.Load(context.Background())
}

// State builds and loads a facade over the database.
func (db *TestDB) State(opts ...appstate.Option) *appstate.State {
	db.t.Helper()
	opts = append([]appstate.Option{appstate.WithLogger(db.Logs.Logger())}, opts...)
	state := appstate.New(db.Store, opts...)
	state.Load(context.Background())
	return state
}

// LogBuffer collects log output for assertions.
type LogBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

// NewLogBuffer creates an empty buffer.
func NewLogBuffer() *LogBuffer {
	return &LogBuffer{}
}

// Logger returns a warn-level text logger writing to the buffer.
func (b *LogBuffer) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(b, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything logged so far.
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Len returns the number of bytes logged.
func (b *LogBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

// IDSequence returns a generator of predictable IDs: prefix-1, prefix-2, ...
func IDSequence(prefix string) func() string {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
