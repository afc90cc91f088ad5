package sheets

import (
	"context"
	"sync"

	"github.com/Veraticus/snacker/internal/report"
)

var _ report.Writer = (*MockWriter)(nil)

// MockWriter records Write calls for tests.
type MockWriter struct {
	WriteFunc      func(ctx context.Context, r *report.Report) error
	LastReport     *report.Report
	WriteCalls     []WriteCall
	WriteCallCount int
	mu             sync.Mutex
}

// WriteCall represents a single call to Write.
type WriteCall struct {
	Error  error
	Report *report.Report
}

// NewMockWriter creates a new mock writer.
func NewMockWriter() *MockWriter {
	return &MockWriter{
		WriteCalls: make([]WriteCall, 0),
	}
}

// Write implements report.Writer.
func (m *MockWriter) Write(ctx context.Context, r *report.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteCallCount++
	m.LastReport = r

	var err error
	if m.WriteFunc != nil {
		err = m.WriteFunc(ctx, r)
	}

	m.WriteCalls = append(m.WriteCalls, WriteCall{Report: r, Error: err})
	return err
}

// GetWriteCalls returns a copy of all write calls.
func (m *MockWriter) GetWriteCalls() []WriteCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]WriteCall, len(m.WriteCalls))
	copy(calls, m.WriteCalls)
	return calls
}

// SetWriteError makes every later Write return err.
func (m *MockWriter) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteFunc = func(context.Context, *report.Report) error {
		return err
	}
}
