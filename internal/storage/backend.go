package storage

import (
	"context"
	"errors"
)

// DocumentKey is the fixed key the Snacker document is stored under.
const DocumentKey = "snacker-app-data"

// Backend errors.
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrInvalidKey  = errors.New("invalid key")
	ErrClosed      = errors.New("backend closed")
	ErrUnknownKind = errors.New("unknown storage backend")
)

// Backend is a durable key-value store holding raw JSON values.
type Backend interface {
	// Get returns ErrKeyNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Kind names a backend implementation in configuration.
type Kind string

// Supported backends.
const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)
