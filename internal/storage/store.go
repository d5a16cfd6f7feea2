// Package storage provides the key-value persistence port used by the tracker
// and its backends (memory, JSON file, SQLite, PostgreSQL, Redis).
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Store is a synchronous key-value store. Get returns a nil value and nil
// error when the key does not exist.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Supported backend names for Open
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// ErrUnknownBackend is returned by Open for unsupported backend names
var ErrUnknownBackend = errors.New("unknown storage backend")

// Error represents a failure talking to a storage backend
type Error struct {
	Op      string
	Key     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	prefix := "storage error"
	if e.Op != "" {
		prefix = fmt.Sprintf("storage %s", e.Op)
	}
	if e.Key != "" {
		prefix = fmt.Sprintf("%s %q", prefix, e.Key)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Backends lists the names accepted by Open.
func Backends() []string {
	return []string{BackendMemory, BackendFile, BackendSQLite, BackendPostgres, BackendRedis}
}

// Open connects to the named backend. dsn is a file path for file and sqlite,
// a connection URL for postgres and redis, and ignored for memory.
func Open(ctx context.Context, backend, dsn string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile:
		return NewFile(dsn)
	case BackendSQLite:
		return OpenSQLite(ctx, dsn)
	case BackendPostgres:
		return ConnectPostgres(ctx, dsn)
	case BackendRedis:
		return ConnectRedis(ctx, dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
