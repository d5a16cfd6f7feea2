package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 50 * time.Millisecond

// ErrCorruptDocument is returned when the store file exists but is not a JSON
// object. Nothing can be read or written until the file is replaced.
var ErrCorruptDocument = errors.New("store file is not valid JSON")

// File is a Store backed by a single JSON document on disk, one top-level
// member per key. A sidecar lock file serializes writers across processes.
type File struct {
	path string
	lock *flock.Flock
}

// NewFile opens (or prepares to create) the JSON store at path.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, &Error{Op: "open", Message: "file store path is empty"}
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &Error{Op: "open", Message: "failed to create directory " + dir, Cause: err}
		}
	}

	return &File{path: path, lock: flock.New(path + ".lock")}, nil
}

// Path returns the location of the JSON document.
func (f *File) Path() string {
	return f.path
}

// Get returns the raw JSON stored under key.
func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	if _, err := f.lock.TryRLockContext(ctx, lockRetryDelay); err != nil {
		return nil, &Error{Op: "get", Key: key, Message: "failed to acquire read lock", Cause: err}
	}
	defer func() { _ = f.lock.Unlock() }()

	doc, err := f.readDocument()
	if err != nil {
		return nil, &Error{Op: "get", Key: key, Message: "failed to read store", Cause: err}
	}
	v, ok := doc[key]
	if !ok {
		return nil, nil
	}
	return []byte(v), nil
}

// Set stores value under key. value must be valid JSON.
func (f *File) Set(ctx context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return &Error{Op: "set", Key: key, Message: "value is not valid JSON"}
	}
	return f.update(ctx, "set", key, func(doc map[string]json.RawMessage) {
		doc[key] = json.RawMessage(cloneBytes(value))
	})
}

// Delete removes key from the document.
func (f *File) Delete(ctx context.Context, key string) error {
	return f.update(ctx, "delete", key, func(doc map[string]json.RawMessage) {
		delete(doc, key)
	})
}

// Close releases the lock handle.
func (f *File) Close() error {
	return f.lock.Close()
}

func (f *File) update(ctx context.Context, op, key string, mutate func(map[string]json.RawMessage)) error {
	if _, err := f.lock.TryLockContext(ctx, lockRetryDelay); err != nil {
		return &Error{Op: op, Key: key, Message: "failed to acquire write lock", Cause: err}
	}
	defer func() { _ = f.lock.Unlock() }()

	doc, err := f.readDocument()
	if err != nil {
		return &Error{Op: op, Key: key, Message: "failed to read store", Cause: err}
	}
	mutate(doc)
	if err := f.writeDocument(doc); err != nil {
		return &Error{Op: op, Key: key, Message: "failed to write store", Cause: err}
	}
	return nil
}

// readDocument loads the whole store. A missing file is an empty store.
func (f *File) readDocument() (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s (move it aside or run with --dsn pointing at a fresh file): %w", ErrCorruptDocument, f.path, err)
	}
	return doc, nil
}

// writeDocument replaces the store atomically via a temp file and rename.
func (f *File) writeDocument(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
