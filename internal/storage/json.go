package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// GetJSON loads key into v. It reports false when the key is absent or holds a
// value that does not decode; corrupt values are logged and treated as absent.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("[storage] ignoring unreadable value for %q: %v", key, err)
		return false, nil
	}
	return true, nil
}

// SetJSON stores v under key as JSON.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %s: %w", key, err)
	}
	return s.Set(ctx, key, data)
}
