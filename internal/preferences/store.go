// Package preferences persists the user's matching profile.
package preferences

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/job-notification-tracker/internal/storage"
	"github.com/jonathan/job-notification-tracker/internal/types"
)

// Store reads and writes the preference record
type Store struct {
	kv storage.Store
}

// NewStore creates a preference store on top of kv.
func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// Load returns the saved preferences, or nil when none are configured.
// An unreadable record, or one that no longer passes validation, counts as
// unconfigured so that Save can replace it.
func (s *Store) Load(ctx context.Context) (*types.Preferences, error) {
	var prefs types.Preferences
	found, err := storage.GetJSON(ctx, s.kv, storage.KeyPreferences, &prefs)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if !found {
		return nil, nil
	}
	if err := prefs.Validate(); err != nil {
		log.Printf("[preferences] ignoring invalid record: %v", err)
		return nil, nil
	}
	return &prefs, nil
}

// Save validates prefs and replaces the stored record wholesale.
func (s *Store) Save(ctx context.Context, prefs *types.Preferences) error {
	if prefs == nil {
		return fmt.Errorf("preferences are nil")
	}
	if err := prefs.Validate(); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}
	if err := storage.SetJSON(ctx, s.kv, storage.KeyPreferences, prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Clear removes the preferences, returning to the unconfigured state.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, storage.KeyPreferences); err != nil {
		return fmt.Errorf("failed to clear preferences: %w", err)
	}
	return nil
}
