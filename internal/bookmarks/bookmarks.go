// Package bookmarks keeps the set of saved job ids.
package bookmarks

import (
	"context"
	"fmt"

	"github.com/jonathan/job-notification-tracker/internal/storage"
)

// Store persists saved job ids in the order they were saved
type Store struct {
	kv storage.Store
}

// NewStore creates a saved-jobs store on top of kv.
func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// List returns the saved ids in save order.
func (s *Store) List(ctx context.Context) ([]int, error) {
	var ids []int
	found, err := storage.GetJSON(ctx, s.kv, storage.KeySavedJobs, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved jobs: %w", err)
	}
	// a failed decode may leave partial entries behind
	if !found || ids == nil {
		ids = []int{}
	}
	return ids, nil
}

// Save adds jobID. Saving an already saved job is a no-op.
func (s *Store) Save(ctx context.Context, jobID int) error {
	ids, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == jobID {
			return nil
		}
	}
	return s.write(ctx, append(ids, jobID))
}

// Unsave removes jobID if present.
func (s *Store) Unsave(ctx context.Context, jobID int) error {
	ids, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != jobID {
			kept = append(kept, id)
		}
	}
	return s.write(ctx, kept)
}

// IsSaved reports whether jobID is saved.
func (s *Store) IsSaved(ctx context.Context, jobID int) (bool, error) {
	ids, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == jobID {
			return true, nil
		}
	}
	return false, nil
}

// Set returns the saved ids as a lookup set.
func (s *Store) Set(ctx context.Context) (map[int]bool, error) {
	ids, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (s *Store) write(ctx context.Context, ids []int) error {
	if err := storage.SetJSON(ctx, s.kv, storage.KeySavedJobs, ids); err != nil {
		return fmt.Errorf("failed to save saved jobs: %w", err)
	}
	return nil
}
