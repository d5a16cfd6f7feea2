// Package tracker records the application status of each job and keeps a
// bounded, newest-first history of status changes.
package tracker

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/job-notification-tracker/internal/storage"
	"github.com/jonathan/job-notification-tracker/internal/types"
)

// MaxHistory is the number of status changes kept
const MaxHistory = 20

// Tracker persists per-job statuses and their change history
type Tracker struct {
	kv  storage.Store
	now func() time.Time
}

// Option configures a Tracker
type Option func(*Tracker)

// WithClock overrides the timestamp source for history entries.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New creates a Tracker on top of kv.
func New(kv storage.Store, opts ...Option) *Tracker {
	t := &Tracker{kv: kv, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetStatus records status for jobID and prepends a history entry.
// Values outside the known statuses are rejected with types.ErrInvalidStatus.
func (t *Tracker) SetStatus(ctx context.Context, jobID int, status types.Status) error {
	if _, err := types.ParseStatus(string(status)); err != nil {
		return err
	}

	statuses, err := t.Statuses(ctx)
	if err != nil {
		return err
	}
	history, err := t.History(ctx)
	if err != nil {
		return err
	}

	// History goes first: if the status write then fails, the log holds an
	// extra entry rather than the status changing with no record of it.
	entry := types.HistoryEntry{
		ID:        uuid.New(),
		JobID:     jobID,
		Status:    status,
		Timestamp: t.now(),
	}
	history = append([]types.HistoryEntry{entry}, history...)
	if len(history) > MaxHistory {
		history = history[:MaxHistory]
	}
	if err := storage.SetJSON(ctx, t.kv, storage.KeyStatusHistory, history); err != nil {
		return fmt.Errorf("failed to save status history: %w", err)
	}

	statuses[jobID] = status
	if err := storage.SetJSON(ctx, t.kv, storage.KeyJobStatus, statuses); err != nil {
		return fmt.Errorf("failed to save job status: %w", err)
	}

	log.Printf("[tracker] job %d marked %s", jobID, status)
	return nil
}

// GetStatus returns the status of jobID, StatusNotApplied if never set.
func (t *Tracker) GetStatus(ctx context.Context, jobID int) (types.Status, error) {
	statuses, err := t.Statuses(ctx)
	if err != nil {
		return "", err
	}
	return StatusOf(statuses, jobID), nil
}

// Statuses returns every recorded job status.
func (t *Tracker) Statuses(ctx context.Context) (map[int]types.Status, error) {
	statuses := make(map[int]types.Status)
	found, err := storage.GetJSON(ctx, t.kv, storage.KeyJobStatus, &statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to load job statuses: %w", err)
	}
	if !found {
		// a failed decode may leave partial entries behind
		statuses = make(map[int]types.Status)
	}
	return statuses, nil
}

// History returns the status changes, newest first.
func (t *Tracker) History(ctx context.Context) ([]types.HistoryEntry, error) {
	var history []types.HistoryEntry
	found, err := storage.GetJSON(ctx, t.kv, storage.KeyStatusHistory, &history)
	if err != nil {
		return nil, fmt.Errorf("failed to load status history: %w", err)
	}
	if !found || history == nil {
		history = []types.HistoryEntry{}
	}
	return history, nil
}

// StatusOf looks up jobID in statuses, defaulting to StatusNotApplied.
func StatusOf(statuses map[int]types.Status, jobID int) types.Status {
	if s, ok := statuses[jobID]; ok && s != "" {
		return s
	}
	return types.StatusNotApplied
}
