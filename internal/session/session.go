// Package session ties the job dataset to the persisted user state (preferences,
// saved jobs, statuses, digests and dashboard filters) behind one store.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/job-notification-tracker/internal/bookmarks"
	"github.com/jonathan/job-notification-tracker/internal/digest"
	"github.com/jonathan/job-notification-tracker/internal/preferences"
	"github.com/jonathan/job-notification-tracker/internal/query"
	"github.com/jonathan/job-notification-tracker/internal/ranking"
	"github.com/jonathan/job-notification-tracker/internal/storage"
	"github.com/jonathan/job-notification-tracker/internal/tracker"
	"github.com/jonathan/job-notification-tracker/internal/types"
)

// ErrJobNotFound is returned when an id does not name a job in the dataset
var ErrJobNotFound = errors.New("job not found")

// Session is the state one user sees: a fixed job dataset plus everything
// persisted about it.
type Session struct {
	kv      storage.Store
	jobs    []types.Job
	now     func() time.Time
	Prefs   *preferences.Store
	Saved   *bookmarks.Store
	Tracker *tracker.Tracker
	Digests *digest.Generator
}

// Option configures a Session
type Option func(*Session)

// WithClock sets the clock used for status history and digest timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New creates a Session over jobs backed by kv.
func New(kv storage.Store, jobs []types.Job, opts ...Option) *Session {
	s := &Session{kv: kv, jobs: jobs, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.Prefs = preferences.NewStore(kv)
	s.Saved = bookmarks.NewStore(kv)
	s.Tracker = tracker.New(kv, tracker.WithClock(s.now))
	s.Digests = digest.NewGenerator(kv, digest.WithClock(s.now))
	return s
}

// Jobs returns the dataset.
func (s *Session) Jobs() []types.Job {
	return s.jobs
}

// Titles maps job ids to titles for display.
func (s *Session) Titles() map[int]string {
	titles := make(map[int]string, len(s.jobs))
	for _, j := range s.jobs {
		titles[j.ID] = j.Title
	}
	return titles
}

// Filters returns the persisted dashboard filters, or the defaults.
func (s *Session) Filters(ctx context.Context) (types.FilterState, error) {
	f := types.DefaultFilterState()
	found, err := storage.GetJSON(ctx, s.kv, storage.KeyFilters, &f)
	if err != nil {
		return types.DefaultFilterState(), fmt.Errorf("failed to load filters: %w", err)
	}
	if !found {
		return types.DefaultFilterState(), nil
	}
	return f, nil
}

// SetFilter updates one filter field and persists the result.
func (s *Session) SetFilter(ctx context.Context, field, value string) (types.FilterState, error) {
	f, err := s.Filters(ctx)
	if err != nil {
		return f, err
	}
	if err := f.Set(field, value); err != nil {
		return f, err
	}
	if err := storage.SetJSON(ctx, s.kv, storage.KeyFilters, f); err != nil {
		return f, fmt.Errorf("failed to save filters: %w", err)
	}
	return f, nil
}

// ClearFilters drops the persisted filters so the defaults apply again.
func (s *Session) ClearFilters(ctx context.Context) error {
	if err := s.kv.Delete(ctx, storage.KeyFilters); err != nil {
		return fmt.Errorf("failed to clear filters: %w", err)
	}
	return nil
}

// Dashboard runs the query pipeline over the whole dataset.
func (s *Session) Dashboard(ctx context.Context, f types.FilterState) ([]types.ScoredJob, error) {
	return s.run(ctx, s.jobs, f)
}

// SavedJobs runs the query pipeline over saved jobs only.
func (s *Session) SavedJobs(ctx context.Context, f types.FilterState) ([]types.ScoredJob, error) {
	ids, err := s.Saved.Set(ctx)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, query.Subset(s.jobs, ids), f)
}

func (s *Session) run(ctx context.Context, jobs []types.Job, f types.FilterState) ([]types.ScoredJob, error) {
	prefs, err := s.Prefs.Load(ctx)
	if err != nil {
		return nil, err
	}
	statuses, err := s.Tracker.Statuses(ctx)
	if err != nil {
		return nil, err
	}
	return query.QueryJobs(jobs, prefs, f, statuses), nil
}

// JobView is a single job with everything the user has recorded about it.
type JobView struct {
	types.ScoredJob
	Status types.Status
	Saved  bool
}

// Job returns the detail view of one job.
func (s *Session) Job(ctx context.Context, id int) (*JobView, error) {
	job := query.FindJob(s.jobs, id)
	if job == nil {
		return nil, fmt.Errorf("%w: %d", ErrJobNotFound, id)
	}
	prefs, err := s.Prefs.Load(ctx)
	if err != nil {
		return nil, err
	}
	status, err := s.Tracker.GetStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	saved, err := s.Saved.IsSaved(ctx, id)
	if err != nil {
		return nil, err
	}
	return &JobView{
		ScoredJob: types.ScoredJob{Job: *job, MatchScore: ranking.CalculateMatchScore(job, prefs)},
		Status:    status,
		Saved:     saved,
	}, nil
}

// SaveJob bookmarks a job from the dataset.
func (s *Session) SaveJob(ctx context.Context, id int) error {
	if err := s.requireJob(id); err != nil {
		return err
	}
	return s.Saved.Save(ctx, id)
}

// UnsaveJob removes a bookmark. Unknown ids are accepted so stale bookmarks
// left by an older dataset can still be removed.
func (s *Session) UnsaveJob(ctx context.Context, id int) error {
	return s.Saved.Unsave(ctx, id)
}

// SetStatus records a status change for a job from the dataset.
func (s *Session) SetStatus(ctx context.Context, id int, status string) error {
	if err := s.requireJob(id); err != nil {
		return err
	}
	st, err := types.ParseStatus(status)
	if err != nil {
		return err
	}
	return s.Tracker.SetStatus(ctx, id, st)
}

// GenerateDigest builds the digest for date (YYYY-MM-DD, local time) from the
// current preferences. An empty date means today.
func (s *Session) GenerateDigest(ctx context.Context, date string) (*types.Digest, error) {
	day, err := s.day(date)
	if err != nil {
		return nil, err
	}
	prefs, err := s.Prefs.Load(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.Digests.Generate(ctx, s.jobs, prefs, day)
	if errors.Is(err, digest.ErrAlreadyExists) {
		log.Printf("[session] digest for %s already exists", d.Date)
	}
	return d, err
}

// Digest returns the stored digest for date, or today's when date is empty.
func (s *Session) Digest(ctx context.Context, date string) (*types.Digest, error) {
	day, err := s.day(date)
	if err != nil {
		return nil, err
	}
	return s.Digests.Get(ctx, types.DigestDate(day))
}

// day resolves a YYYY-MM-DD date in the clock's location. Empty means now.
func (s *Session) day(date string) (time.Time, error) {
	now := s.now()
	if date == "" {
		return now, nil
	}
	parsed, err := time.ParseInLocation(types.DigestDateLayout, date, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid digest date %q: %w", date, err)
	}
	return parsed, nil
}

func (s *Session) requireJob(id int) error {
	if query.FindJob(s.jobs, id) == nil {
		return fmt.Errorf("%w: %d", ErrJobNotFound, id)
	}
	return nil
}
