package digest

import (
	"context"
	"log"
	"time"

	"github.com/jonathan/job-notification-tracker/internal/ranking"
	"github.com/jonathan/job-notification-tracker/internal/storage"
	"github.com/jonathan/job-notification-tracker/internal/types"
)

// MaxJobs is the number of jobs kept in a digest
const MaxJobs = 10

// Generator creates and reads date-keyed digests
type Generator struct {
	kv  storage.Store
	now func() time.Time
}

// Option configures a Generator
type Option func(*Generator)

// WithClock overrides the source of GeneratedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a Generator that stores digests in kv.
func NewGenerator(kv storage.Store, opts ...Option) *Generator {
	g := &Generator{kv: kv, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the digest for today's calendar date.
//
// A digest is written at most once per date. If one already exists it is
// returned unchanged together with ErrAlreadyExists. ErrUnconfigured and
// ErrNoMatches return a nil digest and write nothing.
func (g *Generator) Generate(ctx context.Context, jobs []types.Job, prefs *types.Preferences, today time.Time) (*types.Digest, error) {
	if prefs == nil {
		return nil, ErrUnconfigured
	}

	date := types.DigestDate(today)
	existing, err := g.Get(ctx, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, ErrAlreadyExists
	}

	top := Select(jobs, prefs)
	if len(top) == 0 {
		return nil, ErrNoMatches
	}

	d := &types.Digest{
		Date:        date,
		Jobs:        top,
		GeneratedAt: g.now(),
	}
	if err := storage.SetJSON(ctx, g.kv, storage.DigestKey(date), d); err != nil {
		return nil, &Error{Date: date, Message: "failed to store digest", Cause: err}
	}

	log.Printf("[digest] generated %s with %d jobs (threshold %d)", date, len(top), prefs.Threshold())
	return d, nil
}

// Get returns the digest stored for date (YYYY-MM-DD), or nil if there is none.
func (g *Generator) Get(ctx context.Context, date string) (*types.Digest, error) {
	var d types.Digest
	found, err := storage.GetJSON(ctx, g.kv, storage.DigestKey(date), &d)
	if err != nil {
		return nil, &Error{Date: date, Message: "failed to read digest", Cause: err}
	}
	if !found {
		return nil, nil
	}
	return &d, nil
}

// Select scores jobs, keeps those at or above the preference threshold and
// returns at most MaxJobs of them ordered by score, then recency.
func Select(jobs []types.Job, prefs *types.Preferences) []types.ScoredJob {
	threshold := prefs.Threshold()

	var kept []types.ScoredJob
	for _, sj := range ranking.ScoreJobs(jobs, prefs) {
		if sj.MatchScore >= threshold {
			kept = append(kept, sj)
		}
	}

	ranking.SortDigest(kept)
	if len(kept) > MaxJobs {
		kept = kept[:MaxJobs]
	}
	return kept
}
