// Package query runs the dashboard pipeline: score every job, keep those that
// pass the filter state, and order them by the selected sort mode.
package query

import (
	"strings"

	"github.com/jonathan/job-notification-tracker/internal/tracker"
	"github.com/jonathan/job-notification-tracker/internal/types"
)

// MatchesFilters reports whether job passes every active criterion in f.
// Empty criteria always pass. OnlyMatches requires configured preferences.
func MatchesFilters(job *types.ScoredJob, f types.FilterState, prefs *types.Preferences, statuses map[int]types.Status) bool {
	return matchesKeyword(job, f.Keyword) &&
		matchesExact(job.Location, f.Location) &&
		matchesExact(string(job.Mode), f.Mode) &&
		matchesExact(string(job.Experience), f.Experience) &&
		matchesExact(string(job.Source), f.Source) &&
		matchesExact(string(tracker.StatusOf(statuses, job.ID)), f.Status) &&
		matchesThreshold(job, f.OnlyMatches, prefs)
}

// matchesKeyword checks the keyword as a case-insensitive substring of title or company.
func matchesKeyword(job *types.ScoredJob, keyword string) bool {
	if keyword == "" {
		return true
	}
	k := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(job.Title), k) ||
		strings.Contains(strings.ToLower(job.Company), k)
}

func matchesExact(value, want string) bool {
	return want == "" || value == want
}

func matchesThreshold(job *types.ScoredJob, onlyMatches bool, prefs *types.Preferences) bool {
	if !onlyMatches {
		return true
	}
	return prefs != nil && job.MatchScore >= prefs.Threshold()
}
