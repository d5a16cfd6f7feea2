package query

import (
	"github.com/jonathan/job-notification-tracker/internal/ranking"
	"github.com/jonathan/job-notification-tracker/internal/types"
)

// QueryJobs scores all jobs against prefs, keeps those matching f and returns
// them ordered by f.Sort. The result is a fresh slice on every call.
func QueryJobs(jobs []types.Job, prefs *types.Preferences, f types.FilterState, statuses map[int]types.Status) []types.ScoredJob {
	scored := ranking.ScoreJobs(jobs, prefs)

	visible := make([]types.ScoredJob, 0, len(scored))
	for i := range scored {
		if MatchesFilters(&scored[i], f, prefs, statuses) {
			visible = append(visible, scored[i])
		}
	}

	ranking.SortJobs(visible, f.Sort)
	return visible
}

// Subset returns the jobs whose ids are in ids, in dataset order.
func Subset(jobs []types.Job, ids map[int]bool) []types.Job {
	out := make([]types.Job, 0, len(ids))
	for _, j := range jobs {
		if ids[j.ID] {
			out = append(out, j)
		}
	}
	return out
}

// FindJob returns the job with id, or nil.
func FindJob(jobs []types.Job, id int) *types.Job {
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i]
		}
	}
	return nil
}
