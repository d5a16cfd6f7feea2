package ranking

import (
	"sort"

	"github.com/jonathan/job-notification-tracker/internal/types"
)

// Compare orders two scored jobs for the given sort mode. It returns a negative
// number when a sorts before b. Unknown modes sort by recency.
func Compare(a, b *types.ScoredJob, mode types.SortMode) int {
	switch mode {
	case types.SortScore:
		return b.MatchScore - a.MatchScore
	case types.SortSalary:
		return compareInts(ParseSalary(b.SalaryRange), ParseSalary(a.SalaryRange))
	default:
		return a.PostedDaysAgo - b.PostedDaysAgo
	}
}

// CompareDigest orders by score descending, then by posting age ascending.
func CompareDigest(a, b *types.ScoredJob) int {
	if c := b.MatchScore - a.MatchScore; c != 0 {
		return c
	}
	return a.PostedDaysAgo - b.PostedDaysAgo
}

// SortJobs stably sorts jobs in place by mode.
func SortJobs(jobs []types.ScoredJob, mode types.SortMode) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return Compare(&jobs[i], &jobs[j], mode) < 0
	})
}

// SortDigest stably sorts jobs in place by CompareDigest.
func SortDigest(jobs []types.ScoredJob) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return CompareDigest(&jobs[i], &jobs[j]) < 0
	})
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
