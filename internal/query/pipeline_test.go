package query

import (
	"testing"

	"github.com/jonathan/job-notification-tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleJobs() []types.Job {
	return []types.Job{
		{ID: 1, Title: "Frontend Engineer", Company: "Swiggy", Location: "Remote", Mode: types.ModeRemote,
			Experience: types.ExperienceOneToThree, Source: types.SourceLinkedIn, SalaryRange: "₹8-12 LPA",
			PostedDaysAgo: 4, Skills: []string{"React"}},
		{ID: 2, Title: "Data Analyst", Company: "Flipkart", Location: "Bangalore", Mode: types.ModeOnsite,
			Experience: types.ExperienceFresher, Source: types.SourceNaukri, SalaryRange: "₹15-20 LPA",
			PostedDaysAgo: 0, Skills: []string{"SQL"}},
		{ID: 3, Title: "Platform Engineer", Company: "Zoho", Location: "Chennai", Mode: types.ModeHybrid,
			Experience: types.ExperienceThreeToFive, Source: types.SourceIndeed, SalaryRange: "Not disclosed",
			PostedDaysAgo: 2, Skills: []string{"Go"}},
	}
}

func jobIDs(jobs []types.ScoredJob) []int {
	out := make([]int, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestQueryJobs_DefaultSortsByRecency(t *testing.T) {
	got := QueryJobs(sampleJobs(), nil, types.DefaultFilterState(), nil)

	assert.Equal(t, []int{2, 3, 1}, jobIDs(got))
	for _, j := range got {
		assert.Zero(t, j.MatchScore)
	}
}

func TestQueryJobs_StatusFilter(t *testing.T) {
	jobs := sampleJobs()[:2]
	statuses := map[int]types.Status{1: types.StatusApplied, 2: types.StatusRejected}

	got := QueryJobs(jobs, nil, types.FilterState{Status: "Applied"}, statuses)

	assert.Equal(t, []int{1}, jobIDs(got))
}

func TestQueryJobs_SalarySort(t *testing.T) {
	got := QueryJobs(sampleJobs(), nil, types.FilterState{Sort: types.SortSalary}, nil)

	assert.Equal(t, []int{2, 1, 3}, jobIDs(got))
}

func TestQueryJobs_ScoreSortAndOnlyMatches(t *testing.T) {
	prefs := &types.Preferences{
		RoleKeywords:   []string{"engineer"},
		PreferredModes: []types.WorkMode{types.ModeRemote},
		Skills:         []string{"react"},
	}

	all := QueryJobs(sampleJobs(), prefs, types.FilterState{Sort: types.SortScore}, nil)
	require.Len(t, all, 3)
	// job 1: 25 title + 10 mode + 15 skill + 5 LinkedIn; job 3: 25 title + 5 fresh; job 2: 5 fresh
	assert.Equal(t, []int{1, 3, 2}, jobIDs(all))
	assert.Equal(t, []int{55, 30, 5}, []int{all[0].MatchScore, all[1].MatchScore, all[2].MatchScore})

	matches := QueryJobs(sampleJobs(), prefs, types.FilterState{Sort: types.SortScore, OnlyMatches: true}, nil)
	assert.Equal(t, []int{1}, jobIDs(matches))
}

func TestQueryJobs_OnlyMatchesUnreachableWhenUnconfigured(t *testing.T) {
	got := QueryJobs(sampleJobs(), nil, types.FilterState{OnlyMatches: true}, nil)
	assert.Empty(t, got)
}

func TestQueryJobs_OutputIsOrderedSubsequence(t *testing.T) {
	jobs := sampleJobs()
	f := types.FilterState{Keyword: "engineer", Sort: types.SortLatest}

	got := QueryJobs(jobs, nil, f, nil)

	assert.Equal(t, []int{3, 1}, jobIDs(got))
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].PostedDaysAgo, got[i].PostedDaysAgo)
	}
}

func TestQueryJobs_FreshSliceEachCall(t *testing.T) {
	jobs := sampleJobs()
	first := QueryJobs(jobs, nil, types.DefaultFilterState(), nil)
	first[0].Title = "mutated"

	second := QueryJobs(jobs, nil, types.DefaultFilterState(), nil)
	assert.Equal(t, "Data Analyst", second[0].Title)
	assert.Equal(t, "Data Analyst", jobs[1].Title)
}

func TestSubsetAndFindJob(t *testing.T) {
	jobs := sampleJobs()

	sub := Subset(jobs, map[int]bool{3: true, 1: true, 42: true})
	require.Len(t, sub, 2)
	assert.Equal(t, 1, sub[0].ID)
	assert.Equal(t, 3, sub[1].ID)

	assert.Equal(t, "Zoho", FindJob(jobs, 3).Company)
	assert.Nil(t, FindJob(jobs, 42))
}
