//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterState_SetEachField(t *testing.T) {
	f := DefaultFilterState()

	require.NoError(t, f.Set(FilterKeyword, "engineer"))
	require.NoError(t, f.Set(FilterLocation, "Pune"))
	require.NoError(t, f.Set(FilterMode, "Remote"))
	require.NoError(t, f.Set(FilterExperience, "1-3"))
	require.NoError(t, f.Set(FilterSource, "Naukri"))
	require.NoError(t, f.Set(FilterStatus, "Applied"))
	require.NoError(t, f.Set(FilterOnlyMatches, "true"))
	require.NoError(t, f.Set(FilterSort, "Score"))

	assert.Equal(t, FilterState{
		Keyword:     "engineer",
		Location:    "Pune",
		Mode:        "Remote",
		Experience:  "1-3",
		Source:      "Naukri",
		Status:      "Applied",
		OnlyMatches: true,
		Sort:        SortScore,
	}, f)
}

func TestFilterState_SetTouchesOneField(t *testing.T) {
	f := FilterState{Keyword: "go", Location: "Remote", Sort: SortSalary}
	require.NoError(t, f.Set(FilterLocation, ""))

	assert.Equal(t, "go", f.Keyword)
	assert.Empty(t, f.Location)
	assert.Equal(t, SortSalary, f.Sort)
}

func TestFilterState_SetRejectsBadInput(t *testing.T) {
	f := DefaultFilterState()

	err := f.Set("salary", "10")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown filter field")

	assert.ErrorIs(t, f.Set(FilterStatus, "Interviewing"), ErrInvalidStatus)
	assert.Error(t, f.Set(FilterOnlyMatches, "maybe"))
	assert.ErrorContains(t, f.Set(FilterSort, "bogus"), "invalid value for sort")
	assert.Equal(t, DefaultFilterState(), f)
}

func TestParseSortMode(t *testing.T) {
	for in, want := range map[string]SortMode{
		"latest":  SortLatest,
		" Score ": SortScore,
		"SALARY":  SortSalary,
		"":        SortLatest,
	} {
		got, err := ParseSortMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSortMode("oldest")
	assert.Error(t, err)
}

func TestFilterState_ClearingOnlyMatches(t *testing.T) {
	f := FilterState{OnlyMatches: true}
	require.NoError(t, f.Set(FilterOnlyMatches, ""))
	assert.False(t, f.OnlyMatches)
}

func TestFilterState_Reset(t *testing.T) {
	f := FilterState{Keyword: "x", Status: "Applied", OnlyMatches: true, Sort: SortScore}
	f.Reset()
	assert.Equal(t, DefaultFilterState(), f)
}
