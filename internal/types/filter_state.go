package types

import (
	"fmt"
	"strconv"
	"strings"
)

// SortMode selects the ordering of the dashboard list
type SortMode string

// Sort modes
const (
	SortLatest SortMode = "latest"
	SortScore  SortMode = "score"
	SortSalary SortMode = "salary"
)

// ParseSortMode normalizes value to a known sort mode. An empty value
// selects SortLatest.
func ParseSortMode(value string) (SortMode, error) {
	mode := SortMode(strings.ToLower(strings.TrimSpace(value)))
	switch mode {
	case "":
		return SortLatest, nil
	case SortLatest, SortScore, SortSalary:
		return mode, nil
	}
	return "", fmt.Errorf("invalid value for %s: %q (want latest, score or salary)", FilterSort, value)
}

// Filter field names accepted by FilterState.Set
const (
	FilterKeyword     = "keyword"
	FilterLocation    = "location"
	FilterMode        = "mode"
	FilterExperience  = "experience"
	FilterSource      = "source"
	FilterStatus      = "status"
	FilterOnlyMatches = "onlyMatches"
	FilterSort        = "sort"
)

// FilterState is the set of narrowing and sorting criteria for the job list.
// Empty values are pass-through.
type FilterState struct {
	Keyword     string   `json:"keyword"`
	Location    string   `json:"location"`
	Mode        string   `json:"mode"`
	Experience  string   `json:"experience"`
	Source      string   `json:"source"`
	Status      string   `json:"status"`
	OnlyMatches bool     `json:"onlyMatches"`
	Sort        SortMode `json:"sort"`
}

// DefaultFilterState returns an empty filter sorted by recency.
func DefaultFilterState() FilterState {
	return FilterState{Sort: SortLatest}
}

// FilterFields lists the names accepted by Set.
func FilterFields() []string {
	return []string{
		FilterKeyword, FilterLocation, FilterMode, FilterExperience,
		FilterSource, FilterStatus, FilterOnlyMatches, FilterSort,
	}
}

// Set updates a single filter field by name.
func (f *FilterState) Set(field, value string) error {
	switch field {
	case FilterKeyword:
		f.Keyword = value
	case FilterLocation:
		f.Location = value
	case FilterMode:
		f.Mode = value
	case FilterExperience:
		f.Experience = value
	case FilterSource:
		f.Source = value
	case FilterStatus:
		if value != "" {
			if _, err := ParseStatus(value); err != nil {
				return err
			}
		}
		f.Status = value
	case FilterOnlyMatches:
		if value == "" {
			f.OnlyMatches = false
			return nil
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %q", field, value)
		}
		f.OnlyMatches = b
	case FilterSort:
		mode, err := ParseSortMode(value)
		if err != nil {
			return err
		}
		f.Sort = mode
	default:
		return fmt.Errorf("unknown filter field %q", field)
	}
	return nil
}

// Reset restores the default filter state.
func (f *FilterState) Reset() {
	*f = DefaultFilterState()
}
