// Package ranking scores jobs against a preference profile and orders scored jobs.
package ranking

import (
	"strings"

	"github.com/jonathan/job-notification-tracker/internal/types"
)

// Points awarded per matching criterion. They sum to MaxScore.
const (
	titleKeywordPoints       = 25
	descriptionKeywordPoints = 15
	locationPoints           = 15
	modePoints               = 10
	experiencePoints         = 10
	skillPoints              = 15
	freshnessPoints          = 5
	sourcePoints             = 5
)

const (
	// MaxScore is the upper bound of a match score
	MaxScore = 100
	// freshDays is the maximum posting age that still counts as fresh
	freshDays = 2
)

// CalculateMatchScore returns the 0-100 relevance of job for prefs.
// Unconfigured (nil) preferences always score 0.
func CalculateMatchScore(job *types.Job, prefs *types.Preferences) int {
	if job == nil || prefs == nil {
		return 0
	}

	keywords := normalizeTerms(prefs.RoleKeywords)
	score := 0

	if containsAny(job.Title, keywords) {
		score += titleKeywordPoints
	}
	if containsAny(job.Description, keywords) {
		score += descriptionKeywordPoints
	}
	if containsExact(prefs.PreferredLocations, job.Location) {
		score += locationPoints
	}
	if containsMode(prefs.PreferredModes, job.Mode) {
		score += modePoints
	}
	if prefs.ExperienceLevel != "" && job.Experience == prefs.ExperienceLevel {
		score += experiencePoints
	}
	if hasSkillOverlap(job.Skills, prefs.Skills) {
		score += skillPoints
	}
	if job.PostedDaysAgo <= freshDays {
		score += freshnessPoints
	}
	if job.Source == types.SourceLinkedIn {
		score += sourcePoints
	}

	if score > MaxScore {
		score = MaxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// ScoreJobs annotates every job with its match score, preserving input order.
func ScoreJobs(jobs []types.Job, prefs *types.Preferences) []types.ScoredJob {
	scored := make([]types.ScoredJob, 0, len(jobs))
	for i := range jobs {
		scored = append(scored, types.ScoredJob{
			Job:        jobs[i],
			MatchScore: CalculateMatchScore(&jobs[i], prefs),
		})
	}
	return scored
}

// normalizeTerms trims and lower-cases terms, dropping blanks so they never match everything.
func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// containsAny reports whether any lower-cased needle is a substring of text.
func containsAny(text string, needles []string) bool {
	if len(needles) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

func containsExact(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func containsMode(set []types.WorkMode, mode types.WorkMode) bool {
	for _, m := range set {
		if m == mode {
			return true
		}
	}
	return false
}

// hasSkillOverlap compares skills as trimmed, case-insensitive whole tokens.
func hasSkillOverlap(jobSkills, wanted []string) bool {
	want := make(map[string]bool)
	for _, s := range normalizeTerms(wanted) {
		want[s] = true
	}
	if len(want) == 0 {
		return false
	}
	for _, s := range normalizeTerms(jobSkills) {
		if want[s] {
			return true
		}
	}
	return false
}
