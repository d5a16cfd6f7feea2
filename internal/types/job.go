// Package types provides type definitions for structured data used throughout the job tracker.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// WorkMode is where the work happens
type WorkMode string

// Work modes accepted in job records and preferences
const (
	ModeRemote WorkMode = "Remote"
	ModeHybrid WorkMode = "Hybrid"
	ModeOnsite WorkMode = "Onsite"
)

// ExperienceLevel is the experience bracket a posting targets
type ExperienceLevel string

// Experience brackets
const (
	ExperienceFresher     ExperienceLevel = "Fresher"
	ExperienceZeroToOne   ExperienceLevel = "0-1"
	ExperienceOneToThree  ExperienceLevel = "1-3"
	ExperienceThreeToFive ExperienceLevel = "3-5"
)

// JobSource is the board a posting was collected from
type JobSource string

// Known job boards
const (
	SourceLinkedIn JobSource = "LinkedIn"
	SourceNaukri   JobSource = "Naukri"
	SourceIndeed   JobSource = "Indeed"
)

// Job represents a single posting from the job dataset. Jobs are read-only once loaded.
type Job struct {
	ID            int             `json:"id" yaml:"id" validate:"required"`
	Title         string          `json:"title" yaml:"title" validate:"required"`
	Company       string          `json:"company" yaml:"company" validate:"required"`
	Location      string          `json:"location" yaml:"location"`
	Mode          WorkMode        `json:"mode" yaml:"mode" validate:"required,oneof=Remote Hybrid Onsite"`
	Experience    ExperienceLevel `json:"experience" yaml:"experience" validate:"required,oneof=Fresher 0-1 1-3 3-5"`
	Source        JobSource       `json:"source" yaml:"source" validate:"required,oneof=LinkedIn Naukri Indeed"`
	SalaryRange   string          `json:"salaryRange" yaml:"salaryRange"`
	PostedDaysAgo int             `json:"postedDaysAgo" yaml:"postedDaysAgo" validate:"min=0"`
	Description   string          `json:"description" yaml:"description"`
	Skills        []string        `json:"skills" yaml:"skills"`
	ApplyURL      string          `json:"applyUrl" yaml:"applyUrl" validate:"omitempty,url"`
}

// ScoredJob is a Job annotated with its match score for the current preferences.
// Scores are computed per query and only persisted inside a Digest.
type ScoredJob struct {
	Job
	MatchScore int `json:"matchScore"`
}

// Validate validates the Job using the validator.
func (j *Job) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
