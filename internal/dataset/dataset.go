// Package dataset loads the read-only job collection the tracker works on.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/job-notification-tracker/internal/schemas"
	"github.com/jonathan/job-notification-tracker/internal/types"
	rootschemas "github.com/jonathan/job-notification-tracker/schemas"
	"gopkg.in/yaml.v3"
)

//go:embed jobs.json
var sampleJobs []byte

// LoadError represents a failure to read or validate a dataset
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dataset %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("dataset %s: %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Sample returns the built-in job dataset.
func Sample() ([]types.Job, error) {
	return ParseJSON("(built-in)", sampleJobs)
}

// Load reads a dataset file. Files ending in .yaml or .yml are decoded as
// YAML; anything else as JSON validated against the dataset schema.
func Load(path string) ([]types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Message: "failed to read file", Cause: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(path, data)
	default:
		return ParseJSON(path, data)
	}
}

// ParseJSON validates data against the dataset schema and decodes it.
func ParseJSON(source string, data []byte) ([]types.Job, error) {
	if err := schemas.Check(rootschemas.JobDataset, data); err != nil {
		return nil, &LoadError{Source: source, Message: "schema validation failed", Cause: err}
	}

	var jobs []types.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, &LoadError{Source: source, Message: "failed to decode JSON", Cause: err}
	}
	return jobs, check(source, jobs)
}

// ParseYAML decodes a YAML list of jobs.
func ParseYAML(source string, data []byte) ([]types.Job, error) {
	var jobs []types.Job
	if err := yaml.Unmarshal(data, &jobs); err != nil {
		return nil, &LoadError{Source: source, Message: "failed to decode YAML", Cause: err}
	}
	return jobs, check(source, jobs)
}

// check validates every job and rejects duplicate ids.
func check(source string, jobs []types.Job) error {
	seen := make(map[int]bool, len(jobs))
	for i := range jobs {
		if err := jobs[i].Validate(); err != nil {
			return &LoadError{Source: source, Message: fmt.Sprintf("job at index %d is invalid", i), Cause: err}
		}
		if seen[jobs[i].ID] {
			return &LoadError{Source: source, Message: fmt.Sprintf("duplicate job id %d", jobs[i].ID)}
		}
		seen[jobs[i].ID] = true
	}
	return nil
}
