// Package schemas holds the JSON Schemas for the tracker's data files.
package schemas

import _ "embed"

// JobDataset validates a job dataset file (an array of jobs).
//
//go:embed job_dataset.schema.json
var JobDataset string

// Preferences validates a stored or imported preference record.
//
//go:embed preferences.schema.json
var Preferences string

// Digest validates a stored digest record.
//
//go:embed digest.schema.json
var Digest string
