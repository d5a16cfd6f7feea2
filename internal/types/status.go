package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is a job's stage in the user's application pipeline
type Status string

// Application statuses. StatusNotApplied is implied for jobs that were never updated.
const (
	StatusNotApplied Status = "Not Applied"
	StatusApplied    Status = "Applied"
	StatusRejected   Status = "Rejected"
	StatusSelected   Status = "Selected"
)

// ErrInvalidStatus is returned for status values outside the known set
var ErrInvalidStatus = errors.New("invalid job status")

// AllStatuses lists every status in pipeline order.
func AllStatuses() []Status {
	return []Status{StatusNotApplied, StatusApplied, StatusRejected, StatusSelected}
}

// ParseStatus converts a raw string to a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusNotApplied, StatusApplied, StatusRejected, StatusSelected:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// HistoryEntry records a single status change
type HistoryEntry struct {
	ID        uuid.UUID `json:"id"`
	JobID     int       `json:"jobId"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
