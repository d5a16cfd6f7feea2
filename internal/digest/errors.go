// Package digest builds the once-per-day snapshot of the best matching jobs.
package digest

import (
	"errors"
	"fmt"
)

var (
	// ErrUnconfigured means no preferences are set; the caller should prompt for them
	ErrUnconfigured = errors.New("preferences are not configured")
	// ErrAlreadyExists means a digest was already generated for the date; the
	// stored digest is returned alongside it
	ErrAlreadyExists = errors.New("digest already exists for this date")
	// ErrNoMatches means no job reached the minimum match score; nothing was stored
	ErrNoMatches = errors.New("no jobs meet the minimum match score")
)

// Error represents a failure reading or writing a digest
type Error struct {
	Date    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("digest %s: %s: %v", e.Date, e.Message, e.Cause)
	}
	return fmt.Sprintf("digest %s: %s", e.Date, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
