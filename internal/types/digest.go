package types

import "time"

// DigestDateLayout is the calendar-day key format for digests
const DigestDateLayout = "2006-01-02"

// Digest is the frozen top-N snapshot of scored jobs for one calendar day
type Digest struct {
	Date        string      `json:"date"`
	Jobs        []ScoredJob `json:"jobs"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

// DigestDate formats t as a digest key date in t's own location.
func DigestDate(t time.Time) string {
	return t.Format(DigestDateLayout)
}
