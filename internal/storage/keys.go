package storage

// Fixed keys for persisted tracker state
const (
	KeySavedJobs     = "jobTrackerSavedJobs"
	KeyPreferences   = "jobTrackerPreferences"
	KeyJobStatus     = "jobTrackerStatus"
	KeyStatusHistory = "jobTrackerStatusHistory"
	KeyFilters       = "jobTrackerFilters"

	digestKeyPrefix = "digest_"
)

// DigestKey returns the key of the digest for an ISO calendar date (YYYY-MM-DD).
func DigestKey(date string) string {
	return digestKeyPrefix + date
}
