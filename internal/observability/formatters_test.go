package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/job-notification-tracker/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleJob() types.ScoredJob {
	return types.ScoredJob{
		Job: types.Job{
			ID:            7,
			Title:         "Backend Developer",
			Company:       "Razorpay",
			Location:      "Bengaluru",
			Mode:          types.ModeRemote,
			Experience:    types.ExperienceOneToThree,
			Source:        types.SourceLinkedIn,
			SalaryRange:   "₹12-18 LPA",
			PostedDaysAgo: 1,
			Description:   "Build payment APIs in Go and keep them fast under heavy load across regions.",
			Skills:        []string{"Go", "PostgreSQL", "Kafka", "Docker", "AWS"},
			ApplyURL:      "https://careers.example.com/jobs/7",
		},
		MatchScore: 85,
	}
}

func TestPostedText(t *testing.T) {
	assert.Equal(t, "Today", PostedText(0))
	assert.Equal(t, "1 day ago", PostedText(1))
	assert.Equal(t, "5 days ago", PostedText(5))
}

func TestPrintJobList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := sampleJob()
	p.PrintJobList("DASHBOARD", []types.ScoredJob{job},
		map[int]types.Status{7: types.StatusApplied},
		map[int]bool{7: true}, "No jobs match your search.")
	output := buf.String()

	assert.Contains(t, output, "DASHBOARD")
	assert.Contains(t, output, "★ #7  Backend Developer")
	assert.Contains(t, output, "Razorpay · LinkedIn · 1 day ago")
	assert.Contains(t, output, "Match 85%")
	assert.Contains(t, output, "Applied")
	assert.Contains(t, output, "Go, PostgreSQL, Kafka, Docker +1")
	assert.NotContains(t, output, "No jobs match")
}

func TestPrintJobList_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobList("SAVED JOBS", nil, nil, nil, "No saved jobs yet.")

	assert.Contains(t, buf.String(), "SAVED JOBS")
	assert.Contains(t, buf.String(), "No saved jobs yet.")
}

func TestPrintJobList_HidesDefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobList("DASHBOARD", []types.ScoredJob{sampleJob()},
		map[int]types.Status{7: types.StatusNotApplied}, nil, "")

	assert.NotContains(t, buf.String(), "Not Applied")
	assert.NotContains(t, buf.String(), "★")
}

func TestPrintJobDetail(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := sampleJob()
	p.PrintJobDetail(&job, types.StatusRejected, true)
	output := buf.String()

	assert.Contains(t, output, "#7 Backend Developer")
	assert.Contains(t, output, "Razorpay • Bengaluru • Remote")
	assert.Contains(t, output, "1-3 • ₹12-18 LPA")
	assert.Contains(t, output, "Status:   Rejected")
	assert.Contains(t, output, "Saved:    yes")
	assert.Contains(t, output, "Build payment APIs")
	assert.Contains(t, output, "• Kafka")
	assert.Contains(t, output, "Apply: https://careers.example.com/jobs/7")
}

func TestPrintJobDetail_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobDetail(nil, types.StatusApplied, false)
	assert.Empty(t, buf.String())
}

func TestPrintDigest(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	d := &types.Digest{
		Date:        "2026-03-14",
		Jobs:        []types.ScoredJob{sampleJob()},
		GeneratedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	p.PrintDigest(d)
	output := buf.String()

	assert.Contains(t, output, "DAILY DIGEST 2026-03-14")
	assert.Contains(t, output, "Generated: 2026-03-14 09:00")
	assert.Contains(t, output, " 1. Backend Developer (85%)")
	assert.Contains(t, output, "https://careers.example.com/jobs/7")
}

func TestPrintPreferences(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	threshold := 60
	p.PrintPreferences(&types.Preferences{
		RoleKeywords:   []string{"backend", "developer"},
		PreferredModes: []types.WorkMode{types.ModeRemote, types.ModeHybrid},
		Skills:         []string{"Go"},
		MinMatchScore:  &threshold,
	})
	output := buf.String()

	assert.Contains(t, output, "Roles:      backend, developer")
	assert.Contains(t, output, "Locations:  -")
	assert.Contains(t, output, "Modes:      Remote, Hybrid")
	assert.Contains(t, output, "Experience: -")
	assert.Contains(t, output, "Min score:  60")
}

func TestPrintPreferences_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPreferences(nil)
	assert.Contains(t, buf.String(), "Not configured")
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ts := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	p.PrintHistory([]types.HistoryEntry{
		{ID: uuid.New(), JobID: 7, Status: types.StatusApplied, Timestamp: ts},
		{ID: uuid.New(), JobID: 99, Status: types.StatusRejected, Timestamp: ts},
	}, map[int]string{7: "Backend Developer"})
	output := buf.String()

	assert.Contains(t, output, "2026-03-14 10:30  Applied")
	assert.Contains(t, output, "#7 Backend Developer")
	assert.Contains(t, output, "#99")
}

func TestPrintHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintHistory(nil, nil)
	assert.Contains(t, buf.String(), "No status changes yet.")
}

func TestPrintFilterState(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	f := types.DefaultFilterState()
	f.Keyword = "go"
	f.OnlyMatches = true
	p.PrintFilterState(f)
	output := buf.String()

	assert.Contains(t, output, "keyword:     go")
	assert.Contains(t, output, "location:    (any)")
	assert.Contains(t, output, "onlyMatches: true")
	assert.Contains(t, output, "sort:        latest")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four five", 9)
	assert.Equal(t, []string{"one two", "three", "four five"}, lines)
	assert.Nil(t, wrap("   ", 10))
}
