// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/job-notification-tracker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the number of skills shown per job in lists
	maxSkillsToShow = 4
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// wrap splits text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && utf8.RuneCountInString(cur.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString(" ")
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// PostedText renders a posting age the way job boards do.
func PostedText(days int) string {
	switch days {
	case 0:
		return "Today"
	case 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

func skillsText(skills []string) string {
	if len(skills) <= maxSkillsToShow {
		return strings.Join(skills, ", ")
	}
	return fmt.Sprintf("%s +%d", strings.Join(skills[:maxSkillsToShow], ", "), len(skills)-maxSkillsToShow)
}

// PrintJobList outputs one entry per job with its match score, status and
// saved marker. emptyMessage is shown when jobs is empty.
func (p *Printer) PrintJobList(title string, jobs []types.ScoredJob, statuses map[int]types.Status, saved map[int]bool, emptyMessage string) {
	var sb strings.Builder
	if len(jobs) == 0 {
		sb.WriteString(emptyMessage)
		p.printBox(title, sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("%d jobs\n\n", len(jobs)))
	for i, job := range jobs {
		marker := " "
		if saved[job.ID] {
			marker = "★"
		}
		sb.WriteString(fmt.Sprintf("%s #%d  %s\n", marker, job.ID, job.Title))
		sb.WriteString(fmt.Sprintf("    %s · %s · %s\n", job.Company, job.Source, PostedText(job.PostedDaysAgo)))
		sb.WriteString(fmt.Sprintf("    %s · %s · %s\n", job.Location, job.Mode, job.Experience))
		sb.WriteString(fmt.Sprintf("    %s · Match %d%%", job.SalaryRange, job.MatchScore))
		if st, ok := statuses[job.ID]; ok && st != types.StatusNotApplied {
			sb.WriteString(fmt.Sprintf(" · %s", st))
		}
		sb.WriteString("\n")
		if len(job.Skills) > 0 {
			sb.WriteString(fmt.Sprintf("    [%s]\n", skillsText(job.Skills)))
		}
		if i < len(jobs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobDetail outputs every field of a single job.
func (p *Printer) PrintJobDetail(job *types.ScoredJob, status types.Status, saved bool) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s • %s • %s\n", job.Company, job.Location, job.Mode))
	sb.WriteString(fmt.Sprintf("%s • %s\n", job.Experience, job.SalaryRange))
	sb.WriteString(fmt.Sprintf("Source:   %s (%s)\n", job.Source, PostedText(job.PostedDaysAgo)))
	sb.WriteString(fmt.Sprintf("Match:    %d%%\n", job.MatchScore))
	sb.WriteString(fmt.Sprintf("Status:   %s\n", status))
	if saved {
		sb.WriteString("Saved:    yes\n")
	}
	sb.WriteString("\nDescription:\n")
	for _, line := range wrap(job.Description, boxWidth-6) {
		sb.WriteString(fmt.Sprintf("  %s\n", line))
	}
	if len(job.Skills) > 0 {
		sb.WriteString("\nRequired Skills:\n")
		for _, skill := range job.Skills {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
	}
	if job.ApplyURL != "" {
		sb.WriteString(fmt.Sprintf("\nApply: %s\n", job.ApplyURL))
	}

	p.printBox(fmt.Sprintf("#%d %s", job.ID, job.Title), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDigest outputs a generated digest.
func (p *Printer) PrintDigest(d *types.Digest) {
	if d == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated: %s\n", d.GeneratedAt.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("Top %d matches\n\n", len(d.Jobs)))
	for i, job := range d.Jobs {
		sb.WriteString(fmt.Sprintf("%2d. %s (%d%%)\n", i+1, job.Title, job.MatchScore))
		sb.WriteString(fmt.Sprintf("    %s · %s · %s\n", job.Company, job.Location, PostedText(job.PostedDaysAgo)))
		if job.ApplyURL != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", job.ApplyURL))
		}
	}

	p.printBox(fmt.Sprintf("DAILY DIGEST %s", d.Date), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPreferences outputs the stored preferences, or a hint when none exist.
func (p *Printer) PrintPreferences(prefs *types.Preferences) {
	if prefs == nil {
		p.printBox("PREFERENCES", "Not configured. Use 'prefs set' to enable match scores.")
		return
	}

	modes := make([]string, len(prefs.PreferredModes))
	for i, m := range prefs.PreferredModes {
		modes[i] = string(m)
	}
	experience := string(prefs.ExperienceLevel)
	if experience == "" {
		experience = "-"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Roles:      %s\n", listOrDash(prefs.RoleKeywords)))
	sb.WriteString(fmt.Sprintf("Locations:  %s\n", listOrDash(prefs.PreferredLocations)))
	sb.WriteString(fmt.Sprintf("Modes:      %s\n", listOrDash(modes)))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", experience))
	sb.WriteString(fmt.Sprintf("Skills:     %s\n", listOrDash(prefs.Skills)))
	sb.WriteString(fmt.Sprintf("Min score:  %d", prefs.Threshold()))

	p.printBox("PREFERENCES", sb.String())
}

func listOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

// PrintHistory outputs status changes, newest first. titles maps job ids to
// display names; unknown ids are shown by number only.
func (p *Printer) PrintHistory(entries []types.HistoryEntry, titles map[int]string) {
	if len(entries) == 0 {
		p.printBox("STATUS HISTORY", "No status changes yet.")
		return
	}

	var sb strings.Builder
	for _, e := range entries {
		name := fmt.Sprintf("#%d", e.JobID)
		if title, ok := titles[e.JobID]; ok {
			name = fmt.Sprintf("#%d %s", e.JobID, title)
		}
		sb.WriteString(fmt.Sprintf("%s  %s\n", e.Timestamp.Format("2006-01-02 15:04"), e.Status))
		sb.WriteString(fmt.Sprintf("  %s\n", name))
	}

	p.printBox("STATUS HISTORY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFilterState outputs the persisted dashboard filters.
func (p *Printer) PrintFilterState(f types.FilterState) {
	values := map[string]string{
		types.FilterKeyword:     f.Keyword,
		types.FilterLocation:    f.Location,
		types.FilterMode:        f.Mode,
		types.FilterExperience:  f.Experience,
		types.FilterSource:      f.Source,
		types.FilterStatus:      f.Status,
		types.FilterOnlyMatches: fmt.Sprintf("%t", f.OnlyMatches),
		types.FilterSort:        string(f.Sort),
	}

	var sb strings.Builder
	for _, field := range types.FilterFields() {
		v := values[field]
		if v == "" {
			v = "(any)"
		}
		sb.WriteString(fmt.Sprintf("%-12s %s\n", field+":", v))
	}

	p.printBox("FILTERS", strings.TrimSuffix(sb.String(), "\n"))
}
