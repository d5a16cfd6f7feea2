package main

import (
	"strconv"

	"github.com/jonathan/job-notification-tracker/internal/types"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List jobs matching the current filters",
	Long: "Scores every job against your preferences, applies the saved dashboard filters and prints the result. " +
		"Filter flags override the saved filters for this call only; use 'filter set' to change them permanently.",
	Args: cobra.NoArgs,
	RunE: runJobs,
}

var (
	jobsKeyword     string
	jobsLocation    string
	jobsMode        string
	jobsExperience  string
	jobsSource      string
	jobsStatus      string
	jobsOnlyMatches bool
	jobsSort        string
)

// filterFlags maps command flags to filter state fields.
var filterFlags = map[string]string{
	"keyword":      types.FilterKeyword,
	"location":     types.FilterLocation,
	"mode":         types.FilterMode,
	"experience":   types.FilterExperience,
	"source":       types.FilterSource,
	"status":       types.FilterStatus,
	"only-matches": types.FilterOnlyMatches,
	"sort":         types.FilterSort,
}

func init() {
	jobsCmd.Flags().StringVarP(&jobsKeyword, "keyword", "k", "", "Match title or company (case-insensitive)")
	jobsCmd.Flags().StringVarP(&jobsLocation, "location", "l", "", "Exact location")
	jobsCmd.Flags().StringVarP(&jobsMode, "mode", "m", "", "Work mode: Remote, Hybrid or Onsite")
	jobsCmd.Flags().StringVarP(&jobsExperience, "experience", "e", "", "Experience band: Fresher, 0-1, 1-3 or 3-5")
	jobsCmd.Flags().StringVar(&jobsSource, "source", "", "Job board: LinkedIn, Naukri or Indeed")
	jobsCmd.Flags().StringVar(&jobsStatus, "status", "", "Application status, e.g. \"Not Applied\"")
	jobsCmd.Flags().BoolVar(&jobsOnlyMatches, "only-matches", false, "Only jobs at or above your minimum match score")
	jobsCmd.Flags().StringVarP(&jobsSort, "sort", "s", "", "Sort order: latest, score or salary")

	rootCmd.AddCommand(jobsCmd)
}

// flagOverrides applies every filter flag the user set to f.
func flagOverrides(cmd *cobra.Command, f *types.FilterState) error {
	values := map[string]string{
		"keyword":      jobsKeyword,
		"location":     jobsLocation,
		"mode":         jobsMode,
		"experience":   jobsExperience,
		"source":       jobsSource,
		"status":       jobsStatus,
		"only-matches": strconv.FormatBool(jobsOnlyMatches),
		"sort":         jobsSort,
	}
	for flag, field := range filterFlags {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		if err := f.Set(field, values[flag]); err != nil {
			return err
		}
	}
	return nil
}

func runJobs(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	f, err := s.Filters(ctx)
	if err != nil {
		return err
	}
	if err := flagOverrides(cmd, &f); err != nil {
		return err
	}

	jobs, err := s.Dashboard(ctx, f)
	if err != nil {
		return err
	}
	statuses, err := s.Tracker.Statuses(ctx)
	if err != nil {
		return err
	}
	saved, err := s.Saved.Set(ctx)
	if err != nil {
		return err
	}

	printer(cmd).PrintJobList("DASHBOARD", jobs, statuses, saved, "No jobs match your search.")

	prefs, err := s.Prefs.Load(ctx)
	if err != nil {
		return err
	}
	if prefs == nil {
		say(cmd, "Tip: set your preferences with 'jobtracker prefs set' to see match scores.")
	}
	return nil
}
