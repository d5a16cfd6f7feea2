package main

import (
	"fmt"

	"github.com/jonathan/job-notification-tracker/internal/types"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <id>",
	Short: "Bookmark a job",
	Args:  cobra.ExactArgs(1),
	RunE:  runSave,
}

var unsaveCmd = &cobra.Command{
	Use:   "unsave <id>",
	Short: "Remove a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnsave,
}

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List bookmarked jobs",
	Args:  cobra.NoArgs,
	RunE:  runSaved,
}

var savedSort string

func init() {
	savedCmd.Flags().StringVarP(&savedSort, "sort", "s", string(types.SortLatest), "Sort order: latest, score or salary")

	rootCmd.AddCommand(saveCmd, unsaveCmd, savedCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	id, err := parseJobID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := s.SaveJob(ctx, id); err != nil {
		return err
	}
	say(cmd, "Saved job #%d.", id)
	return nil
}

func runUnsave(cmd *cobra.Command, args []string) error {
	id, err := parseJobID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := s.UnsaveJob(ctx, id); err != nil {
		return err
	}
	say(cmd, "Removed job #%d from saved jobs.", id)
	return nil
}

func runSaved(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	f := types.DefaultFilterState()
	if err := f.Set(types.FilterSort, savedSort); err != nil {
		return fmt.Errorf("invalid sort: %w", err)
	}

	jobs, err := s.SavedJobs(ctx, f)
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

	printer(cmd).PrintJobList("SAVED JOBS", jobs, statuses, saved, "No saved jobs yet. Use 'jobtracker save <id>'.")
	return nil
}
