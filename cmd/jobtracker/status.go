package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-notification-tracker/internal/types"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Read or change a job's application status",
}

var statusSetCmd = &cobra.Command{
	Use:   "set <id> <status>",
	Short: "Record a new application status",
	Long: fmt.Sprintf("Records a status change and adds it to the history. Valid statuses: %s.",
		strings.Join(statusNames(), ", ")),
	Args: cobra.MinimumNArgs(2),
	RunE: runStatusSet,
}

var statusGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print a job's application status",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatusGet,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent status changes, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	statusCmd.AddCommand(statusSetCmd, statusGetCmd)
	rootCmd.AddCommand(statusCmd, historyCmd)
}

func statusNames() []string {
	all := types.AllStatuses()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = fmt.Sprintf("%q", s)
	}
	return names
}

func runStatusSet(cmd *cobra.Command, args []string) error {
	id, err := parseJobID(args[0])
	if err != nil {
		return err
	}
	// "Not Applied" may arrive unquoted as two arguments
	status := strings.Join(args[1:], " ")

	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := s.SetStatus(ctx, id, status); err != nil {
		return err
	}
	say(cmd, "Job #%d marked %s.", id, status)
	return nil
}

func runStatusGet(cmd *cobra.Command, args []string) error {
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

	view, err := s.Job(ctx, id)
	if err != nil {
		return err
	}
	say(cmd, "#%d %s: %s", id, view.Title, view.Status)
	return nil
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	history, err := s.Tracker.History(ctx)
	if err != nil {
		return err
	}
	printer(cmd).PrintHistory(history, s.Titles())
	return nil
}
