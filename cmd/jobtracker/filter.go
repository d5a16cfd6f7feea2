package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-notification-tracker/internal/types"
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Show or change the saved dashboard filters",
}

var filterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved dashboard filters",
	Args:  cobra.NoArgs,
	RunE:  runFilterShow,
}

var filterSetCmd = &cobra.Command{
	Use:   "set <field> [value]",
	Short: "Set one dashboard filter",
	Long: fmt.Sprintf("Sets one dashboard filter field and saves it. Fields: %s. "+
		"Omit the value to clear a single field.", strings.Join(types.FilterFields(), ", ")),
	Args: cobra.RangeArgs(1, 2),
	RunE: runFilterSet,
}

var filterClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset all dashboard filters",
	Args:  cobra.NoArgs,
	RunE:  runFilterClear,
}

func init() {
	filterCmd.AddCommand(filterShowCmd, filterSetCmd, filterClearCmd)
	rootCmd.AddCommand(filterCmd)
}

func runFilterShow(cmd *cobra.Command, _ []string) error {
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
	printer(cmd).PrintFilterState(f)
	return nil
}

func runFilterSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	value := ""
	if len(args) == 2 {
		value = args[1]
	}
	f, err := s.SetFilter(ctx, args[0], value)
	if err != nil {
		return err
	}
	printer(cmd).PrintFilterState(f)
	return nil
}

func runFilterClear(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := s.ClearFilters(ctx); err != nil {
		return err
	}
	say(cmd, "Filters cleared.")
	return nil
}
