package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/job-notification-tracker/internal/digest"
	"github.com/jonathan/job-notification-tracker/internal/schemas"
	rootschemas "github.com/jonathan/job-notification-tracker/schemas"
	"github.com/spf13/cobra"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Generate or read the daily digest of top matches",
}

var digestGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build the digest for a day (once per day)",
	Long: "Scores every job, keeps those at or above your minimum match score and stores the top 10 " +
		"as the digest for the day. A day's digest is never regenerated; the stored one is shown instead.",
	Args: cobra.NoArgs,
	RunE: runDigestGenerate,
}

var digestShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a stored digest",
	Args:  cobra.NoArgs,
	RunE:  runDigestShow,
}

var (
	digestDate string
	digestOut  string
)

func init() {
	digestCmd.PersistentFlags().StringVarP(&digestDate, "date", "d", "", "Digest date as YYYY-MM-DD (default: today)")

	digestShowCmd.Flags().StringVarP(&digestOut, "out", "o", "", "Write the digest as JSON to this file instead of printing it")

	digestCmd.AddCommand(digestGenerateCmd, digestShowCmd)
	rootCmd.AddCommand(digestCmd)
}

func runDigestGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	d, err := s.GenerateDigest(ctx, digestDate)
	switch {
	case errors.Is(err, digest.ErrUnconfigured):
		return errors.New("set your preferences first with 'jobtracker prefs set'")
	case errors.Is(err, digest.ErrNoMatches):
		say(cmd, "No matching roles today. Check again tomorrow.")
		return nil
	case errors.Is(err, digest.ErrAlreadyExists):
		say(cmd, "Digest for %s was already generated.", d.Date)
	case err != nil:
		return err
	}

	printer(cmd).PrintDigest(d)
	return nil
}

func runDigestShow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	d, err := s.Digest(ctx, digestDate)
	if err != nil {
		return err
	}
	if d == nil {
		say(cmd, "No digest stored for that day. Run 'jobtracker digest generate'.")
		return nil
	}
	if digestOut != "" {
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal digest to JSON: %w", err)
		}
		// Output validation is a safety check, not a requirement
		if err := schemas.Check(rootschemas.Digest, data); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Output validation failed: %v\n", err)
		}
		if err := writeFile(digestOut, data); err != nil {
			return err
		}
		say(cmd, "Wrote digest %s with %d jobs to %s", d.Date, len(d.Jobs), digestOut)
		return nil
	}
	printer(cmd).PrintDigest(d)
	return nil
}
