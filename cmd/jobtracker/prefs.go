package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-notification-tracker/internal/schemas"
	"github.com/jonathan/job-notification-tracker/internal/types"
	rootschemas "github.com/jonathan/job-notification-tracker/schemas"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change your job preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved preferences",
	Args:  cobra.NoArgs,
	RunE:  runPrefsShow,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update preferences",
	Long: "Updates the preferences named by the given flags and keeps the rest. " +
		"List flags take comma-separated values; pass an empty string to clear one.",
	Args: cobra.NoArgs,
	RunE: runPrefsSet,
}

var prefsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved preferences",
	Args:  cobra.NoArgs,
	RunE:  runPrefsClear,
}

var prefsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace preferences with a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrefsImport,
}

var prefsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the saved preferences as JSON",
	Args:  cobra.NoArgs,
	RunE:  runPrefsExport,
}

var (
	prefsRoles      string
	prefsLocations  string
	prefsModes      string
	prefsExperience string
	prefsSkills     string
	prefsMinScore   int
	prefsExportOut  string
)

func init() {
	prefsSetCmd.Flags().StringVar(&prefsRoles, "roles", "", "Role keywords, e.g. \"backend,developer\"")
	prefsSetCmd.Flags().StringVar(&prefsLocations, "locations", "", "Preferred locations, e.g. \"Bengaluru,Pune\"")
	prefsSetCmd.Flags().StringVar(&prefsModes, "modes", "", "Preferred work modes: Remote, Hybrid, Onsite")
	prefsSetCmd.Flags().StringVar(&prefsExperience, "experience", "", "Experience band: Fresher, 0-1, 1-3 or 3-5")
	prefsSetCmd.Flags().StringVar(&prefsSkills, "skills", "", "Skills, e.g. \"Go,SQL\"")
	prefsSetCmd.Flags().IntVar(&prefsMinScore, "min-score", types.DefaultMinMatchScore, "Minimum match score (0-100)")

	prefsExportCmd.Flags().StringVarP(&prefsExportOut, "out", "o", "", "Output file (default: stdout)")

	prefsCmd.AddCommand(prefsShowCmd, prefsSetCmd, prefsClearCmd, prefsImportCmd, prefsExportCmd)
	rootCmd.AddCommand(prefsCmd)
}

func runPrefsShow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	prefs, err := s.Prefs.Load(ctx)
	if err != nil {
		return err
	}
	printer(cmd).PrintPreferences(prefs)
	return nil
}

// applyPrefsFlags copies every preference flag the user set onto prefs.
func applyPrefsFlags(cmd *cobra.Command, prefs *types.Preferences) {
	flags := cmd.Flags()
	if flags.Changed("roles") {
		prefs.RoleKeywords = splitList(prefsRoles)
	}
	if flags.Changed("locations") {
		prefs.PreferredLocations = splitList(prefsLocations)
	}
	if flags.Changed("modes") {
		prefs.PreferredModes = nil
		for _, m := range splitList(prefsModes) {
			prefs.PreferredModes = append(prefs.PreferredModes, types.WorkMode(m))
		}
	}
	if flags.Changed("experience") {
		prefs.ExperienceLevel = types.ExperienceLevel(prefsExperience)
	}
	if flags.Changed("skills") {
		prefs.Skills = splitList(prefsSkills)
	}
	if flags.Changed("min-score") {
		score := prefsMinScore
		prefs.MinMatchScore = &score
	}
}

func runPrefsSet(cmd *cobra.Command, _ []string) error {
	if !anyChanged(cmd, "roles", "locations", "modes", "experience", "skills", "min-score") {
		return fmt.Errorf("nothing to update: pass at least one preference flag")
	}

	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	prefs, err := s.Prefs.Load(ctx)
	if err != nil {
		return err
	}
	if prefs == nil {
		prefs = &types.Preferences{}
	}
	applyPrefsFlags(cmd, prefs)

	if err := s.Prefs.Save(ctx, prefs); err != nil {
		return err
	}
	printer(cmd).PrintPreferences(prefs)
	return nil
}

func runPrefsClear(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := s.Prefs.Clear(ctx); err != nil {
		return err
	}
	say(cmd, "Preferences cleared.")
	return nil
}

func runPrefsImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read preferences file %s: %w", args[0], err)
	}
	if err := schemas.Check(rootschemas.Preferences, data); err != nil {
		return err
	}

	var prefs types.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return fmt.Errorf("failed to unmarshal preferences JSON: %w", err)
	}

	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := s.Prefs.Save(ctx, &prefs); err != nil {
		return err
	}
	printer(cmd).PrintPreferences(&prefs)
	return nil
}

func runPrefsExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, closeStore, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	prefs, err := s.Prefs.Load(ctx)
	if err != nil {
		return err
	}
	if prefs == nil {
		return fmt.Errorf("no preferences configured")
	}
	return writeJSON(cmd, prefsExportOut, prefs)
}
