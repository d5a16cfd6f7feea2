package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jonathan/job-notification-tracker/internal/schemas"
	rootschemas "github.com/jonathan/job-notification-tracker/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a tracker schema",
	Long: "Validates a job dataset, preferences or digest JSON file against the built-in schema for its kind, " +
		"or against an explicit schema file.",
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var (
	validateKind   string
	validateSchema string
	validateJSON   string
)

// builtinSchemas maps --kind values to embedded schemas.
var builtinSchemas = map[string]string{
	"jobs":        rootschemas.JobDataset,
	"preferences": rootschemas.Preferences,
	"digest":      rootschemas.Digest,
}

func init() {
	validateCmd.Flags().StringVar(&validateKind, "kind", "jobs", "Built-in schema: "+strings.Join(schemaKinds(), ", "))
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to a JSON Schema file (overrides --kind)")
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to the JSON file to validate (required)")

	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func schemaKinds() []string {
	kinds := make([]string, 0, len(builtinSchemas))
	for k := range builtinSchemas {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	if validateSchema != "" {
		err = schemas.CheckFile(validateSchema, validateJSON)
	} else {
		schema, ok := builtinSchemas[validateKind]
		if !ok {
			return fmt.Errorf("unknown schema kind %q (expected one of %s)", validateKind, strings.Join(schemaKinds(), ", "))
		}
		data, readErr := os.ReadFile(validateJSON)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", validateJSON, readErr)
		}
		err = schemas.Check(schema, data)
	}

	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Validation failed: %v\n", err)
		return fmt.Errorf("%s is not valid", validateJSON)
	}
	say(cmd, "Validation passed: %s", validateJSON)
	return nil
}
