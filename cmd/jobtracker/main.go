// Package main provides the jobtracker command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobtracker",
	Short: "Track job postings, match scores and applications",
	Long: "jobtracker scores a job dataset against your preferences, filters and sorts it like a " +
		"dashboard, tracks saved jobs and application statuses, and builds a daily digest of the top matches.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	storeFlag  string
	dsnFlag    string
	jobsFlag   string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Storage backend: memory, file, sqlite, postgres or redis")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "File path or connection URL for the storage backend")
	rootCmd.PersistentFlags().StringVar(&jobsFlag, "jobs", "", "Path to a JSON or YAML job dataset (default: built-in sample)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
