package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/job-notification-tracker/internal/config"
	"github.com/jonathan/job-notification-tracker/internal/dataset"
	"github.com/jonathan/job-notification-tracker/internal/observability"
	"github.com/jonathan/job-notification-tracker/internal/session"
	"github.com/jonathan/job-notification-tracker/internal/storage"
	"github.com/jonathan/job-notification-tracker/internal/types"
	"github.com/spf13/cobra"
)

// resolveConfig applies the precedence flags > config file > environment > defaults.
func resolveConfig() (config.Config, error) {
	cfg := config.Config{Store: storeFlag, DSN: dsnFlag, Jobs: jobsFlag, Verbose: verbose}

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openSession resolves configuration, loads the job dataset and opens the store.
// The returned close function releases the store.
func openSession(ctx context.Context) (*session.Session, func(), error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	var jobs []types.Job
	if cfg.Jobs != "" {
		jobs, err = dataset.Load(cfg.Jobs)
	} else {
		jobs, err = dataset.Sample()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load jobs: %w", err)
	}

	kv, err := storage.Open(ctx, cfg.Store, cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}
	log.Printf("[cli] %d jobs, store=%s", len(jobs), cfg.Store)

	closeFn := func() {
		if err := kv.Close(); err != nil {
			log.Printf("[cli] failed to close store: %v", err)
		}
	}
	return session.New(kv, jobs), closeFn, nil
}

func printer(cmd *cobra.Command) *observability.Printer {
	return observability.NewPrinter(cmd.OutOrStdout())
}

func parseJobID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(arg), "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid job id %q", arg)
	}
	return id, nil
}

// splitList turns a comma-separated flag value into trimmed, non-empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// say writes one line of plain output.
func say(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// writeJSON writes v as indented JSON to path, or to the command output when path is empty.
func writeJSON(cmd *cobra.Command, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	// Ensure output directory exists
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
