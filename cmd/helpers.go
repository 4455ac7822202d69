package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/globe-explorer/internal/config"
	"github.com/ziadkadry99/globe-explorer/internal/db"
	"github.com/ziadkadry99/globe-explorer/internal/logging"
	"github.com/ziadkadry99/globe-explorer/internal/states"
	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `globe theme` to create a config file", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	return logging.New(cfg.Log)
}

// datasetSource picks the configured dataset: a SQLite database wins over
// dataset files, which win over the built-in records. The returned close
// function releases the database, if one was opened.
func datasetSource(cfg *config.Config) (states.Source, func() error, error) {
	noop := func() error { return nil }
	switch {
	case cfg.Dataset.SQLite != "":
		if _, err := os.Stat(cfg.Dataset.SQLite); err != nil {
			return nil, nil, fmt.Errorf("dataset database: %w\nRun `globe dataset import --db %s` first", err, cfg.Dataset.SQLite)
		}
		database, err := db.Open(cfg.Dataset.SQLite)
		if err != nil {
			return nil, nil, fmt.Errorf("opening dataset database: %w", err)
		}
		return states.Cached(states.SQLiteSource{DB: database}), database.Close, nil
	case len(cfg.Dataset.Files) > 0:
		return states.Cached(states.FileSource{Patterns: cfg.Dataset.Files}), noop, nil
	default:
		return states.Embedded(), noop, nil
	}
}

// applyThemeOverrides applies key=value pairs such as pinColor=#ff0000.
func applyThemeOverrides(base theme.Config, pairs []string) (theme.Config, error) {
	t := base
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return base, fmt.Errorf("theme override %q: expected key=value", pair)
		}
		next, err := t.With(theme.Key(strings.TrimSpace(key)), strings.TrimSpace(value))
		if err != nil {
			return base, err
		}
		t = next
	}
	return t, nil
}
