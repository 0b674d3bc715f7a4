package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

// loadGameConfig loads the scroller config, applies --difficulty and validates the result.
func loadGameConfig() (config.ScrollerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ScrollerConfig{}, err
	}
	cfg, err := config.LoadScroller(flagConfig)
	if err != nil {
		return config.ScrollerConfig{}, err
	}
	config.ApplyScrollerPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.ScrollerConfig{}, err
	}
	return cfg, nil
}

// openStore opens the SQLite store when --db is set and the score file otherwise.
func openStore(logger *log.Logger) (storage.Store, error) {
	opts := []storage.Option{storage.WithLogger(logger.WithPrefix("storage"))}
	if flagDBPath != "" {
		return storage.OpenSQLite(flagDBPath, opts...)
	}
	return storage.NewFileStore(flagScoresPath, opts...), nil
}

// newLogger returns a logger writing to --log-file, or to fallback when unset.
// The returned closer releases the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w, closer := fallback, func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagLogFile != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
