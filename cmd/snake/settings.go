package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// resolveConfig loads the config file and lets explicitly set flags win.
func resolveConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("sound") {
		cfg.Sound = flagSound
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// gameOptions converts configured glyphs into game options.
func gameOptions(cfg config.Config) snake.Options {
	opts := snake.DefaultOptions()
	opts.WallGlyph, opts.SnakeGlyph, opts.FoodGlyph = cfg.Glyphs.Runes()
	opts.Seed = flagSeed
	return opts
}

// newFileLogger returns a logger writing to the configured file, or one that
// discards everything when no file is set. The terminal belongs to the game.
// The returned func closes the file.
func newFileLogger(lc config.LogConfig) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	if lc.File == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	f, err := os.OpenFile(config.ExpandHome(lc.File), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, f.Close, nil
}
