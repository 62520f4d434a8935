// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// Config contains everything a player or operator can tune.
// The board size and tick rate are fixed and deliberately absent.
type Config struct {
	Glyphs GlyphConfig  `yaml:"glyphs"`
	Sound  bool         `yaml:"sound"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// GlyphConfig sets the characters used to draw the board.
type GlyphConfig struct {
	Wall  string `yaml:"wall"`
	Snake string `yaml:"snake"`
	Food  string `yaml:"food"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty disables logging in play mode
}

// ServerConfig holds settings for `snake serve`.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks that the configuration can be used as is.
func (c Config) Validate() error {
	for name, g := range map[string]string{
		"wall":  c.Glyphs.Wall,
		"snake": c.Glyphs.Snake,
		"food":  c.Glyphs.Food,
	} {
		if _, err := Glyph(g); err != nil {
			return fmt.Errorf("glyphs.%s: %w", name, err)
		}
	}

	if c.Glyphs.Wall == c.Glyphs.Snake || c.Glyphs.Wall == c.Glyphs.Food || c.Glyphs.Snake == c.Glyphs.Food {
		return fmt.Errorf("glyphs: wall, snake and food must differ")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("server.idle_timeout: must not be negative")
	}

	return nil
}

// Glyph converts a configured glyph string to the single rune it holds.
func Glyph(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("glyph %q must be exactly one character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == ' ' {
		return 0, fmt.Errorf("glyph must not be a space")
	}
	return r, nil
}

// Runes returns the wall, snake and food glyphs as runes.
// Call Validate first; invalid entries come back as 0.
func (g GlyphConfig) Runes() (wall, snake, food rune) {
	wall, _ = Glyph(g.Wall)
	snake, _ = Glyph(g.Snake)
	food, _ = Glyph(g.Food)
	return wall, snake, food
}
