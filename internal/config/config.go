package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. PASTEBOARD_WIDTH.
const Prefix = "PASTEBOARD"

type Config struct {
	Title     string `envconfig:"TITLE" default:"Pasteboard"`
	Width     int    `envconfig:"WIDTH" default:"1280"`
	Height    int    `envconfig:"HEIGHT" default:"800"`
	ExportDir string `envconfig:"EXPORT_DIR" default:"./exports"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	// Script, if set, is a JSON session script replayed at startup.
	Script string `envconfig:"SCRIPT"`

	CommitEachResizeStep bool `envconfig:"COMMIT_EACH_RESIZE_STEP" default:"false"`
	PinClampedEdges      bool `envconfig:"PIN_CLAMPED_EDGES" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}
