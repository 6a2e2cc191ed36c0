package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dgallion1/syllabus/internal/outline"
	"github.com/dgallion1/syllabus/internal/parser"
)

type Config struct {
	// Outline document to read; empty selects the built-in curriculum.
	Source string

	// Output format: tree, yaml or json.
	Format string

	// Validation
	Strict   bool
	MaxDepth int

	LogLevel string
}

var validFormats = map[string]bool{
	"tree": true,
	"yaml": true,
	"json": true,
}

func Load() Config {
	cfg := Config{
		Source: os.Getenv("SYLLABUS_SOURCE"),
		Format: strings.ToLower(envOr("SYLLABUS_FORMAT", "tree")),

		Strict:   envBool("SYLLABUS_STRICT", true),
		MaxDepth: envInt("SYLLABUS_MAX_DEPTH", outline.DefaultMaxDepth),

		LogLevel: strings.ToLower(envOr("LOG_LEVEL", "info")),
	}

	if cfg.Format == "" {
		cfg.Format = "tree"
	}

	return cfg
}

func (c Config) Validate() error {
	if !validFormats[c.Format] {
		return fmt.Errorf("SYLLABUS_FORMAT must be tree, yaml or json, got %q", c.Format)
	}
	if c.Source != "" && !parser.IsSupportedExtension(c.Source) {
		return fmt.Errorf("SYLLABUS_SOURCE %q has an unsupported extension", c.Source)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel for slog.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
