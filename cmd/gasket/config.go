package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexander-mcdowell/Appolonian-Gasket/gasket"
	"github.com/alexander-mcdowell/Appolonian-Gasket/render"
)

// Config mirrors gasket.yaml.  Command line flags win over file values.
type Config struct {
	Tolerance     float64      `yaml:"tolerance"`
	CutoffFactor  float64      `yaml:"cutoff_factor"`
	Cutoff        float64      `yaml:"cutoff"`
	MaxExpansions int          `yaml:"max_expansions"`
	LogLevel      string       `yaml:"log_level"`
	Render        RenderConfig `yaml:"render"`
}

type RenderConfig struct {
	Size      int     `yaml:"size"`
	ColorSeed uint64  `yaml:"color_seed"`
	MinRadius float64 `yaml:"min_radius"`
}

func DefaultConfig() Config {
	return Config{
		Tolerance:    gasket.DEFAULT_TOLERANCE,
		CutoffFactor: gasket.CUTOFF_FACTOR,
		LogLevel:     "info",
		Render: RenderConfig{
			Size:      render.DEFAULT_SIZE,
			ColorSeed: render.DEFAULT_COLOR_SEED,
		},
	}
}

// LoadConfig reads path over the defaults.  A missing file is only an
// error when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	// NaN fails every comparison, so test for the good range.
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("tolerance must be positive and finite, got %g", c.Tolerance)
	}
	if math.IsNaN(c.CutoffFactor) || math.IsInf(c.CutoffFactor, 0) {
		return fmt.Errorf("cutoff_factor must be finite, got %g", c.CutoffFactor)
	}
	if c.Cutoff == 0 && c.CutoffFactor < 1 {
		return fmt.Errorf("cutoff_factor must be at least 1, got %g", c.CutoffFactor)
	}
	if math.IsNaN(c.Cutoff) || math.IsInf(c.Cutoff, 0) {
		return fmt.Errorf("cutoff must be finite, got %g", c.Cutoff)
	}
	if c.Cutoff < 0 {
		return fmt.Errorf("cutoff must not be negative, got %g", c.Cutoff)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("max_expansions must not be negative, got %d", c.MaxExpansions)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// GenerateOptions turns the config into gasket options.
func (c Config) GenerateOptions(logger *slog.Logger) []gasket.Option {
	opts := []gasket.Option{
		gasket.WithTolerance(c.Tolerance),
		gasket.WithCutoffFactor(c.CutoffFactor),
		gasket.WithMaxExpansions(c.MaxExpansions),
		gasket.WithLogger(logger),
	}
	if c.Cutoff > 0 {
		opts = append(opts, gasket.WithCutoff(c.Cutoff))
	}
	return opts
}

func (c Config) RenderOptions(logger *slog.Logger) render.Options {
	return render.Options{
		Size:      c.Render.Size,
		ColorSeed: c.Render.ColorSeed,
		MinRadius: c.Render.MinRadius,
		Logger:    logger,
	}
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return l, fmt.Errorf("bad log level %q: %w", s, err)
	}
	return l, nil
}

func newLogger(level string) (*slog.Logger, error) {
	l, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}
