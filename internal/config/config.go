// SPDX-License-Identifier: MIT

// Package config loads CLI settings from YAML or JSONC files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/mitchellh/mapstructure"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/internal/logging"
)

var (
	errConfigRead        = errors.New("config: cannot read file")
	errConfigInvalid     = errors.New("config: invalid file")
	errConfigUnsupported = errors.New("config: unsupported file extension")
	errConfigValue       = errors.New("config: invalid value")
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds every CLI setting. Keys are snake_case in files.
type Config struct {
	Rows        int           `mapstructure:"rows"`
	Cols        int           `mapstructure:"cols"`
	WallDensity float64       `mapstructure:"wall_density"`
	WallPolicy  string        `mapstructure:"wall_policy"`
	ArrayLength int           `mapstructure:"array_length"`
	MaxValue    int           `mapstructure:"max_value"`
	Seed        int64         `mapstructure:"seed"`
	Delay       time.Duration `mapstructure:"delay"`
	StepBudget  int           `mapstructure:"step_budget"`
	Color       string        `mapstructure:"color"`
	LogLevel    string        `mapstructure:"log_level"`
}

// Default mirrors the visualizer defaults: a 20×20 grid with 20% walls and
// 20 values below 100.
func Default() Config {
	return Config{
		Rows:        builder.DefaultRows,
		Cols:        builder.DefaultCols,
		WallDensity: builder.DefaultWallDensity,
		WallPolicy:  builder.WallsIgnoreDuplicates.String(),
		ArrayLength: builder.DefaultArrayLength,
		MaxValue:    builder.DefaultMaxValue,
		Delay:       50 * time.Millisecond,
		Color:       ColorAuto,
		LogLevel:    "info",
	}
}

// Load returns Default overlaid with the file at path. An empty path yields
// the defaults. ".yaml" and ".yml" are read as YAML; ".json", ".jsonc" and
// ".hujson" as JSON with comments and trailing commas.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", errConfigRead, path, err)
	}
	raw, err := parse(filepath.Ext(path), data)
	if err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}
	if err := decode(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parse turns file bytes into a generic map.
func parse(ext string, data []byte) (map[string]any, error) {
	raw := make(map[string]any)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	case ".json", ".jsonc", ".hujson":
		standardized, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("invalid JSONC: %w", err)
		}
		if err := sonic.Unmarshal(standardized, &raw); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", errConfigUnsupported, ext)
	}

	return raw, nil
}

// decode overlays raw onto cfg. Unknown keys are errors; durations may be
// written as strings such as "75ms".
func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}

	return dec.Decode(raw)
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1 || c.Rows*c.Cols < 2:
		return fmt.Errorf("%w: grid %dx%d needs at least two cells", errConfigValue, c.Rows, c.Cols)
	case c.WallDensity < 0 || c.WallDensity >= 1:
		return fmt.Errorf("%w: wall_density %v outside [0,1)", errConfigValue, c.WallDensity)
	case c.ArrayLength < 1:
		return fmt.Errorf("%w: array_length %d", errConfigValue, c.ArrayLength)
	case c.MaxValue < 1:
		return fmt.Errorf("%w: max_value %d", errConfigValue, c.MaxValue)
	case c.Delay < 0:
		return fmt.Errorf("%w: delay %v", errConfigValue, c.Delay)
	case c.StepBudget < 0:
		return fmt.Errorf("%w: step_budget %d", errConfigValue, c.StepBudget)
	}
	if _, err := builder.ParseWallPolicy(c.WallPolicy); err != nil {
		return fmt.Errorf("%w: %w", errConfigValue, err)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q", errConfigValue, c.Color)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", errConfigValue, err)
	}

	return nil
}

// Policy returns the parsed wall policy. Call after Validate.
func (c Config) Policy() builder.WallPolicy {
	p, _ := builder.ParseWallPolicy(c.WallPolicy)

	return p
}
