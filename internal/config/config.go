// Package config loads termbrot's tunables from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"termbrot/internal/fractal"
)

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "TERMBROT_CONFIG"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Budget presets selectable with budget_preset.
var presets = map[string]fractal.Budget{
	"default": fractal.DefaultBudget,
	"steep":   fractal.SteepBudget,
}

// Config holds every tunable of the renderer and the interaction layer.
type Config struct {
	// Workers is the render worker count; 0 derives it from the CPU count.
	Workers int `toml:"workers" yaml:"workers"`

	// Step is the fraction of the current range each zoom or pan moves by.
	Step float64 `toml:"step" yaml:"step"`

	// Margin is subtracted from the terminal size to leave room for the
	// status and help lines.
	Margin int `toml:"margin" yaml:"margin"`

	// FrameIntervalMS delays the next frame after one has been painted.
	FrameIntervalMS int `toml:"frame_interval_ms" yaml:"frame_interval_ms"`

	BudgetPreset string         `toml:"budget_preset" yaml:"budget_preset"`
	Budget       fractal.Budget `toml:"budget" yaml:"budget"`

	// Window is the home view, also used at startup.
	Window fractal.Window `toml:"window" yaml:"window"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Workers:      100,
		Step:         0.1,
		Margin:       2,
		BudgetPreset: "default",
		Budget:       fractal.DefaultBudget,
		Window:       fractal.Home,
	}
}

func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMS) * time.Millisecond
}

// Validate checks that the configuration can drive a renderer.
func (c Config) Validate() error {
	var errs []error
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if !(c.Step > 0 && c.Step < 0.5) {
		errs = append(errs, fmt.Errorf("step must be in (0, 0.5), got %v", c.Step))
	}
	if c.Margin < 0 {
		errs = append(errs, fmt.Errorf("margin must not be negative, got %d", c.Margin))
	}
	if c.FrameIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("frame_interval_ms must not be negative, got %d", c.FrameIntervalMS))
	}
	if _, ok := presets[c.BudgetPreset]; !ok && c.BudgetPreset != "" {
		errs = append(errs, fmt.Errorf("unknown budget_preset %q", c.BudgetPreset))
	}
	b := c.Budget
	if !(b.Base >= 1) {
		errs = append(errs, fmt.Errorf("budget.base must be at least 1, got %v", b.Base))
	}
	if b.Scale < 0 {
		errs = append(errs, fmt.Errorf("budget.scale must not be negative, got %v", b.Scale))
	}
	if b.LevelFactor < 0 {
		errs = append(errs, fmt.Errorf("budget.level_factor must not be negative, got %v", b.LevelFactor))
	}
	if !(b.LogBase > 1) {
		errs = append(errs, fmt.Errorf("budget.log_base must be greater than 1, got %v", b.LogBase))
	}
	if !(b.Ceiling >= b.Base) {
		errs = append(errs, fmt.Errorf("budget.ceiling must be at least base, got %v", b.Ceiling))
	}
	if !(b.ReferenceWidth > 0) {
		errs = append(errs, fmt.Errorf("budget.reference_width must be positive, got %v", b.ReferenceWidth))
	}
	if err := c.Window.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("window: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Path returns the config file location: $TERMBROT_CONFIG if set, else
// config.toml under the user config directory. It returns "" when neither
// is available.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "termbrot", "config.toml")
}
