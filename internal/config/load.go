package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ParseError reports a config file that could not be decoded.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parse %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the config at path on top of Default. A missing file, or an
// empty path, yields the defaults. The result is not validated.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Decode(path, data)
}

// Decode parses data as TOML, or as YAML when path ends in .yaml or .yml.
// A budget_preset replaces the default budget before any explicit budget
// keys are applied.
func Decode(path string, data []byte) (Config, error) {
	unmarshal := toml.Unmarshal
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	}

	cfg := Default()

	var head struct {
		BudgetPreset string `toml:"budget_preset" yaml:"budget_preset"`
	}
	if err := unmarshal(data, &head); err != nil {
		return Config{}, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	if b, ok := presets[head.BudgetPreset]; ok {
		cfg.Budget = b
	}

	if err := unmarshal(data, &cfg); err != nil {
		return Config{}, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return cfg, nil
}
