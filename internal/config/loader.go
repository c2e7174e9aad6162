// SPDX-License-Identifier: MIT
// Package: shortpath/internal/config
//
// loader.go - layered loading: defaults, then an optional YAML file, then
// SHORTPATH_* environment variables.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SHORTPATH_"

	// ConfigEnvVar names a config file when --config is not given.
	ConfigEnvVar = "SHORTPATH_CONFIG"
)

// Loader reads Config from its sources.
type Loader struct {
	k         *koanf.Koanf
	path      string
	envPrefix string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFile names the YAML file to read. A missing explicit file is an error.
func WithFile(path string) LoaderOption {
	return func(l *Loader) { l.path = path }
}

// WithEnvPrefix replaces EnvPrefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader returns a Loader with the default sources.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: EnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges the sources by priority (later wins) and validates the result:
//  1. Defaults
//  2. YAML file (WithFile, else $SHORTPATH_CONFIG, else none)
//  3. Environment variables
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := l.loadFile(); err != nil {
		return nil, err
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Defaults returns the lowest-priority layer.
func Defaults() map[string]any {
	return map[string]any{
		"log.level":       "info",
		"log.file":        "",
		"log.max_size":    10,
		"log.max_backups": 3,
		"log.max_age":     28,
		"log.compress":    false,

		"solver.algorithm":      AlgorithmRegular,
		"solver.max_iterations": 0,
		"solver.cycle_check":    false,

		"metrics.file":      "",
		"metrics.namespace": "shortpath",
	}
}

func (l *Loader) loadFile() error {
	path := l.path
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		return err
	}
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

// loadEnv maps SHORTPATH_LOG_MAX_SIZE to log.max_size: the first underscore
// separates the section, the rest belongs to the key.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if key == "config" {
			return "", nil
		}
		section, rest, ok := strings.Cut(key, "_")
		if !ok {
			return key, value
		}
		return section + "." + rest, value
	}), nil)
}

// Load is NewLoader(opts...).Load().
func Load(opts ...LoaderOption) (*Config, error) {
	return NewLoader(opts...).Load()
}
