// Package config loads CLI defaults from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	envcfg "github.com/apirJS/splitfile/pkg/config"
)

// Config holds CLI defaults. Flags override env, env overrides the
// file, the file overrides built-in defaults.
type Config struct {
	BufferSize    int64  // streaming chunk size in bytes
	Algorithm     string // default checksum algorithm, "" = none
	VerifyWorkers int    // concurrent stats in verify
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		BufferSize:    1 << 20,
		VerifyWorkers: 8,
	}
}

// yamlConfig mirrors Config for unmarshaling, with the buffer size as a
// human-readable string ("1MB", "256KiB").
type yamlConfig struct {
	BufferSize    string `yaml:"buffer_size"`
	Algorithm     string `yaml:"algorithm"`
	VerifyWorkers int    `yaml:"verify_workers"`
}

// Load reads the config file at path, overlaying it on the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if yc.BufferSize != "" {
		size, err := humanize.ParseBytes(yc.BufferSize)
		if err != nil {
			return cfg, fmt.Errorf("config %s: buffer_size: %w", path, err)
		}
		cfg.BufferSize = int64(size)
	}
	if yc.Algorithm != "" {
		cfg.Algorithm = yc.Algorithm
	}
	if yc.VerifyWorkers > 0 {
		cfg.VerifyWorkers = yc.VerifyWorkers
	}
	return cfg, nil
}

// WithEnv overlays SPLITFILE_* environment variables on the config.
func (c Config) WithEnv() Config {
	c.BufferSize = envcfg.GetEnvInt64("SPLITFILE_BUFFER_SIZE", c.BufferSize)
	c.Algorithm = envcfg.GetEnvString("SPLITFILE_ALGORITHM", c.Algorithm)
	c.VerifyWorkers = envcfg.GetEnvInt("SPLITFILE_VERIFY_WORKERS", c.VerifyWorkers)
	return c
}
