// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ReconForth Contributors

// Package config loads CLI configuration from an optional reconforth.yaml
// file, overridden by command-line flags.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config is the CLI's own configuration; the DSL core itself takes none.
type Config struct {
	PackSpecPath string `koanf:"pack_spec_path"`
	LogLevel     string `koanf:"log_level"`
	LogFormat    string `koanf:"log_format"`
}

// Default returns the configuration used when no file or flags override it.
func Default() Config {
	return Config{
		PackSpecPath: "pack.rf",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load reads path (if non-empty and present) as YAML, then layers flags on
// top, and unmarshals the result onto a copy of Default().
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")
	cfg := Default()

	defaults := confmap.Provider(map[string]any{
		"pack_spec_path": cfg.PackSpecPath,
		"log_level":      cfg.LogLevel,
		"log_format":     cfg.LogFormat,
	}, ".")
	if err := k.Load(defaults, nil); err != nil {
		return cfg, err
	}

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, err
			}
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return cfg, err
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
