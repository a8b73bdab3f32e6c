// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package config holds the configuration of the w3w command line tool
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Xuanwo/go-locale"
	"github.com/kkyr/fig"
)

const configEnv = "W3W"

// Config represents the CLI's configuration structure.
type Config struct {
	APIKey   string `fig:"api_key"`
	Hostname string `fig:"hostname"`
	Language string `fig:"language"`
	Locale   string `fig:"locale"`
	// Allowed values: json, geojson
	Format   string     `fig:"format" default:"json"`
	LogLevel slog.Level `fig:"loglevel" default:"8"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Format != "json" && c.Format != "geojson" {
		return fmt.Errorf("invalid format: %s", c.Format)
	}
	if c.Language == "" {
		c.Language = detectLanguage()
	}

	return nil
}

// detectLanguage derives the word list language from the system locale,
// falling back to English
func detectLanguage() string {
	tag, err := locale.Detect()
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}
