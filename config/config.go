// SPDX-License-Identifier: MIT

// Package config loads alignment settings from a YAML file.
//
// Every field has a default; a file only needs the keys it changes:
//
//	mode: protein
//	matrix: BLOSUM62
//	scoring:
//	  gap: -8
//	workers: 4
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nwalign/nw"
	"github.com/katalvlaran/nwalign/scoring"
)

// ErrInvalidConfig wraps every load, parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the on-disk configuration.
type Config struct {
	Mode        string         `yaml:"mode" validate:"required,oneof=nucleotide protein"`
	Matrix      string         `yaml:"matrix" validate:"required"`
	Scoring     scoring.Scheme `yaml:"scoring"`
	GapChar     string         `yaml:"gap_char" validate:"len=1,printascii"`
	Workers     int            `yaml:"workers" validate:"min=1,max=256"`
	LogLevel    string         `yaml:"log_level" validate:"oneof=debug info warn error"`
	MetricsFile string         `yaml:"metrics_file"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mode:     scoring.Nucleotide.String(),
		Matrix:   scoring.DefaultMatrix,
		Scoring:  scoring.DefaultScheme(),
		GapChar:  string(nw.DefaultGapChar),
		Workers:  nw.DefaultWorkers,
		LogLevel: "info",
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%w: parse: %w", ErrInvalidConfig, err)
		}
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Normalize lower-cases and trims the enumerated string fields. Mode aliases
// accepted by scoring.ParseMode are rewritten to their canonical name.
func (c *Config) Normalize() {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	if m, err := scoring.ParseMode(c.Mode); err == nil {
		c.Mode = m.String()
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// Validate checks field constraints and that mode and matrix resolve to a
// scorer.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.GapChar == " " {
		return fmt.Errorf("%w: gap_char must not be a space", ErrInvalidConfig)
	}
	if _, err := c.Scorer(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ModeValue parses Mode.
func (c Config) ModeValue() (scoring.Mode, error) {
	return scoring.ParseMode(c.Mode)
}

// Scorer resolves mode, matrix and scheme into a scoring strategy.
func (c Config) Scorer() (scoring.Scorer, error) {
	mode, err := c.ModeValue()
	if err != nil {
		return nil, err
	}

	return mode.Scorer(c.Scoring, c.Matrix)
}

// Options converts the engine settings into nw options. c must be valid.
func (c Config) Options() []nw.Option {
	return []nw.Option{nw.WithGapChar(c.GapChar[0]), nw.WithWorkers(c.Workers)}
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
