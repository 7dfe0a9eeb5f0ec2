// Package config provides configuration for chesscore.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Play   PlayConfig   `yaml:"play"`
	Arena  ArenaConfig  `yaml:"arena"`
	Perft  PerftConfig  `yaml:"perft"`
	Output OutputConfig `yaml:"output"`

	// Verbosity: 0=results only, 1=summaries, 2=every ply.
	Verbosity int `yaml:"verbosity"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Play:       *NewPlayConfig(),
		Arena:      *NewArenaConfig(),
		Perft:      *NewPerftConfig(),
		Output:     *NewOutputConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section. Errors wrap errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Play.Validate(); err != nil {
		return err
	}
	if err := c.Arena.Validate(); err != nil {
		return err
	}
	if c.Arena.Games > 1 && c.Play.HasHuman() {
		return fmt.Errorf("%d games need automated players: %w", c.Arena.Games, errors.ErrInvalidConfig)
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return nil
}

// Load reads a YAML file over the defaults. Keys that are absent keep
// their default value; unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal returns the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
