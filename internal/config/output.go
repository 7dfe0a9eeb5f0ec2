package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/output"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is "text", "pgn" or "json".
	Format string `yaml:"format"`

	// Notation for PGN movetext, "san" or "uci".
	Notation string `yaml:"notation"`

	// MaxLineLength is the maximum line length for PGN output
	MaxLineLength int `yaml:"maxLineLength"`

	// SevenTagRoster restricts PGN tags to the seven required ones.
	SevenTagRoster bool `yaml:"sevenTagRoster"`

	// NoColor disables ANSI colours in board output.
	NoColor bool `yaml:"noColor"`

	// Flip draws boards with Black at the bottom.
	Flip bool `yaml:"flip"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        output.FormatText,
		Notation:      "san",
		MaxLineLength: 80,
	}
}

// Validate checks the format, notation and line length.
func (o *OutputConfig) Validate() error {
	switch strings.ToLower(o.Format) {
	case output.FormatText, output.FormatPGN, output.FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q: %w", o.Format, errors.ErrInvalidConfig)
	}
	if _, ok := output.ParseNotation(o.Notation); !ok {
		return fmt.Errorf("unknown notation %q: %w", o.Notation, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength < 0 {
		return fmt.Errorf("max line length %d is negative: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}

// PGNOptions converts the settings to output.Options.
func (o *OutputConfig) PGNOptions() output.Options {
	notation, _ := output.ParseNotation(o.Notation)
	return output.Options{
		Notation:       notation,
		MaxLineLength:  o.MaxLineLength,
		SevenTagRoster: o.SevenTagRoster,
	}
}

// BoardOptions converts the settings to output.BoardOptions.
func (o *OutputConfig) BoardOptions() output.BoardOptions {
	return output.BoardOptions{NoColor: o.NoColor, Flip: o.Flip}
}
