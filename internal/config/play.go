package config

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/player"
)

// PlayConfig holds settings for a single game.
type PlayConfig struct {
	// FEN is the starting position; empty means the standard start.
	FEN string `yaml:"fen"`

	// White and Black name the strategies, "human" or "random".
	White string `yaml:"white"`
	Black string `yaml:"black"`

	// Seed for random players. Zero picks a seed from the clock.
	Seed int64 `yaml:"seed"`

	// MaxPlies stops a game that has not ended; zero means no cap.
	MaxPlies int `yaml:"maxPlies"`
}

// NewPlayConfig creates a PlayConfig for a random self-play game.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		White:    player.RandomName,
		Black:    player.RandomName,
		MaxPlies: game.DefaultMaxPlies,
	}
}

// HasHuman reports whether either side is played interactively.
func (p *PlayConfig) HasHuman() bool {
	return p.White == player.HumanName || p.Black == player.HumanName
}

// Validate checks player names, the ply cap and the starting FEN.
func (p *PlayConfig) Validate() error {
	for _, name := range []string{p.White, p.Black} {
		if name != player.HumanName && name != player.RandomName {
			return fmt.Errorf("unknown player %q: %w", name, errors.ErrInvalidConfig)
		}
	}
	if p.MaxPlies < 0 {
		return fmt.Errorf("max plies %d is negative: %w", p.MaxPlies, errors.ErrInvalidConfig)
	}
	if p.FEN != "" {
		if _, err := engine.NewPositionFromFEN(p.FEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// ArenaConfig holds settings for a batch of self-play games.
type ArenaConfig struct {
	// Games to play. More than one requires automated players.
	Games int `yaml:"games"`

	// Workers playing in parallel; zero means one per CPU.
	Workers int `yaml:"workers"`

	// Duplicates names what makes two games the same: "moves" or "position".
	Duplicates string `yaml:"duplicates"`
}

// NewArenaConfig creates an ArenaConfig for a single game.
func NewArenaConfig() *ArenaConfig {
	return &ArenaConfig{Games: 1, Duplicates: "moves"}
}

// Validate checks the game and worker counts and the duplicate mode.
func (a *ArenaConfig) Validate() error {
	if a.Games < 1 {
		return fmt.Errorf("games %d must be at least 1: %w", a.Games, errors.ErrInvalidConfig)
	}
	if a.Workers < 0 {
		return fmt.Errorf("workers %d is negative: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if _, ok := hashing.ParseHashType(a.Duplicates); !ok {
		return fmt.Errorf("unknown duplicate mode %q: %w", a.Duplicates, errors.ErrInvalidConfig)
	}
	return nil
}

// DuplicateHash returns the hash type named by Duplicates.
func (a *ArenaConfig) DuplicateHash() hashing.HashType {
	ht, _ := hashing.ParseHashType(a.Duplicates)
	return ht
}

// PerftConfig holds settings for move generation counts.
type PerftConfig struct {
	// Depth of the count; zero disables perft.
	Depth int `yaml:"depth"`

	// Divide prints the count below each root move.
	Divide bool `yaml:"divide"`
}

// NewPerftConfig creates a disabled PerftConfig.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{}
}

// MaxPerftDepth bounds the depth accepted from the command line.
const MaxPerftDepth = 8

// Validate checks the depth range.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	return nil
}
