package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/output"
)

// runPerft counts legal move paths from the configured position and
// prints the total, preceded by the per-move split when requested.
func runPerft(ctx context.Context, cfg *config.Config) error {
	fen := cfg.Play.FEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}

	depth := cfg.Perft.Depth
	start := time.Now()

	counts, err := engine.Divide(ctx, pos, depth)
	if err != nil {
		return err
	}
	var nodes uint64
	for _, n := range counts {
		nodes += n
	}
	elapsed := time.Since(start)

	if cfg.Perft.Divide {
		if err := output.WriteDivide(cfg.OutputFile, counts); err != nil {
			return err
		}
	}
	if cfg.Verbosity > 0 {
		_, err = fmt.Fprintln(cfg.OutputFile, output.PerftReport(depth, nodes, elapsed))
	} else {
		_, err = fmt.Fprintln(cfg.OutputFile, nodes)
	}
	return err
}
