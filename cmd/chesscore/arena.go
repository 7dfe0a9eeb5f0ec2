package main

import (
	"context"
	"log"
	"runtime"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// runArena plays a batch of self-play games on a worker pool, writes every
// record and logs the tally.
func runArena(ctx context.Context, cfg *config.Config) error {
	workers := cfg.Arena.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	arena := worker.ArenaConfig{
		White:       cfg.Play.White,
		Black:       cfg.Play.Black,
		FEN:         cfg.Play.FEN,
		Games:       cfg.Arena.Games,
		Seed:        cfg.Play.Seed,
		MaxPlies:    cfg.Play.MaxPlies,
		Workers:     workers,
		DuplicateBy: cfg.Arena.DuplicateHash(),
	}
	if cfg.Verbosity > 0 {
		arena.Logger = log.Println
	}

	records, tally, runErr := worker.RunArena(ctx, arena)

	writer, err := output.NewGameWriter(cfg.Output.Format, cfg.OutputFile,
		cfg.Output.PGNOptions(), cfg.Output.BoardOptions())
	if err != nil {
		return err
	}
	for _, r := range records {
		if err := writer.WriteGame(r); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	if cfg.Verbosity > 0 && tally != nil {
		log.Println(output.TallyReport(tally))
	}
	return runErr
}
