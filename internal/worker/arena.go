package worker

import (
	"context"
	"fmt"
	"sort"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/player"
)

// ArenaConfig describes a batch of games between two automated strategies.
// A zero MaxPlies plays every game to its end.
type ArenaConfig struct {
	White    string
	Black    string
	FEN      string
	Games    int
	Seed     int64
	MaxPlies int
	Workers  int
	Tags     map[string]string

	// DuplicateBy selects what makes two games duplicates.
	DuplicateBy hashing.HashType

	// Logger receives progress lines; nil discards them.
	Logger func(...any)
}

// SelfPlay returns a ProcessFunc that plays one game per item between the
// configured strategies. The item seed drives White; Black gets seed+1.
func SelfPlay(cfg ArenaConfig) ProcessFunc {
	return func(ctx context.Context, item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index}

		white, err := player.New(cfg.White, item.Seed)
		if err != nil {
			result.Error = err
			return result
		}
		black, err := player.New(cfg.Black, item.Seed+1)
		if err != nil {
			result.Error = err
			return result
		}

		opts := []game.Option{
			game.WithNumber(item.Index + 1),
			game.WithMaxPlies(cfg.MaxPlies),
		}
		for name, value := range cfg.Tags {
			opts = append(opts, game.WithTag(name, value))
		}

		g, err := game.New(white, black, item.FEN, opts...)
		if err != nil {
			result.Error = err
			return result
		}
		result.Record, result.Error = g.Play(ctx)
		return result
	}
}

// RunArena plays cfg.Games games on a worker pool and returns the records
// in game order together with their tally. Games matching an earlier one
// under cfg.DuplicateBy are counted as duplicates. Only automated
// strategies can take part. The first game error stops the pool: games
// not yet started are skipped and the error is returned with whatever
// records were collected.
func RunArena(ctx context.Context, cfg ArenaConfig) ([]*chess.GameRecord, *game.Tally, error) {
	if cfg.White == player.HumanName || cfg.Black == player.HumanName {
		return nil, nil, errors.Wrapf(errors.ErrInvalidConfig, "arena needs automated players, got %s vs %s", cfg.White, cfg.Black)
	}
	if cfg.Games < 1 {
		return nil, nil, errors.Wrapf(errors.ErrInvalidConfig, "arena needs at least one game, got %d", cfg.Games)
	}

	pool := NewPool(ctx, SelfPlay(cfg),
		WithWorkers(cfg.Workers),
		WithBufferSize(cfg.Games))
	pool.Start()
	if cfg.Logger != nil {
		cfg.Logger(fmt.Sprintf("playing %d games on %d workers, seed %d", cfg.Games, pool.NumWorkers(), cfg.Seed))
	}

	go func() {
		for i := 0; i < cfg.Games && !pool.IsStopped(); i++ {
			item := WorkItem{
				Index: i,
				Seed:  cfg.Seed + int64(2*i),
				FEN:   cfg.FEN,
			}
			if !pool.Submit(item) {
				break
			}
		}
		pool.Close()
	}()

	var (
		results  []ProcessResult
		firstErr error
	)
	for result := range pool.Results() {
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
			pool.Stop()
		}
		results = append(results, result)
	}
	if firstErr == nil {
		firstErr = ctx.Err()
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	tally := game.NewTally()
	detector := hashing.NewDuplicateDetector(cfg.DuplicateBy, true)
	records := make([]*chess.GameRecord, 0, len(results))
	for _, result := range results {
		if result.Record == nil {
			continue
		}
		records = append(records, result.Record)
		tally.Add(result.Record)
		detector.CheckAndAdd(result.Record)
	}
	tally.Duplicates = detector.DuplicateCount()
	return records, tally, firstErr
}
