package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/player"
)

// runGame plays a single game and writes its record. Human moves are read
// one per line from in.
func runGame(ctx context.Context, cfg *config.Config, in io.Reader) error {
	white, err := player.New(cfg.Play.White, cfg.Play.Seed)
	if err != nil {
		return err
	}
	black, err := player.New(cfg.Play.Black, cfg.Play.Seed+1)
	if err != nil {
		return err
	}

	opts := []game.Option{game.WithMaxPlies(cfg.Play.MaxPlies)}
	if cfg.Verbosity >= 2 {
		opts = append(opts, game.WithLogger(log.Println))
	}
	g, err := game.New(white, black, cfg.Play.FEN, opts...)
	if err != nil {
		return err
	}

	var (
		record  *chess.GameRecord
		playErr error
	)
	if cfg.Play.HasHuman() {
		record, playErr = playInteractive(ctx, g, cfg, in)
	} else {
		record, playErr = g.Play(ctx)
	}

	writer, err := output.NewGameWriter(cfg.Output.Format, cfg.OutputFile,
		cfg.Output.PGNOptions(), cfg.Output.BoardOptions())
	if err != nil {
		return err
	}
	if err := writer.WriteGame(record); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	return playErr
}

// playInteractive alternates between reading human input and polling
// automated players until the game ends, the ply cap is hit, the input
// runs out or the user quits.
func playInteractive(ctx context.Context, g *game.Game, cfg *config.Config, in io.Reader) (*chess.GameRecord, error) {
	out := cfg.OutputFile
	scanner := bufio.NewScanner(in)
	redraw := true

	for !g.Status().IsTerminal() && !g.AtPlyLimit() {
		if err := ctx.Err(); err != nil {
			return g.Record(), err
		}

		mover := g.Position().ToMove()
		human, ok := g.Player(mover).(*player.Interactive)
		if !ok {
			if _, err := g.Update(); err != nil {
				return g.Record(), err
			}
			if ply, ok := g.LastPly(); ok {
				fmt.Fprintf(out, "%s plays %s\n", mover, ply.SAN)
			}
			redraw = true
			continue
		}

		if redraw {
			if err := drawBoard(out, g, cfg.Output.BoardOptions()); err != nil {
				return g.Record(), err
			}
			redraw = false
		}
		fmt.Fprintf(out, "%s to move: ", mover)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return g.Record(), scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return g.Record(), nil
		case "moves":
			fmt.Fprintln(out, strings.Join(legalUCI(g.LegalMoves()), " "))
			continue
		case "board":
			redraw = true
			continue
		}

		move, err := engine.ParseUCIMove(g.Position(), line)
		if err != nil {
			fmt.Fprintf(out, "illegal move: %v\n", err)
			continue
		}
		human.Submit(move)
		if _, err := g.Update(); err != nil {
			return g.Record(), err
		}
		redraw = true
	}

	if err := drawBoard(out, g, cfg.Output.BoardOptions()); err != nil {
		return g.Record(), err
	}
	return g.Record(), nil
}

// drawBoard renders the current position with the last move marked.
func drawBoard(w io.Writer, g *game.Game, opts output.BoardOptions) error {
	if ply, ok := g.LastPly(); ok {
		opts.Marks = []chess.Square{ply.Move.From, ply.Move.To}
	}
	return output.RenderBoard(w, g.Position(), opts)
}

func legalUCI(moves []chess.Move) []string {
	list := make([]string, len(moves))
	for i, m := range moves {
		list[i] = m.UCI()
	}
	sort.Strings(list)
	return list
}
