// chesscore plays chess games between human and random players, runs
// self-play batches and counts move generation paths.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"

	"github.com/lgbarn/chesscore-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	log.SetFlags(0)
	log.SetPrefix("chesscore: ")

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	applyFlags(cfg, setFlags())
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if color.NoColor {
		cfg.Output.NoColor = true
	}
	log.SetOutput(cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdin); err != nil {
		stop()
		log.Fatal(err)
	}
}

// loadConfig reads the configuration file, or returns the defaults when
// no file is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.NewConfig(), nil
	}
	return config.Load(path)
}

// run picks the mode: perft when a depth is set, a self-play batch when
// more than one game is requested, otherwise a single game.
func run(ctx context.Context, cfg *config.Config, in io.Reader) error {
	if cfg.Play.Seed == 0 {
		cfg.Play.Seed = time.Now().UnixNano()
	}

	switch {
	case cfg.Perft.Depth > 0:
		return runPerft(ctx, cfg)
	case cfg.Arena.Games > 1:
		return runArena(ctx, cfg)
	default:
		return runGame(ctx, cfg, in)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess between human and random players.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  -perft N       count legal move paths to depth N\n")
	fmt.Fprintf(os.Stderr, "  -games N       play N self-play games on a worker pool\n")
	fmt.Fprintf(os.Stderr, "  (default)      play one game; human moves are read from stdin\n")
	fmt.Fprintf(os.Stderr, "\nHuman input:\n")
	fmt.Fprintf(os.Stderr, "  e2e4, e7e8n    a move in long algebraic notation\n")
	fmt.Fprintf(os.Stderr, "  moves          list the legal moves\n")
	fmt.Fprintf(os.Stderr, "  board          redraw the board\n")
	fmt.Fprintf(os.Stderr, "  quit           stop the game\n")
}
