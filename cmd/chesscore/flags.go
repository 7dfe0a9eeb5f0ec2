// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chesscore-go/internal/config"
)

var (
	configFile = flag.String("config", "", "YAML configuration file; flags override its values")

	// Game options
	fen      = flag.String("fen", "", "Starting position in FEN (default: standard start)")
	white    = flag.String("white", "random", "White player: human or random")
	black    = flag.String("black", "random", "Black player: human or random")
	seed     = flag.Int64("seed", 0, "Seed for random players (0 = from the clock)")
	maxPlies = flag.Int("maxplies", 1000, "Stop a game after N plies (0 = no limit)")

	// Arena options
	games      = flag.Int("games", 1, "Number of self-play games")
	workers    = flag.Int("workers", 0, "Games played in parallel (0 = one per CPU)")
	duplicates = flag.String("dupes", "moves", "Count games as duplicates by: moves or position")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count move paths to depth N and exit")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")

	// Output options
	format     = flag.String("format", "text", "Output format: text, pgn, json")
	notation   = flag.String("notation", "san", "PGN move notation: san or uci")
	lineLength = flag.Int("w", 80, "Maximum PGN line length")
	sevenTag   = flag.Bool("7", false, "Output only the seven tag roster")
	noColor    = flag.Bool("nocolor", false, "Disable coloured boards")
	flip       = flag.Bool("flip", false, "Draw boards with Black at the bottom")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 results only, 1 summaries, 2 every ply")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags copies flag values into cfg. Without a config file every
// flag applies; with one, only the flags given on the command line do.
func applyFlags(cfg *config.Config, set map[string]bool) {
	use := func(name string) bool {
		return *configFile == "" || set[name]
	}

	b := config.BuilderFor(cfg)
	applyPlayFlags(b, use)
	applyArenaFlags(b, use)
	applyPerftFlags(b, use)
	applyOutputFlags(b, use)

	if use("v") {
		b.WithVerbosity(*verbosity)
	}
}

func applyPlayFlags(b *config.ConfigBuilder, use func(string) bool) {
	if use("fen") {
		b.WithFEN(*fen)
	}
	if use("white") {
		b.WithWhite(*white)
	}
	if use("black") {
		b.WithBlack(*black)
	}
	if use("seed") {
		b.WithSeed(*seed)
	}
	if use("maxplies") {
		b.WithMaxPlies(*maxPlies)
	}
}

func applyArenaFlags(b *config.ConfigBuilder, use func(string) bool) {
	if use("games") {
		b.WithGames(*games)
	}
	if use("workers") {
		b.WithWorkers(*workers)
	}
	if use("dupes") {
		b.WithDuplicates(*duplicates)
	}
}

func applyPerftFlags(b *config.ConfigBuilder, use func(string) bool) {
	if use("perft") {
		b.WithPerftDepth(*perftDepth)
	}
	if use("divide") {
		b.WithDivide(*divide)
	}
}

func applyOutputFlags(b *config.ConfigBuilder, use func(string) bool) {
	if use("format") {
		b.WithFormat(*format)
	}
	if use("notation") {
		b.WithNotation(*notation)
	}
	if use("w") {
		b.WithMaxLineLength(*lineLength)
	}
	if use("7") {
		b.WithSevenTagRoster(*sevenTag)
	}
	if use("nocolor") {
		b.WithNoColor(*noColor)
	}
	if use("flip") {
		b.WithFlip(*flip)
	}
}
