package output

import (
	"io"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/game"
)

var printer = message.NewPrinter(language.English)

// PerftReport formats a node count with its rate, e.g.
// "perft(5) nodes=4,865,609 rate=1,203,112n/s (4.044s elapsed)".
func PerftReport(depth int, nodes uint64, elapsed time.Duration) string {
	rate := 0
	if secs := elapsed.Seconds(); secs > 0 {
		rate = int(float64(nodes) / secs)
	}
	return printer.Sprintf("perft(%d) nodes=%d rate=%dn/s (%.3fs elapsed)",
		depth, nodes, rate, elapsed.Seconds())
}

// WriteDivide writes one "uci: count" line per root move in UCI order,
// followed by the total.
func WriteDivide(w io.Writer, counts map[string]uint64) error {
	moves := make([]string, 0, len(counts))
	var total uint64
	for move, n := range counts {
		moves = append(moves, move)
		total += n
	}
	sort.Strings(moves)

	for _, move := range moves {
		if _, err := printer.Fprintf(w, "%s: %d\n", move, counts[move]); err != nil {
			return err
		}
	}
	_, err := printer.Fprintf(w, "moves=%d total=%d\n", len(moves), total)
	return err
}

// TallyReport summarises a series of games, e.g.
// "games=10 white=5.5 black=4.5 decisive=7 draws=2 unfinished=1 duplicates=0 plies=1,520".
func TallyReport(t *game.Tally) string {
	return printer.Sprintf("games=%d white=%.1f black=%.1f decisive=%d draws=%d unfinished=%d duplicates=%d plies=%d",
		t.Games, t.Points[chess.White], t.Points[chess.Black],
		t.Decisive(), t.Draws(), t.Unfinished, t.Duplicates, t.Plies)
}
