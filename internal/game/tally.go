package game

import "github.com/lgbarn/chesscore-go/internal/chess"

// Tally keeps the score over a series of games. A win is worth one point,
// a draw half a point to each side; unfinished and invalid games score
// nothing.
type Tally struct {
	Games      int
	Plies      int
	Unfinished int
	Duplicates int
	ByStatus   map[chess.Status]int
	Points     [chess.NumColours]float64
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{ByStatus: make(map[chess.Status]int)}
}

// Add records one finished game.
func (t *Tally) Add(r *chess.GameRecord) {
	t.Games++
	t.Plies += r.PlyCount()
	t.ByStatus[r.Status]++

	switch {
	case r.Status == chess.WhiteWins:
		t.Points[chess.White]++
	case r.Status == chess.BlackWins:
		t.Points[chess.Black]++
	case r.Status.IsDraw():
		t.Points[chess.White] += 0.5
		t.Points[chess.Black] += 0.5
	default:
		t.Unfinished++
	}
}

// Decisive returns the number of games won by either side.
func (t *Tally) Decisive() int {
	return t.ByStatus[chess.WhiteWins] + t.ByStatus[chess.BlackWins]
}

// Draws returns the number of drawn games.
func (t *Tally) Draws() int {
	n := 0
	for status, count := range t.ByStatus {
		if status.IsDraw() {
			n += count
		}
	}
	return n
}
