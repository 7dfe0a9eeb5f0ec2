package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// UCIList returns the long algebraic text of each move, sorted.
func UCIList(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.UCI())
	}
	sort.Strings(out)
	return out
}

// AssertMoveSet fails unless the moves are exactly the given UCI strings,
// in any order.
func AssertMoveSet(t testing.TB, got []chess.Move, want ...string) {
	t.Helper()
	if want == nil {
		want = []string{}
	}
	less := func(a, b string) bool { return a < b }
	if diff := cmp.Diff(want, UCIList(got), cmpopts.SortSlices(less)); diff != "" {
		t.Errorf("move set mismatch (-want +got):\n%s", diff)
	}
}

// FindMove returns the move with the given UCI text, failing the test if
// there is none.
func FindMove(t testing.TB, moves []chess.Move, uci string) chess.Move {
	t.Helper()
	for _, m := range moves {
		if m.UCI() == uci {
			return m
		}
	}
	t.Fatalf("move %s not found in %v", uci, UCIList(moves))
	return chess.Move{}
}
