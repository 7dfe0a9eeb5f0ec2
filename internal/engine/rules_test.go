package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want chess.Status
	}{
		{"initial position", InitialFEN, chess.InPlay},
		{"before back rank mate", "6k1/5ppp/8/8/8/8/8/R5K1 b - - 0 1", chess.InPlay},
		{"white mated by defended queen", "2k5/8/8/8/8/5b2/6q1/7K w - - 0 1", chess.BlackWins},
		{"black mated", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", chess.WhiteWins},
		{"stalemate", "2k5/8/8/8/8/8/5q2/7K w - - 8 13", chess.Stalemate},
		{"fifty move draw", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", chess.FiftyMoveDraw},
		{"fifty move rule outranks mate", "2k5/8/8/8/8/5b2/6q1/7K w - - 100 80", chess.FiftyMoveDraw},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", chess.InsufficientMaterialDraw},
		{"king and bishop", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", chess.InsufficientMaterialDraw},
		{"king and knight", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", chess.InsufficientMaterialDraw},
		{"two kings no black king", "8/8/8/8/8/8/8/3KK3 w - - 0 1", chess.Invalid},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1", chess.Invalid},
		{"pawn on last rank", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1", chess.Invalid},
		{"pawn on first rank", "4k3/8/8/8/8/8/8/p3K3 w - - 0 1", chess.Invalid},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4K2q b - - 0 1", chess.Invalid},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := MustPositionFromFEN(tt.fen)
			testutil.AssertEqual(t, p.Status(), tt.want)
		})
	}
}

func TestCheckmate_NoLegalMovesAndInCheck(t *testing.T) {
	p := MustPositionFromFEN("2k5/8/8/8/8/5b2/6q1/7K w - - 0 1")
	testutil.AssertEqual(t, len(p.LegalMoves(chess.White)), 0)
	testutil.AssertTrue(t, p.InCheck(chess.White))
	testutil.AssertFalse(t, p.HasLegalMoves(chess.White))
}

func TestUndefendedQueenCanBeTaken(t *testing.T) {
	// Without the bishop the checking queen on g2 is simply captured.
	p := MustPositionFromFEN("2k5/8/8/8/8/8/6q1/7K w - - 0 1")
	testutil.AssertTrue(t, p.InCheck(chess.White))
	testutil.AssertMoveSet(t, p.LegalMoves(chess.White), "h1g2")
	testutil.AssertEqual(t, p.Status(), chess.InPlay)
}

func TestStalemate_NotInCheck(t *testing.T) {
	p := MustPositionFromFEN("2k5/8/8/8/8/8/5q2/7K w - - 8 13")
	testutil.AssertEqual(t, len(p.LegalMoves(chess.White)), 0)
	testutil.AssertFalse(t, p.InCheck(chess.White))
}

func TestFiftyMoveDraw_AfterQuietMove(t *testing.T) {
	p := MustPositionFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 99 80")
	testutil.AssertEqual(t, p.Status(), chess.InPlay)

	play(t, p, "a1a2")
	testutil.AssertEqual(t, p.HalfmoveClock(), FiftyMoveLimit)
	testutil.AssertEqual(t, p.Status(), chess.FiftyMoveDraw)
}

func TestThreefoldRepetition(t *testing.T) {
	p := NewInitialPosition()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	play(t, p, shuffle...)
	play(t, p, shuffle[:3]...)
	testutil.AssertEqual(t, p.Status(), chess.InPlay)
	testutil.AssertFalse(t, p.HasThreefoldRepetition())

	play(t, p, shuffle[3])
	testutil.AssertEqual(t, p.RepetitionCount(p.CanonicalKey()), RepetitionLimit)
	testutil.AssertEqual(t, p.Status(), chess.ThreefoldDraw)
}

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		// Same-coloured bishops are not recognised as a dead draw.
		{"K+B vs K+B same colour", "5b2/8/8/8/8/8/8/2B1K2k w - - 0 1", false},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+N+N vs K", "4k3/8/8/8/8/8/8/3NKN2 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := MustPositionFromFEN(tt.fen)
			testutil.AssertEqual(t, p.HasInsufficientMaterial(), tt.want)
		})
	}
}

func TestMaterial(t *testing.T) {
	p := NewInitialPosition()
	want := [chess.NumColours]int{}
	want[chess.White] = 39
	want[chess.Black] = 39
	testutil.AssertEqual(t, p.Material(), want)

	p = MustPositionFromFEN("4k3/8/8/8/8/8/8/3QKN2 w - - 0 1")
	want[chess.White] = 12
	want[chess.Black] = 0
	testutil.AssertEqual(t, p.Material(), want)
}

func TestValidate(t *testing.T) {
	testutil.AssertNoError(t, NewInitialPosition().Validate())

	err := MustPositionFromFEN("8/8/8/8/8/8/8/4K3 w - - 0 1").Validate()
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPosition)
	testutil.AssertContains(t, err.Error(), "0 kings")
}
