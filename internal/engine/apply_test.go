package engine

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

// play finds each UCI move among the legal moves and executes it.
func play(t *testing.T, p *Position, ucis ...string) {
	t.Helper()
	for _, uci := range ucis {
		move := testutil.FindMove(t, p.LegalMoves(p.ToMove()), uci)
		p.ExecuteMove(move)
	}
}

func TestExecuteMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		moves   []string
		wantFEN string
	}{
		{
			name:    "white kingside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			moves:   []string{"e1g1"},
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b - - 1 1",
		},
		{
			name:    "white queenside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			moves:   []string{"e1c1"},
			wantFEN: "r3k2r/8/8/8/8/8/8/2KR3R b - - 1 1",
		},
		{
			name:    "black kingside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b kq - 0 1",
			moves:   []string{"e8g8"},
			wantFEN: "r4rk1/8/8/8/8/8/8/R3K2R w - - 1 2",
		},
		{
			name:    "black queenside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 4 9",
			moves:   []string{"e8c8"},
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 5 10",
		},
		{
			name:    "rook move clears one right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:   []string{"h1h2"},
			wantFEN: "r3k2r/8/8/8/8/8/7R/R3K3 b Qkq - 1 1",
		},
		{
			name:    "king move clears both rights",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:   []string{"e1e2"},
			wantFEN: "r3k2r/8/8/8/8/8/4K3/R6R b kq - 1 1",
		},
		{
			name:    "capturing a rook on its home square clears its right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 7 1",
			moves:   []string{"a1a8"},
			wantFEN: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:    "double push sets en passant target",
			fen:     InitialFEN,
			moves:   []string{"e2e4"},
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "next move clears en passant target",
			fen:     InitialFEN,
			moves:   []string{"e2e4", "g8f6"},
			wantFEN: "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2",
		},
		{
			name:    "en passant capture removes the passed pawn",
			fen:     "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
			moves:   []string{"e5d6"},
			wantFEN: "4k3/8/3P4/8/8/8/8/4K3 b - - 0 2",
		},
		{
			name:    "black en passant capture",
			fen:     "4k3/8/8/8/3Pp3/8/8/4K3 b - d3 0 1",
			moves:   []string{"e4d3"},
			wantFEN: "4k3/8/8/8/8/3p4/8/4K3 w - - 0 2",
		},
		{
			name:    "underpromotion by push",
			fen:     "k7/4P3/8/8/8/8/8/4K3 w - - 5 1",
			moves:   []string{"e7e8n"},
			wantFEN: "k3N3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:    "promotion by capture",
			fen:     "3rk3/4P3/8/8/8/8/8/K7 w - - 0 1",
			moves:   []string{"e7d8q"},
			wantFEN: "3Qk3/8/8/8/8/8/8/K7 b - - 0 1",
		},
		{
			name:    "black promotion",
			fen:     "4k3/8/8/8/8/8/p7/4K3 b - - 0 1",
			moves:   []string{"a2a1r"},
			wantFEN: "4k3/8/8/8/8/8/8/r3K3 w - - 0 2",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := MustPositionFromFEN(tt.fen)
			play(t, p, tt.moves...)
			testutil.AssertEqual(t, p.FEN(), tt.wantFEN)
		})
	}
}

func TestExecuteMove_PromotionDefaultsToQueen(t *testing.T) {
	p := MustPositionFromFEN("k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	e7, e8 := chess.MustParseSquare("e7"), chess.MustParseSquare("e8")

	p.ExecuteMove(chess.Move{From: e7, To: e8, Kind: chess.PromotionMove})

	testutil.AssertEqual(t, p.PieceAt(e8), chess.W(chess.Queen))
	testutil.AssertTrue(t, p.PieceAt(e7).IsEmpty(), "origin square left empty")
	board := p.Board()
	testutil.AssertEqual(t, board.Count(chess.W(chess.Pawn)), 0)
}

func TestExecuteMove_PawnReachingLastRankPromotes(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    chess.Move
		wantFEN string
	}{
		{
			name:    "quiet push",
			fen:     "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move:    chess.Move{From: chess.MustParseSquare("a7"), To: chess.MustParseSquare("a8"), Kind: chess.QuietMove},
			wantFEN: "Q3k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name: "capture with a chosen piece",
			fen:  "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move: chess.Move{
				From: chess.MustParseSquare("a7"), To: chess.MustParseSquare("b8"),
				Kind: chess.CaptureMove, Captured: chess.Rook, Promotion: chess.Knight,
			},
			wantFEN: "1N2k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:    "black quiet push",
			fen:     "4k3/8/8/8/8/8/7p/K7 b - - 0 1",
			move:    chess.Move{From: chess.MustParseSquare("h2"), To: chess.MustParseSquare("h1"), Kind: chess.QuietMove},
			wantFEN: "4k3/8/8/8/8/8/8/K6q w - - 0 2",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := MustPositionFromFEN(tt.fen)
			p.ExecuteMove(tt.move)
			testutil.AssertEqual(t, p.FEN(), tt.wantFEN)
			testutil.AssertTrue(t, p.Status() != chess.Invalid, "promoted position is valid")
		})
	}
}

func TestExecuteMove_RecordsHistory(t *testing.T) {
	p := NewInitialPosition()
	start := p.CanonicalKey()

	play(t, p, "g1f3", "g8f6", "f3g1", "f6g8")

	testutil.AssertEqual(t, p.CanonicalKey(), start)
	testutil.AssertEqual(t, p.RepetitionCount(start), 2)
	testutil.AssertEqual(t, len(p.History()), 4)
}

func TestClone_IsIndependent(t *testing.T) {
	p := NewInitialPosition()
	c := p.Clone()
	play(t, c, "e2e4")

	testutil.AssertEqual(t, p.FEN(), InitialFEN)
	testutil.AssertEqual(t, len(p.History()), 1)
	testutil.AssertEqual(t, len(c.History()), 2)
}

func TestEnumerateBoard(t *testing.T) {
	p := MustPositionFromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	placements := p.EnumerateBoard()
	testutil.AssertEqual(t, len(placements), chess.BoardSize*chess.BoardSize)
	testutil.AssertEqual(t, placements[0].Square, chess.MustParseSquare("a8"))

	occupied := map[string]chess.Piece{}
	for _, pl := range placements {
		if !pl.Piece.IsEmpty() {
			occupied[pl.Square.String()] = pl.Piece
		}
	}
	testutil.AssertEqual(t, occupied, map[string]chess.Piece{
		"e8": chess.B(chess.King),
		"e1": chess.W(chess.King),
		"h1": chess.W(chess.Rook),
	})
}

// TestRandomPlayouts checks the en passant window and castling right
// monotonicity over long random games.
func TestRandomPlayouts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for game := 0; game < 8; game++ {
		p := NewInitialPosition()
		for ply := 0; ply < 200 && p.Status() == chess.InPlay; ply++ {
			var before [chess.NumColours][chess.NumCastleSides]bool
			for c := range before {
				for s := range before[c] {
					before[c][s] = p.CanCastle(chess.Colour(c), chess.CastleSide(s))
				}
			}

			moves := p.LegalMoves(p.ToMove())
			move := moves[rng.Intn(len(moves))]
			p.ExecuteMove(move)

			_, hasEP := p.EnPassantTarget()
			testutil.AssertEqual(t, hasEP, move.Kind == chess.DoublePawnPush,
				"game %d ply %d: en passant target after %s", game, ply, move)

			for c := range before {
				for s := range before[c] {
					if !before[c][s] && p.CanCastle(chess.Colour(c), chess.CastleSide(s)) {
						t.Fatalf("game %d ply %d: castling right %d/%d came back after %s", game, ply, c, s, move)
					}
				}
			}

			testutil.AssertEqual(t, MustPositionFromFEN(p.FEN()).FEN(), p.FEN())
			if err := p.Validate(); err != nil {
				t.Fatalf("game %d ply %d: %v", game, ply, err)
			}
		}
	}
}
