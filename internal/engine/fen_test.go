package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestNewPositionFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *Position) bool {
				return p.PieceAt(chess.MustParseSquare("e1")) == chess.W(chess.King) &&
					p.PieceAt(chess.MustParseSquare("e8")) == chess.B(chess.King) &&
					p.PieceAt(chess.MustParseSquare("e2")) == chess.W(chess.Pawn) &&
					p.PieceAt(chess.MustParseSquare("a8")) == chess.B(chess.Rook) &&
					p.ToMove() == chess.White &&
					p.CanCastle(chess.White, chess.Kingside) &&
					p.CanCastle(chess.Black, chess.Queenside)
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *Position) bool {
				ep, ok := p.EnPassantTarget()
				return p.PieceAt(chess.MustParseSquare("e4")) == chess.W(chess.Pawn) &&
					p.PieceAt(chess.MustParseSquare("e2")).IsEmpty() &&
					p.ToMove() == chess.Black &&
					ok && ep.String() == "e3"
			},
		},
		{
			name: "partial castling rights and clocks",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 12 40",
			checkFn: func(p *Position) bool {
				return p.CanCastle(chess.White, chess.Kingside) &&
					!p.CanCastle(chess.White, chess.Queenside) &&
					!p.CanCastle(chess.Black, chess.Kingside) &&
					p.CanCastle(chess.Black, chess.Queenside) &&
					p.HalfmoveClock() == 12 &&
					p.FullmoveNumber() == 40
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(p *Position) bool {
				for _, c := range []chess.Colour{chess.White, chess.Black} {
					if p.CanCastle(c, chess.Kingside) || p.CanCastle(c, chess.Queenside) {
						return false
					}
				}
				return true
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := NewPositionFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewPositionFromFEN(%q) error: %v", tt.fen, err)
			}
			if !tt.checkFn(p) {
				t.Errorf("NewPositionFromFEN(%q) position check failed", tt.fen)
			}
		})
	}
}

func TestNewPositionFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantField string
	}{
		{"empty string", "", ""},
		{"too few fields", "8/8/8/8/8/8/8/8 w - -", ""},
		{"too many fields", InitialFEN + " extra", ""},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"long rank", "9/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"short rank", "7/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"overflowing rank", "rnbqkbnrp/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"adjacent digits", "44/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"bad piece letter", "4x3/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1", "side"},
		{"castling out of order", "r3k2r/8/8/8/8/8/8/R3K2R w QK - 0 1", "castling"},
		{"castling duplicate", "r3k2r/8/8/8/8/8/8/R3K2R w KK - 0 1", "castling"},
		{"castling bad letter", "r3k2r/8/8/8/8/8/8/R3K2R w X - 0 1", "castling"},
		{"bad en passant", "4k3/8/8/8/8/8/8/4K3 w - e9 0 1", "en-passant"},
		{"negative clock", "4k3/8/8/8/8/8/8/4K3 w - - -1 1", "halfmove clock"},
		{"signed clock", "4k3/8/8/8/8/8/8/4K3 w - - +1 1", "halfmove clock"},
		{"bad fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 x", "fullmove number"},
		{"leading zero clock", "4k3/8/8/8/8/8/8/4K3 w - - 00 1", "halfmove clock"},
		{"leading zero fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 01", "fullmove number"},
		{"double space", "4k3/8/8/8/8/8/8/4K3 w -  - 0 1", ""},
		{"trailing space", "4k3/8/8/8/8/8/8/4K3 w - - 0 1 ", ""},
		{"tab separator", "4k3/8/8/8/8/8/8/4K3\tw - - 0 1", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := NewPositionFromFEN(tt.fen)
			if p != nil {
				t.Errorf("NewPositionFromFEN(%q) returned a position alongside the error", tt.fen)
			}
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)

			var fenErr *errors.FENError
			if !errors.As(err, &fenErr) {
				t.Fatalf("error %v is not a *FENError", err)
			}
			testutil.AssertEqual(t, fenErr.Field, tt.wantField)
		})
	}
}

func TestFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 b - - 99 120",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 3 7",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			p := MustPositionFromFEN(fen)
			testutil.AssertEqual(t, p.FEN(), fen)
			testutil.AssertEqual(t, p.String(), fen)

			again := MustPositionFromFEN(p.FEN())
			testutil.AssertEqual(t, again.Board(), p.Board())
			testutil.AssertEqual(t, again.CanonicalKey(), p.CanonicalKey())
		})
	}
}

func TestFEN_RoundTripAfterMoves(t *testing.T) {
	p := NewInitialPosition()
	for _, uci := range []string{"e2e4", "c7c5", "g1f3", "d7d6", "f1b5"} {
		move, err := ParseUCIMove(p, uci)
		if err != nil {
			t.Fatalf("ParseUCIMove(%q) error: %v", uci, err)
		}
		p.ExecuteMove(move)

		again := MustPositionFromFEN(p.FEN())
		testutil.AssertEqual(t, again.FEN(), p.FEN(), "after %s", uci)
		testutil.AssertEqual(t, again.Board(), p.Board(), "after %s", uci)
	}
	testutil.AssertEqual(t, p.FEN(), "rnbqkbnr/pp2pppp/3p4/1Bp5/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 1 3")
}

func TestCanonicalKey(t *testing.T) {
	p := MustPositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 42 80")
	testutil.AssertEqual(t, p.CanonicalKey(), "4k3/8/8/8/8/8/8/4K3 w - -")
	testutil.AssertEqual(t, p.RepetitionCount(p.CanonicalKey()), 1)
}

func TestMustPositionFromFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustPositionFromFEN did not panic on bad input")
		}
	}()
	MustPositionFromFEN("not a fen")
}
