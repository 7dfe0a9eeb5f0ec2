// Package engine provides chess move generation, validation and board manipulation.
package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Position is the full game state: placement, side to move, castling
// rights, en passant target, move clocks and repetition history.
// A Position holds no external references and may be cloned freely.
type Position struct {
	board  chess.Board
	toMove chess.Colour

	// castling[colour][side] is true while that right is still held.
	// Rights are only ever switched off.
	castling [chess.NumColours][chess.NumCastleSides]bool

	// Square jumped over by the last double pawn push, if any.
	epTarget    chess.Square
	hasEPTarget bool

	// The half-move clock since the last pawn move or capture.
	halfmoveClock int

	// The current move number.
	fullmoveNumber int

	// Cached FEN of the current state.
	fen string

	// Occurrences of each canonical key (FEN without clocks).
	// Nil on scratch copies used for legality testing.
	history map[string]int
}

// NewInitialPosition creates a position with the standard starting setup.
func NewInitialPosition() *Position {
	p := &Position{
		toMove:         chess.White,
		fullmoveNumber: 1,
	}
	p.board.SetupInitialPosition()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		p.castling[colour][chess.Kingside] = true
		p.castling[colour][chess.Queenside] = true
	}
	p.refresh()
	p.history = map[string]int{p.CanonicalKey(): 1}
	return p
}

// ToMove returns the side to move.
func (p *Position) ToMove() chess.Colour {
	return p.toMove
}

// PieceAt returns the piece on the square, or chess.Empty.
// Off-board squares are reported as empty.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	if !sq.Valid() {
		return chess.Empty
	}
	return p.board.Get(sq)
}

// Board returns a copy of the placement grid.
func (p *Position) Board() chess.Board {
	return p.board
}

// EnumerateBoard returns every square with its piece, top row first.
func (p *Position) EnumerateBoard() []chess.Placement {
	return p.board.Enumerate()
}

// CanCastle reports whether the colour still holds the castling right.
func (p *Position) CanCastle(colour chess.Colour, side chess.CastleSide) bool {
	return p.castling[colour][side]
}

// EnPassantTarget returns the en passant target square, if any.
func (p *Position) EnPassantTarget() (chess.Square, bool) {
	return p.epTarget, p.hasEPTarget
}

// HalfmoveClock returns the number of half-moves since the last pawn move or capture.
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// FullmoveNumber returns the current move number.
func (p *Position) FullmoveNumber() int {
	return p.fullmoveNumber
}

// FEN returns the FEN string of the position.
func (p *Position) FEN() string {
	return p.fen
}

// String returns the FEN string of the position.
func (p *Position) String() string {
	return p.fen
}

// CanonicalKey returns the repetition key: the FEN without move clocks.
func (p *Position) CanonicalKey() string {
	return canonicalKey(p)
}

// RepetitionCount returns how often the canonical key has occurred.
func (p *Position) RepetitionCount(key string) int {
	return p.history[key]
}

// History returns a copy of the repetition history.
func (p *Position) History() map[string]int {
	out := make(map[string]int, len(p.history))
	for k, v := range p.history {
		out[k] = v
	}
	return out
}

// Clone creates a deep copy of the position, history included.
func (p *Position) Clone() *Position {
	c := p.scratch()
	c.history = p.History()
	return c
}

// scratch copies the position without its repetition history.
// It is used for hypothetical moves that never reach the history.
func (p *Position) scratch() *Position {
	c := *p
	c.history = nil
	return &c
}

// refresh recomputes the cached FEN string.
func (p *Position) refresh() {
	p.fen = positionToFEN(p)
}

// kingSquares returns the squares holding the colour's king(s).
func (p *Position) kingSquares(colour chess.Colour) []chess.Square {
	return p.board.Find(chess.Piece{Kind: chess.King, Colour: colour})
}
