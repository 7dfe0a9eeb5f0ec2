package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

const (
	// FiftyMoveLimit is the half-move clock value that draws the game.
	FiftyMoveLimit = 100

	// RepetitionLimit is the number of occurrences of a state that draws the game.
	RepetitionLimit = 3

	// MatingMaterial is the smallest combined non-king material, with no
	// pawns on the board, that is not treated as a dead draw.
	MatingMaterial = 4
)

// Status evaluates the position. Conditions are checked in priority order:
// invalid setup, the fifty-move rule, checkmate or stalemate, threefold
// repetition and insufficient material. A position matching none is in play.
func (p *Position) Status() chess.Status {
	if p.Validate() != nil {
		return chess.Invalid
	}

	if p.halfmoveClock >= FiftyMoveLimit {
		return chess.FiftyMoveDraw
	}

	if !p.HasLegalMoves(p.toMove) {
		if !p.InCheck(p.toMove) {
			return chess.Stalemate
		}
		if p.toMove == chess.White {
			return chess.BlackWins
		}
		return chess.WhiteWins
	}

	if p.HasThreefoldRepetition() {
		return chess.ThreefoldDraw
	}

	if p.HasInsufficientMaterial() {
		return chess.InsufficientMaterialDraw
	}

	return chess.InPlay
}

// Validate checks the structural invariants of the position: exactly one
// king per colour, no pawn on the first or last row, and the side not to
// move is not in check. The error wraps errors.ErrInvalidPosition.
func (p *Position) Validate() error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := p.board.Count(chess.Piece{Kind: chess.King, Colour: colour}); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrInvalidPosition)
		}
	}

	for col := 0; col < chess.BoardSize; col++ {
		for _, row := range []int{0, chess.LastRow} {
			sq := chess.Sq(row, col)
			if p.board.Get(sq).Kind == chess.Pawn {
				return fmt.Errorf("pawn on %s: %w", sq, errors.ErrInvalidPosition)
			}
		}
	}

	if p.InCheck(p.toMove.Opposite()) {
		return fmt.Errorf("%s is in check but not to move: %w", p.toMove.Opposite(), errors.ErrInvalidPosition)
	}
	return nil
}

// Material returns the summed non-king piece values per colour,
// indexed by chess.Colour.
func (p *Position) Material() [chess.NumColours]int {
	var total [chess.NumColours]int
	for _, pl := range p.board.Enumerate() {
		if !pl.Piece.IsEmpty() {
			total[pl.Piece.Colour] += pl.Piece.Kind.Value()
		}
	}
	return total
}

// HasInsufficientMaterial returns true if no pawns remain and the combined
// non-king material of both sides is below MatingMaterial.
// Same-coloured bishop endings are not recognised.
func (p *Position) HasInsufficientMaterial() bool {
	if p.board.Count(chess.W(chess.Pawn))+p.board.Count(chess.B(chess.Pawn)) > 0 {
		return false
	}
	material := p.Material()
	return material[chess.White]+material[chess.Black] < MatingMaterial
}

// HasThreefoldRepetition returns true if any state in the history has
// occurred RepetitionLimit times or more.
func (p *Position) HasThreefoldRepetition() bool {
	for _, n := range p.history {
		if n >= RepetitionLimit {
			return true
		}
	}
	return false
}
