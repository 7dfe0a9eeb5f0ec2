package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// IsSquareAttacked returns true if any piece of byColour has sq within its
// attack geometry. Sliding attacks stop at the first obstruction, exactly
// as capture generation does.
func (p *Position) IsSquareAttacked(sq chess.Square, byColour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			piece := p.board.Get(from)
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			hit := p.walkAttacks(from, piece, func(to chess.Square) bool {
				return to == sq
			})
			if hit {
				return true
			}
		}
	}
	return false
}

// InCheck returns true if the given colour's king is attacked.
// A colour without a king is never in check.
func (p *Position) InCheck(colour chess.Colour) bool {
	for _, king := range p.kingSquares(colour) {
		if p.IsSquareAttacked(king, colour.Opposite()) {
			return true
		}
	}
	return false
}
