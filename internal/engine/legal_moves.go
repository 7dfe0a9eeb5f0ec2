package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// LegalMoves returns every legal move for the given colour.
func (p *Position) LegalMoves(colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			piece := p.board.Get(from)
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			moves = p.appendLegal(moves, from, piece)
		}
	}
	return moves
}

// LegalMovesFrom returns the legal moves of the piece on sq.
// Asking about an empty square is an error: check PieceAt first.
func (p *Position) LegalMovesFrom(sq chess.Square) ([]chess.Move, error) {
	piece, err := p.occupant(sq)
	if err != nil {
		return nil, err
	}
	return p.appendLegal(nil, sq, piece), nil
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (p *Position) HasLegalMoves(colour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			piece := p.board.Get(from)
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			for _, move := range p.pseudoLegalMoves(from, piece) {
				if !p.MovesIntoCheck(move) {
					return true
				}
			}
		}
	}
	return false
}

// appendLegal appends the pseudo-legal moves of a piece that keep its own
// king safe.
func (p *Position) appendLegal(moves []chess.Move, from chess.Square, piece chess.Piece) []chess.Move {
	for _, move := range p.pseudoLegalMoves(from, piece) {
		if !p.MovesIntoCheck(move) {
			moves = append(moves, move)
		}
	}
	return moves
}

// MovesIntoCheck reports whether executing the move would leave the
// mover's own king attacked. The move is played on a copy of the position.
func (p *Position) MovesIntoCheck(move chess.Move) bool {
	mover := p.board.Get(move.From)
	if mover.IsEmpty() {
		return false
	}
	trial := p.scratch()
	trial.applyMove(move)
	return trial.InCheck(mover.Colour)
}

// IsLegal reports whether the move appears in the legal moves of the
// piece on its origin square.
func (p *Position) IsLegal(move chess.Move) bool {
	moves, err := p.LegalMovesFrom(move.From)
	if err != nil {
		return false
	}
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}
