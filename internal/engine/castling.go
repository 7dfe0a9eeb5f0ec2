package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// castleSides lists the wings in the order castles are generated.
var castleSides = [...]chess.CastleSide{chess.Kingside, chess.Queenside}

// appendCastles adds castling candidates for a king. A castle is emitted
// when the right is held, king and rook stand on their home squares, the
// squares between them are empty, and the king neither starts in, passes
// through, nor lands on an attacked square.
func (p *Position) appendCastles(moves []chess.Move, from chess.Square, king chess.Piece) []chess.Move {
	colour := king.Colour
	if from != chess.KingHome(colour) {
		return moves
	}

	opponent := colour.Opposite()
	for _, side := range castleSides {
		if !p.castling[colour][side] {
			continue
		}

		rookSq := chess.RookHome(colour, side)
		if !p.board.Get(rookSq).Is(chess.Rook, colour) {
			continue
		}
		if !p.pathClear(from, rookSq) {
			continue
		}
		if p.IsSquareAttacked(from, opponent) {
			continue
		}

		step := chess.Vector{DRow: 0, DCol: chess.CastleDirection(side)}
		if p.kingStepAttacked(from, from.Add(step, 1), king) ||
			p.kingStepAttacked(from, from.Add(step, 2), king) {
			continue
		}

		moves = append(moves, chess.Move{From: from, To: from.Add(step, 2), Kind: chess.CastleMove})
	}
	return moves
}

// pathClear reports whether every square strictly between two squares on
// the same row is empty.
func (p *Position) pathClear(from, to chess.Square) bool {
	dir := chess.Vector{DRow: 0, DCol: sign(to.Col - from.Col)}
	for i := 1; i < abs(to.Col-from.Col); i++ {
		if !p.board.IsEmpty(from.Add(dir, i)) {
			return false
		}
	}
	return true
}

// kingStepAttacked builds a hypothetical position with the king moved from
// from to to and reports whether the king would be attacked there.
func (p *Position) kingStepAttacked(from, to chess.Square, king chess.Piece) bool {
	trial := p.scratch()
	trial.board.Clear(from)
	trial.board.Set(to, king)
	return trial.IsSquareAttacked(to, king.Colour.Opposite())
}

// moveCastlingRook relocates the rook of a castling move to the square
// beside the king's destination, on the inner side.
func (p *Position) moveCastlingRook(move chess.Move, colour chess.Colour) {
	side := move.CastleSide()
	rookFrom := chess.RookHome(colour, side)
	rookTo := chess.Sq(move.To.Row, move.To.Col-chess.CastleDirection(side))

	rook := p.board.Get(rookFrom)
	p.board.Clear(rookFrom)
	p.board.Set(rookTo, rook)
}

// updateCastlingRights removes rights when a king or rook leaves home, or
// when a rook is captured on its home square.
func (p *Position) updateCastlingRights(moved chess.Piece, move chess.Move, captured chess.Piece) {
	switch moved.Kind {
	case chess.King:
		p.castling[moved.Colour][chess.Kingside] = false
		p.castling[moved.Colour][chess.Queenside] = false
	case chess.Rook:
		p.clearRookRight(moved.Colour, move.From)
	}
	if captured.Kind == chess.Rook {
		p.clearRookRight(captured.Colour, move.To)
	}
}

// clearRookRight clears the right for the wing whose rook home is sq.
func (p *Position) clearRookRight(colour chess.Colour, sq chess.Square) {
	for _, side := range castleSides {
		if sq == chess.RookHome(colour, side) {
			p.castling[colour][side] = false
		}
	}
}
