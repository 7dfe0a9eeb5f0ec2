package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// appendDoublePush adds the initial two-square pawn push. Eligibility comes
// from the pawn's row compared with its home row, never from move history.
func (p *Position) appendDoublePush(moves []chess.Move, from chess.Square, pawn chess.Piece) []chess.Move {
	if from.Row != chess.PawnHomeRow(pawn.Colour) {
		return moves
	}

	dir := chess.PawnPushDirection(pawn.Colour)
	middle := from.Add(dir, 1)
	to := from.Add(dir, chess.PawnSpecialStep)
	if !to.Valid() || !p.board.IsEmpty(middle) || !p.board.IsEmpty(to) {
		return moves
	}
	return append(moves, chess.Move{From: from, To: to, Kind: chess.DoublePawnPush})
}

// isEnPassantTarget reports whether a pawn of the given colour may capture
// en passant onto sq: sq is the target, it is that colour's turn, and the
// double-pushed pawn is still behind the target.
func (p *Position) isEnPassantTarget(sq chess.Square, colour chess.Colour) bool {
	if !p.hasEPTarget || sq != p.epTarget || colour != p.toMove {
		return false
	}
	victim := enPassantVictim(sq, colour)
	return victim.Valid() && p.board.Get(victim).Is(chess.Pawn, colour.Opposite())
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture landing on target: one row behind it from the mover's view.
func enPassantVictim(target chess.Square, mover chess.Colour) chess.Square {
	return chess.Sq(target.Row-chess.ColourOffset(mover), target.Col)
}

// jumpedSquare returns the square passed over by a double pawn push.
func jumpedSquare(move chess.Move) chess.Square {
	return chess.Sq(move.From.Row+sign(move.To.Row-move.From.Row), move.From.Col)
}
