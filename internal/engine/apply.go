package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// ExecuteMove applies a move to the position and updates the derived state:
// castling rights, en passant target, clocks, side to move, the cached FEN
// and the repetition history.
//
// ExecuteMove does not validate the move. Callers must pick it from
// LegalMoves or LegalMovesFrom; executing anything else leaves the
// position in an unspecified state.
func (p *Position) ExecuteMove(move chess.Move) {
	p.applyMove(move)
	p.refresh()
	if p.history != nil {
		p.history[p.CanonicalKey()]++
	}
}

// applyMove performs the board and state changes of a move without
// touching the cached FEN or history. Scratch positions use it directly.
func (p *Position) applyMove(move chess.Move) {
	mover := p.board.Get(move.From)
	captured := p.board.Get(move.To)

	p.board.Clear(move.From)
	p.board.Set(move.To, mover)

	switch move.Kind {
	case chess.EnPassantCapture:
		victim := enPassantVictim(move.To, mover.Colour)
		captured = p.board.Get(victim)
		p.board.Clear(victim)
	case chess.CastleMove:
		p.moveCastlingRook(move, mover.Colour)
	}

	// Any pawn reaching the far rank promotes, whatever the move kind says.
	if mover.Kind == chess.Pawn && move.To.Row == chess.PromotionRow(mover.Colour) {
		p.board.Set(move.To, chess.Piece{Kind: move.PromotionKind(), Colour: mover.Colour})
	}

	p.updateCastlingRights(mover, move, captured)

	p.hasEPTarget = move.Kind == chess.DoublePawnPush
	if p.hasEPTarget {
		p.epTarget = jumpedSquare(move)
	} else {
		p.epTarget = chess.Square{}
	}

	if mover.Kind == chess.Pawn || !captured.IsEmpty() {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	p.toMove = p.toMove.Opposite()
	if p.toMove == chess.White {
		p.fullmoveNumber++
	}
}
