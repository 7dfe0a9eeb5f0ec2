package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// PseudoLegalMoves returns the moves of the piece on sq that obey its
// movement geometry and blocking, without regard to the mover's king.
func (p *Position) PseudoLegalMoves(sq chess.Square) ([]chess.Move, error) {
	piece, err := p.occupant(sq)
	if err != nil {
		return nil, err
	}
	return p.pseudoLegalMoves(sq, piece), nil
}

// occupant returns the piece on sq, failing on off-board or empty squares.
func (p *Position) occupant(sq chess.Square) (chess.Piece, error) {
	if !sq.Valid() {
		return chess.Empty, fmt.Errorf("%s: %w", sq, errors.ErrInvalidSquare)
	}
	piece := p.board.Get(sq)
	if piece.IsEmpty() {
		return chess.Empty, fmt.Errorf("%s: %w", sq, errors.ErrEmptySquare)
	}
	return piece, nil
}

// pseudoLegalMoves generates quiet moves, captures and castles for a piece.
func (p *Position) pseudoLegalMoves(from chess.Square, piece chess.Piece) []chess.Move {
	var moves []chess.Move
	moves = p.appendQuietMoves(moves, from, piece)
	if piece.Kind == chess.Pawn {
		moves = p.appendDoublePush(moves, from, piece)
	}
	moves = p.appendCaptures(moves, from, piece)
	if piece.Kind == chess.King {
		moves = p.appendCastles(moves, from, piece)
	}
	return moves
}

// appendQuietMoves walks each move direction up to the move range,
// stopping before the first occupied square.
func (p *Position) appendQuietMoves(moves []chess.Move, from chess.Square, piece chess.Piece) []chess.Move {
	geometry := piece.Geometry()
	steps := chess.Steps(geometry.MoveRange)

	for _, dir := range geometry.MoveDirections {
		for i := 1; i <= steps; i++ {
			to := from.Add(dir, i)
			if !to.Valid() || !p.board.IsEmpty(to) {
				break
			}
			if piece.Kind == chess.Pawn && to.Row == chess.PromotionRow(piece.Colour) {
				moves = appendPromotions(moves, from, to, chess.NoPiece)
				continue
			}
			moves = append(moves, chess.Move{From: from, To: to, Kind: chess.QuietMove})
		}
	}
	return moves
}

// appendCaptures walks each attack direction up to the attack range,
// stopping on the first occupied square and emitting a capture if it
// holds an opposing piece. Pawns also capture onto the en passant target.
func (p *Position) appendCaptures(moves []chess.Move, from chess.Square, piece chess.Piece) []chess.Move {
	p.walkAttacks(from, piece, func(to chess.Square) bool {
		target := p.board.Get(to)
		switch {
		case !target.IsEmpty():
			if target.Colour == piece.Colour {
				break
			}
			if piece.Kind == chess.Pawn && to.Row == chess.PromotionRow(piece.Colour) {
				moves = appendPromotions(moves, from, to, target.Kind)
				break
			}
			moves = append(moves, chess.Move{From: from, To: to, Kind: chess.CaptureMove, Captured: target.Kind})
		case piece.Kind == chess.Pawn && p.isEnPassantTarget(to, piece.Colour):
			moves = append(moves, chess.Move{From: from, To: to, Kind: chess.EnPassantCapture, Captured: chess.Pawn})
		}
		return false
	})
	return moves
}

// walkAttacks calls visit for every square the piece attacks: each attack
// direction up to the attack range, inclusive of the first occupied square.
// Walking stops as soon as visit returns true; walkAttacks reports whether it did.
func (p *Position) walkAttacks(from chess.Square, piece chess.Piece, visit func(to chess.Square) bool) bool {
	geometry := piece.Geometry()
	steps := chess.Steps(geometry.AttackRange)

	for _, dir := range geometry.AttackDirections {
		for i := 1; i <= steps; i++ {
			to := from.Add(dir, i)
			if !to.Valid() {
				break
			}
			if visit(to) {
				return true
			}
			if !p.board.IsEmpty(to) {
				break // Blocked
			}
		}
	}
	return false
}

// appendPromotions adds one promotion move per promotion kind, queen first.
func appendPromotions(moves []chess.Move, from, to chess.Square, captured chess.PieceKind) []chess.Move {
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.Move{
			From:      from,
			To:        to,
			Kind:      chess.PromotionMove,
			Promotion: kind,
			Captured:  captured,
		})
	}
	return moves
}
