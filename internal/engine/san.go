package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

const (
	kingsideCastleSAN  = "O-O"
	queensideCastleSAN = "O-O-O"
)

// MoveToSAN returns the standard algebraic notation of a legal move in the
// given position, before the move is played. Ambiguous piece moves are
// disambiguated by file, then rank, then both. A move that checks gets a
// '+' suffix, a move that mates gets '#'.
func MoveToSAN(p *Position, move chess.Move) string {
	var sb strings.Builder

	piece := p.board.Get(move.From)
	switch {
	case move.IsCastle():
		if move.CastleSide() == chess.Kingside {
			sb.WriteString(kingsideCastleSAN)
		} else {
			sb.WriteString(queensideCastleSAN)
		}
	case piece.Kind == chess.Pawn:
		if move.IsCapture() {
			sb.WriteByte(move.From.File())
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
		if move.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(chess.W(move.PromotionKind()).Letter())
		}
	default:
		sb.WriteByte(chess.W(piece.Kind).Letter())
		writeDisambiguation(&sb, p, move, piece)
		if move.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
	}

	after := p.scratch()
	after.applyMove(move)
	if after.InCheck(after.toMove) {
		if after.HasLegalMoves(after.toMove) {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}
	return sb.String()
}

// writeDisambiguation adds the origin file and/or rank when another piece
// of the same kind and colour can also reach the destination.
func writeDisambiguation(sb *strings.Builder, p *Position, move chess.Move, piece chess.Piece) {
	var rivals []chess.Square
	for _, other := range p.board.Find(piece) {
		if other == move.From {
			continue
		}
		for _, m := range p.appendLegal(nil, other, piece) {
			if m.To == move.To {
				rivals = append(rivals, other)
				break
			}
		}
	}
	if len(rivals) == 0 {
		return
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		sameFile = sameFile || sq.Col == move.From.Col
		sameRank = sameRank || sq.Row == move.From.Row
	}
	switch {
	case !sameFile:
		sb.WriteByte(move.From.File())
	case !sameRank:
		sb.WriteByte(move.From.Rank())
	default:
		sb.WriteString(move.From.String())
	}
}

// ParseUCIMove resolves long algebraic text such as "e2e4" or "e7e8n"
// against the legal moves of the position. A promotion without a piece
// letter selects the queen.
func ParseUCIMove(p *Position, text string) (chess.Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, fmt.Errorf("%q: %w", text, errors.ErrIllegalMove)
	}

	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "parse move %q", text)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "parse move %q", text)
	}

	promotion := chess.NoPiece
	if len(text) == 5 {
		promotion = chess.KindFromLetter(text[4])
		if !isPromotionKind(promotion) {
			return chess.Move{}, fmt.Errorf("%q: bad promotion piece: %w", text, errors.ErrIllegalMove)
		}
	}

	if mover := p.board.Get(from); mover.IsEmpty() || mover.Colour != p.toMove {
		return chess.Move{}, fmt.Errorf("%q: no %s piece on %s: %w", text, p.toMove, from, errors.ErrIllegalMove)
	}
	legal, err := p.LegalMovesFrom(from)
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "parse move %q", text)
	}
	for _, m := range legal {
		if m.To != to {
			continue
		}
		if m.IsPromotion() && m.PromotionKind() != promotionOrQueen(promotion) {
			continue
		}
		return m, nil
	}
	return chess.Move{}, fmt.Errorf("%q: %w", text, errors.ErrIllegalMove)
}

func isPromotionKind(kind chess.PieceKind) bool {
	for _, k := range chess.PromotionKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func promotionOrQueen(kind chess.PieceKind) chess.PieceKind {
	if kind == chess.NoPiece {
		return chess.Queen
	}
	return kind
}
