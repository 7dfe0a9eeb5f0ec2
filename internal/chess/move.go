package chess

import "strings"

// MoveKind categorizes different types of chess moves.
type MoveKind int

const (
	QuietMove MoveKind = iota
	CaptureMove
	DoublePawnPush
	EnPassantCapture
	CastleMove
	PromotionMove
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case QuietMove:
		return "Quiet"
	case CaptureMove:
		return "Capture"
	case DoublePawnPush:
		return "DoublePush"
	case EnPassantCapture:
		return "EnPassant"
	case CastleMove:
		return "Castle"
	case PromotionMove:
		return "Promotion"
	default:
		return "Unknown"
	}
}

// Move describes a transition from one square to another.
// Moves are produced by move generation and consumed by execution.
type Move struct {
	From Square
	To   Square
	Kind MoveKind

	// The piece promoted to. NoPiece on a promotion move means queen.
	Promotion PieceKind

	// The kind of piece removed by this move (NoPiece if none).
	Captured PieceKind
}

// IsCapture returns true if this move removes an opposing piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece || m.Kind == CaptureMove || m.Kind == EnPassantCapture
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Kind == PromotionMove
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == CastleMove
}

// CastleSide returns the wing of a castling move.
func (m Move) CastleSide() CastleSide {
	if m.To.Col > m.From.Col {
		return Kingside
	}
	return Queenside
}

// PromotionKind returns the kind a promotion produces, defaulting to queen.
func (m Move) PromotionKind() PieceKind {
	if m.Promotion == NoPiece {
		return Queen
	}
	return m.Promotion
}

// UCI returns the long algebraic form of the move, e.g. "e7e8q".
func (m Move) UCI() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte(B(m.PromotionKind()).Letter())
	}
	return sb.String()
}

// String returns the long algebraic form with the move kind.
func (m Move) String() string {
	return m.UCI() + " (" + m.Kind.String() + ")"
}
