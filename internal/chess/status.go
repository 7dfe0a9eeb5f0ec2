package chess

// Status is the evaluated state of a position.
type Status int

const (
	Invalid Status = iota
	InPlay
	WhiteWins
	BlackWins
	Stalemate
	FiftyMoveDraw
	ThreefoldDraw
	InsufficientMaterialDraw
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Invalid:
		return "INVALID"
	case InPlay:
		return "IN_PLAY"
	case WhiteWins:
		return "WHITE_WINS"
	case BlackWins:
		return "BLACK_WINS"
	case Stalemate:
		return "STALEMATE"
	case FiftyMoveDraw:
		return "FIFTY_MOVE_DRAW"
	case ThreefoldDraw:
		return "THREEFOLD_DRAW"
	case InsufficientMaterialDraw:
		return "INSUFFICIENT_MATERIAL_DRAW"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal reports whether the game is over (or cannot be played).
func (s Status) IsTerminal() bool {
	return s != InPlay
}

// IsDraw reports whether the status is any kind of draw.
func (s Status) IsDraw() bool {
	switch s {
	case Stalemate, FiftyMoveDraw, ThreefoldDraw, InsufficientMaterialDraw:
		return true
	default:
		return false
	}
}

// Result returns the PGN result token for the status.
func (s Status) Result() string {
	switch {
	case s == WhiteWins:
		return "1-0"
	case s == BlackWins:
		return "0-1"
	case s.IsDraw():
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Winner returns the winning colour; ok is false when nobody won.
func (s Status) Winner() (winner Colour, ok bool) {
	switch s {
	case WhiteWins:
		return White, true
	case BlackWins:
		return Black, true
	default:
		return Black, false
	}
}
