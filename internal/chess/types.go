// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of colours, for arrays indexed by Colour.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// FENLetter returns the side-to-move letter used in FEN strings.
func (c Colour) FENLetter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoPiece PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Value returns the material value of a piece kind. Kings are unvalued.
func (k PieceKind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// KindFromLetter converts a piece letter in either case to a piece kind.
// It returns NoPiece for anything else.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoPiece
	}
}

// PromotionKinds lists the kinds a pawn may promote to, queen first.
var PromotionKinds = [...]PieceKind{Queen, Rook, Bishop, Knight}

// Piece is an immutable coloured piece. The zero value is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// Empty is the value stored on squares without a piece.
var Empty = Piece{}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether the value represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Is reports whether p is a piece of the given kind and colour.
func (p Piece) Is(kind PieceKind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the FEN letter: uppercase for white, lowercase for black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return ' '
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the FEN letter of the piece, or "." for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	return string(p.Letter())
}

// PieceFromLetter converts a FEN letter to a coloured piece.
// The boolean is false when c is not a piece letter.
func PieceFromLetter(c byte) (Piece, bool) {
	kind := KindFromLetter(c)
	if kind == NoPiece {
		return Empty, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return Piece{Kind: kind, Colour: colour}, true
}

// CastleSide identifies the wing a king castles towards.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// NumCastleSides is the number of castling wings.
const NumCastleSides = 2

// String returns the string representation of a castling side.
func (s CastleSide) String() string {
	if s == Kingside {
		return "Kingside"
	}
	return "Queenside"
}
