package chess

// Unlimited is the move range of sliding pieces: step until blocked.
const Unlimited = -1

// PawnSpecialStep is the length of a pawn's initial double push.
const PawnSpecialStep = 2

// Geometry describes how a piece moves and captures.
// It is pure data derived from kind and colour.
type Geometry struct {
	MoveDirections   []Vector
	MoveRange        int
	AttackDirections []Vector
	AttackRange      int
}

// Steps returns the number of squares a walk along a direction may cover
// for the given range, resolving Unlimited to the board size.
func Steps(rng int) int {
	if rng == Unlimited {
		return BoardSize
	}
	return rng
}

var (
	diagonalDirs = []Vector{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	straightDirs = []Vector{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	royalDirs    = append(append([]Vector{}, diagonalDirs...), straightDirs...)
	knightDirs   = []Vector{{-1, 2}, {1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}}
)

// catalog holds the geometry of every piece, indexed by colour then kind.
var catalog [NumColours][NumPieceKinds]Geometry

func init() {
	for _, colour := range []Colour{White, Black} {
		forward := ColourOffset(colour)
		catalog[colour][Pawn] = Geometry{
			MoveDirections:   []Vector{{forward, 0}},
			MoveRange:        1,
			AttackDirections: []Vector{{forward, -1}, {forward, 1}},
			AttackRange:      1,
		}
		catalog[colour][Knight] = symmetric(knightDirs, 1)
		catalog[colour][Bishop] = symmetric(diagonalDirs, Unlimited)
		catalog[colour][Rook] = symmetric(straightDirs, Unlimited)
		catalog[colour][Queen] = symmetric(royalDirs, Unlimited)
		catalog[colour][King] = symmetric(royalDirs, 1)
	}
}

// symmetric builds geometry for pieces that capture the way they move.
func symmetric(dirs []Vector, rng int) Geometry {
	return Geometry{
		MoveDirections:   dirs,
		MoveRange:        rng,
		AttackDirections: dirs,
		AttackRange:      rng,
	}
}

// GeometryOf returns the movement geometry for a piece kind and colour.
// NoPiece yields the zero Geometry.
func GeometryOf(kind PieceKind, colour Colour) Geometry {
	if kind <= NoPiece || kind >= NumPieceKinds {
		return Geometry{}
	}
	return catalog[colour][kind]
}

// Geometry returns the movement geometry of the piece.
func (p Piece) Geometry() Geometry {
	return GeometryOf(p.Kind, p.Colour)
}

// PawnPushDirection returns the direction of a pawn's non-capturing move.
func PawnPushDirection(colour Colour) Vector {
	return Vector{DRow: ColourOffset(colour), DCol: 0}
}

// PawnHomeRow returns the row from which pawns of the colour may double-step.
func PawnHomeRow(colour Colour) int {
	if colour == White {
		return LastRow - 1
	}
	return 1
}

// PromotionRow returns the farthest row for pawns of the colour.
func PromotionRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return LastRow
}

// BackRow returns the row the colour's king and rooks start on.
func BackRow(colour Colour) int {
	if colour == White {
		return LastRow
	}
	return 0
}

// KingHome returns the king's starting square.
func KingHome(colour Colour) Square {
	return Square{Row: BackRow(colour), Col: 4}
}

// RookHome returns the starting square of the rook on the given wing.
func RookHome(colour Colour, side CastleSide) Square {
	if side == Kingside {
		return Square{Row: BackRow(colour), Col: BoardSize - 1}
	}
	return Square{Row: BackRow(colour), Col: 0}
}

// CastleDirection returns the column step of the king when castling.
func CastleDirection(side CastleSide) int {
	if side == Kingside {
		return 1
	}
	return -1
}
