package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	ColBase  = 'a'
	RankBase = '1'
	LastCol  = ColBase + BoardSize - 1
	LastRank = RankBase + BoardSize - 1
	LastRow  = BoardSize - 1
)

// Square is a board coordinate. Row 0 is the eighth rank, column 0 the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for building a square from row and column.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Add returns the square reached by stepping n times along v.
func (s Square) Add(v Vector, n int) Square {
	return Square{Row: s.Row + v.DRow*n, Col: s.Col + v.DCol*n}
}

// String returns the algebraic label of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{s.File(), s.Rank()})
}

// File returns the file letter of the square ('a'-'h').
func (s Square) File() byte {
	return byte(ColBase + s.Col)
}

// Rank returns the rank digit of the square ('1'-'8').
func (s Square) Rank() byte {
	return byte(RankBase + LastRow - s.Row)
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.Row+s.Col)%2 == 0
}

// ParseSquare converts an algebraic label such as "e4" to a square.
func ParseSquare(label string) (Square, error) {
	if len(label) != 2 {
		return Square{}, fmt.Errorf("%q: %w", label, errors.ErrInvalidSquare)
	}
	file, rank := label[0], label[1]
	if file < ColBase || file > LastCol || rank < RankBase || rank > LastRank {
		return Square{}, fmt.Errorf("%q: %w", label, errors.ErrInvalidSquare)
	}
	return Square{Row: int(LastRank - rank), Col: int(file - ColBase)}, nil
}

// MustParseSquare is like ParseSquare but panics on a bad label.
// It is intended for constants and tests.
func MustParseSquare(label string) Square {
	sq, err := ParseSquare(label)
	if err != nil {
		panic(err)
	}
	return sq
}

// Vector is a unit step in row and column.
type Vector struct {
	DRow int
	DCol int
}

// ColourOffset returns the row step of a forward pawn move: -1 for White
// (towards row 0), +1 for Black.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}
