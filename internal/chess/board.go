package chess

// Board is the piece placement grid, addressed as [row][col].
// Being an array, assignment copies it; no two squares alias.
type Board [BoardSize][BoardSize]Piece

// Get returns the piece at the given square.
func (b *Board) Get(sq Square) Piece {
	return b[sq.Row][sq.Col]
}

// Set places a piece at the given square.
func (b *Board) Set(sq Square, piece Piece) {
	b[sq.Row][sq.Col] = piece
}

// Clear empties the given square.
func (b *Board) Clear(sq Square) {
	b[sq.Row][sq.Col] = Empty
}

// IsEmpty reports whether the given square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b[sq.Row][sq.Col].IsEmpty()
}

// Placement is one square of an enumerated board.
type Placement struct {
	Square Square
	Piece  Piece
}

// Enumerate returns every square, row by row from the top, with its piece.
func (b *Board) Enumerate() []Placement {
	placements := make([]Placement, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			placements = append(placements, Placement{Square: Sq(row, col), Piece: b[row][col]})
		}
	}
	return placements
}

// Find returns the squares holding the given piece.
func (b *Board) Find(piece Piece) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == piece {
				squares = append(squares, Sq(row, col))
			}
		}
	}
	return squares
}

// Count returns how many squares hold the given piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == piece {
				n++
			}
		}
	}
	return n
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b[0][col] = B(backRank[col])
		b[1][col] = B(Pawn)
		b[LastRow-1][col] = W(Pawn)
		b[LastRow][col] = W(backRank[col])
	}
}
