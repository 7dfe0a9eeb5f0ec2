package chess

import (
	"testing"
)

func TestBoard_SetupInitialPosition(t *testing.T) {
	var b Board
	b.SetupInitialPosition()

	t.Run("back ranks", func(t *testing.T) {
		order := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
		for col, kind := range order {
			if got := b.Get(Sq(LastRow, col)); got != W(kind) {
				t.Errorf("row %d col %d = %v; want %v", LastRow, col, got, W(kind))
			}
			if got := b.Get(Sq(0, col)); got != B(kind) {
				t.Errorf("row 0 col %d = %v; want %v", col, got, B(kind))
			}
		}
	})

	t.Run("pawns", func(t *testing.T) {
		if got := b.Count(W(Pawn)); got != 8 {
			t.Errorf("white pawns = %d; want 8", got)
		}
		if got := b.Count(B(Pawn)); got != 8 {
			t.Errorf("black pawns = %d; want 8", got)
		}
	})

	t.Run("middle empty", func(t *testing.T) {
		for row := 2; row <= 5; row++ {
			for col := 0; col < BoardSize; col++ {
				if !b.IsEmpty(Sq(row, col)) {
					t.Errorf("square %s not empty", Sq(row, col))
				}
			}
		}
	})
}

func TestBoard_SetGetClear(t *testing.T) {
	var b Board
	sq := MustParseSquare("d4")

	b.Set(sq, B(Queen))
	if got := b.Get(sq); got != B(Queen) {
		t.Errorf("Get(d4) = %v; want q", got)
	}
	if got := b.Find(B(Queen)); len(got) != 1 || got[0] != sq {
		t.Errorf("Find(q) = %v; want [d4]", got)
	}

	b.Clear(sq)
	if !b.IsEmpty(sq) {
		t.Error("d4 not empty after Clear")
	}
}

func TestBoard_CopyIsIndependent(t *testing.T) {
	var b Board
	b.SetupInitialPosition()
	c := b
	c.Clear(MustParseSquare("e2"))

	if b.IsEmpty(MustParseSquare("e2")) {
		t.Error("clearing the copy changed the original")
	}
}

func TestBoard_Enumerate(t *testing.T) {
	var b Board
	b.SetupInitialPosition()
	placements := b.Enumerate()

	if len(placements) != BoardSize*BoardSize {
		t.Fatalf("len = %d; want %d", len(placements), BoardSize*BoardSize)
	}
	if first := placements[0]; first.Square.String() != "a8" || first.Piece != B(Rook) {
		t.Errorf("first = %v %v; want a8 r", first.Square, first.Piece)
	}
	if last := placements[len(placements)-1]; last.Square.String() != "h1" || last.Piece != W(Rook) {
		t.Errorf("last = %v %v; want h1 R", last.Square, last.Piece)
	}
}

func TestSquare_ParseAndString(t *testing.T) {
	tests := []struct {
		label string
		row   int
		col   int
	}{
		{"a8", 0, 0},
		{"h8", 0, 7},
		{"a1", 7, 0},
		{"h1", 7, 7},
		{"e4", 4, 4},
		{"d5", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			sq, err := ParseSquare(tt.label)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.label, err)
			}
			if sq != Sq(tt.row, tt.col) {
				t.Errorf("ParseSquare(%q) = %+v; want row %d col %d", tt.label, sq, tt.row, tt.col)
			}
			if got := sq.String(); got != tt.label {
				t.Errorf("String() = %q; want %q", got, tt.label)
			}
		})
	}
}

func TestSquare_ParseErrors(t *testing.T) {
	for _, label := range []string{"", "e", "e44", "i1", "a0", "a9", "E4", "44"} {
		if _, err := ParseSquare(label); err == nil {
			t.Errorf("ParseSquare(%q) succeeded; want error", label)
		}
	}
}

func TestSquare_Geometry(t *testing.T) {
	e4 := MustParseSquare("e4")
	if got := e4.Add(Vector{DRow: -1, DCol: 1}, 2); got.String() != "g6" {
		t.Errorf("e4 + 2*(up,right) = %s; want g6", got)
	}
	if got := e4.Add(Vector{DRow: 0, DCol: 1}, 4); got.Valid() {
		t.Errorf("e4 + 4 right = %+v; want off board", got)
	}
	if !MustParseSquare("a8").IsLight() || MustParseSquare("a1").IsLight() {
		t.Error("a8 should be light and a1 dark")
	}
	if got := Sq(-1, 3).String(); got != "(-1,3)" {
		t.Errorf("off-board String() = %q", got)
	}
}
