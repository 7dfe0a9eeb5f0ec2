package output

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// BoardOptions controls board rendering.
type BoardOptions struct {
	NoColor bool           // plain text, no ANSI escapes
	Flip    bool           // Black at the bottom
	Marks   []chess.Square // squares to highlight, e.g. the last move
}

var (
	lightSquare = []color.Attribute{color.BgYellow}
	darkSquare  = []color.Attribute{color.BgGreen}
	markSquare  = []color.Attribute{color.BgCyan}
	checkSquare = []color.Attribute{color.BgRed}
	whitePiece  = []color.Attribute{color.FgHiWhite, color.Bold}
	blackPiece  = []color.Attribute{color.FgBlack, color.Bold}
)

// BoardView is what the renderer reads from a position.
type BoardView interface {
	EnumerateBoard() []chess.Placement
	ToMove() chess.Colour
	InCheck(colour chess.Colour) bool
}

// RenderFEN renders the position described by a FEN string.
func RenderFEN(w io.Writer, fen string, opts BoardOptions) error {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	return RenderBoard(w, pos, opts)
}

// RenderBoard draws the position as an 8x8 grid with rank and file labels.
// White pieces are upper case, Black lower case. With colour enabled the
// squares are shaded and the king of a side in check is marked red.
// Without colour, empty squares are shown as '.'.
func RenderBoard(w io.Writer, pos BoardView, opts BoardOptions) error {
	var grid [chess.BoardSize][chess.BoardSize]chess.Piece
	placements := pos.EnumerateBoard()
	for _, pl := range placements {
		grid[pl.Square.Row][pl.Square.Col] = pl.Piece
	}
	check, inCheck := checkedKing(pos, placements)
	marked := make(map[chess.Square]bool, len(opts.Marks))
	for _, sq := range opts.Marks {
		marked[sq] = true
	}

	var sb strings.Builder
	for i := 0; i < chess.BoardSize; i++ {
		row := i
		if opts.Flip {
			row = chess.LastRow - i
		}
		sb.WriteByte(chess.Sq(row, 0).Rank())
		sb.WriteByte(' ')

		for j := 0; j < chess.BoardSize; j++ {
			col := j
			if opts.Flip {
				col = chess.LastCol - chess.ColBase - j
			}
			sq := chess.Sq(row, col)
			piece := grid[row][col]

			if opts.NoColor {
				if j > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteByte(squareLetter(piece))
				continue
			}

			bg := lightSquare
			switch {
			case inCheck && sq == check:
				bg = checkSquare
			case marked[sq]:
				bg = markSquare
			case !sq.IsLight():
				bg = darkSquare
			}
			fg := whitePiece
			if piece.Colour == chess.Black {
				fg = blackPiece
			}
			c := color.New(bg...).Add(fg...)
			c.EnableColor()
			letter := byte(' ')
			if !piece.IsEmpty() {
				letter = piece.Letter()
			}
			sb.WriteString(c.Sprint(" " + string(letter) + " "))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for j := 0; j < chess.BoardSize; j++ {
		col := j
		if opts.Flip {
			col = chess.LastCol - chess.ColBase - j
		}
		file := chess.Sq(0, col).File()
		if opts.NoColor {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(file)
		} else {
			sb.WriteString(" " + string(file) + " ")
		}
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

func squareLetter(piece chess.Piece) byte {
	if piece.IsEmpty() {
		return '.'
	}
	return piece.Letter()
}

// checkedKing returns the square of the side to move's king if it is in check.
func checkedKing(pos BoardView, placements []chess.Placement) (chess.Square, bool) {
	side := pos.ToMove()
	if !pos.InCheck(side) {
		return chess.Square{}, false
	}
	for _, pl := range placements {
		if pl.Piece.Is(chess.King, side) {
			return pl.Square, true
		}
	}
	return chess.Square{}, false
}
