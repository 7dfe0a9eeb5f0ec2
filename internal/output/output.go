// Package output writes game records, boards and reports.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Notation selects how moves are written in movetext.
type Notation int

const (
	// SAN writes standard algebraic notation, e.g. "Nf3".
	SAN Notation = iota
	// UCI writes long algebraic notation without separators, e.g. "g1f3".
	UCI
)

// ParseNotation converts a notation name to a Notation.
func ParseNotation(name string) (Notation, bool) {
	switch strings.ToLower(name) {
	case "san", "":
		return SAN, true
	case "uci", "lalg":
		return UCI, true
	}
	return SAN, false
}

// Options controls PGN output.
type Options struct {
	Notation       Notation
	MaxLineLength  int
	SevenTagRoster bool // write only the seven required tags
}

// DefaultOptions returns SAN movetext wrapped at 80 columns with all tags.
func DefaultOptions() Options {
	return Options{Notation: SAN, MaxLineLength: 80}
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, separated from the previous one by a space or,
// when the line would grow too long, a newline.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error, if any.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// WritePGN writes a game record as PGN: the tag section, a blank line,
// the movetext with the result token and a trailing blank line.
func WritePGN(w io.Writer, r *chess.GameRecord, opts Options) error {
	if err := writeTags(w, r, opts); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	ow := NewOutputWriter(w, opts.MaxLineLength)
	writeMovetext(ow, r, opts.Notation)
	ow.Write(r.Result())
	ow.NewLine()
	ow.NewLine()
	return ow.Err()
}

// writeTags writes the seven tag roster, with "?" for missing values,
// followed by the remaining tags unless restricted to the roster.
func writeTags(w io.Writer, r *chess.GameRecord, opts Options) error {
	for _, tag := range chess.SevenTagRoster {
		value := r.GetTag(tag)
		if tag == chess.ResultTag {
			value = r.Result()
		}
		if value == "" {
			value = "?"
		}
		if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value)); err != nil {
			return err
		}
	}
	if opts.SevenTagRoster {
		return nil
	}

	for _, tag := range r.OrderedTags() {
		if chess.IsSevenTagRosterTag(tag) {
			continue
		}
		if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(r.GetTag(tag))); err != nil {
			return err
		}
	}
	return nil
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// writeMovetext writes numbered moves starting from the side and move
// number of the record's start position. A game starting with Black to
// move opens with "N...".
func writeMovetext(ow *OutputWriter, r *chess.GameRecord, notation Notation) {
	moveNum, isWhite := startCounters(r.StartFEN)

	for i, ply := range r.Plies {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}

		ow.Write(formatPly(ply, notation))

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
}

func formatPly(ply chess.Ply, notation Notation) string {
	if notation == UCI || ply.SAN == "" {
		return ply.Move.UCI()
	}
	return ply.SAN
}

// startCounters reads the fullmove number and side to move from a FEN,
// falling back to move 1 with White to move.
func startCounters(fen string) (int, bool) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return 1, true
	}
	moveNum := 1
	if _, err := fmt.Sscanf(fields[5], "%d", &moveNum); err != nil || moveNum < 1 {
		moveNum = 1
	}
	return moveNum, fields[1] != "b"
}
