package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Output formats accepted by NewGameWriter.
const (
	FormatText = "text"
	FormatPGN  = "pgn"
	FormatJSON = "json"
)

// GameWriter is the interface for writing game records.
type GameWriter interface {
	// WriteGame writes a single game record.
	WriteGame(r *chess.GameRecord) error

	// Close writes anything still buffered.
	Close() error
}

// NewGameWriter returns the writer for the named format.
func NewGameWriter(format string, w io.Writer, opts Options, board BoardOptions) (GameWriter, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return NewTextWriter(w, board), nil
	case FormatPGN:
		return NewPGNWriter(w, opts), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	}
	return nil, errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %q", format)
}

// PGNWriter writes records in PGN format as they arrive.
type PGNWriter struct {
	w    io.Writer
	opts Options
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, opts Options) *PGNWriter {
	return &PGNWriter{w: w, opts: opts}
}

// WriteGame writes a record in PGN format.
func (pw *PGNWriter) WriteGame(r *chess.GameRecord) error {
	return WritePGN(pw.w, r, pw.opts)
}

// Close is a no-op.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter buffers records and writes them as one JSON document on Close.
type JSONWriter struct {
	w     io.Writer
	games []*chess.GameRecord
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame buffers a record.
func (jw *JSONWriter) WriteGame(r *chess.GameRecord) error {
	jw.games = append(jw.games, r)
	return nil
}

// Close writes all buffered records as {"games": [...]} and clears the buffer.
func (jw *JSONWriter) Close() error {
	out := &JSONOutput{Games: make([]*JSONGame, 0, len(jw.games))}
	for _, r := range jw.games {
		out.Games = append(out.Games, RecordToJSON(r))
	}
	jw.games = jw.games[:0]

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// TextWriter prints the final board of each record with a one-line summary.
type TextWriter struct {
	w     io.Writer
	board BoardOptions
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, board BoardOptions) *TextWriter {
	return &TextWriter{w: w, board: board}
}

// WriteGame renders the final position and the game outcome.
func (tw *TextWriter) WriteGame(r *chess.GameRecord) error {
	if err := RenderFEN(tw.w, r.FinalFEN(), tw.board); err != nil {
		return err
	}
	_, err := fmt.Fprintf(tw.w, "%s vs %s: %s (%s) after %d plies\n",
		r.White(), r.Black(), r.Result(), r.Status, r.PlyCount())
	return err
}

// Close is a no-op.
func (tw *TextWriter) Close() error {
	return nil
}
