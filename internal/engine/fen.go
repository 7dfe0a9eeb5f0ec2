package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// numFENFields is the number of space-separated fields in a FEN string.
const numFENFields = 6

// castlingOrder is the fixed order of castling letters in the castling field.
var castlingOrder = [...]struct {
	letter byte
	colour chess.Colour
	side   chess.CastleSide
}{
	{'K', chess.White, chess.Kingside},
	{'Q', chess.White, chess.Queenside},
	{'k', chess.Black, chess.Kingside},
	{'q', chess.Black, chess.Queenside},
}

// NewPositionFromFEN creates a position from a FEN string. Fields are
// separated by exactly one space, so every accepted string is reproduced
// byte for byte by FEN.
// Parsing fails on the first malformed field; no partial position is returned.
func NewPositionFromFEN(fen string) (*Position, error) {
	parts := strings.Split(fen, " ")
	if len(parts) != numFENFields {
		return nil, &errors.FENError{
			Err:   fmt.Errorf("want %d fields, got %d: %w", numFENFields, len(parts), errors.ErrInvalidFEN),
			Value: fen,
		}
	}

	p := &Position{}

	if err := parsePiecePositions(p, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(p, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(p, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(p, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(p, parts[4], parts[5]); err != nil {
		return nil, err
	}

	p.refresh()
	p.history = map[string]int{p.CanonicalKey(): 1}
	return p, nil
}

// MustPositionFromFEN is like NewPositionFromFEN but panics on error.
// It is intended for constants and tests.
func MustPositionFromFEN(fen string) *Position {
	p, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(p *Position, placement string) error {
	fail := func(format string, args ...interface{}) error {
		return &errors.FENError{
			Err:   fmt.Errorf(format+": %w", append(args, errors.ErrInvalidFEN)...),
			Field: "placement",
			Value: placement,
		}
	}

	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fail("want %d ranks, got %d", chess.BoardSize, len(ranks))
	}

	for row, rank := range ranks {
		col := 0
		lastWasDigit := false
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '1' && c <= '0'+chess.BoardSize:
				if lastWasDigit {
					return fail("consecutive empty-square counts in rank %d", row+1)
				}
				col += int(c - '0')
				lastWasDigit = true
			default:
				piece, ok := chess.PieceFromLetter(c)
				if !ok {
					return fail("invalid piece character %q", c)
				}
				if col >= chess.BoardSize {
					return fail("too many squares in rank %d", row+1)
				}
				p.board.Set(chess.Sq(row, col), piece)
				col++
				lastWasDigit = false
			}
			if col > chess.BoardSize {
				return fail("too many squares in rank %d", row+1)
			}
		}
		if col != chess.BoardSize {
			return fail("rank %d has %d squares", row+1, col)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(p *Position, side string) error {
	switch side {
	case "w":
		p.toMove = chess.White
	case "b":
		p.toMove = chess.Black
	default:
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "side", Value: side}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
// Letters must appear in KQkq order, each at most once.
func parseCastlingRights(p *Position, field string) error {
	if field == "-" {
		return nil
	}

	next := 0
	for i := 0; i < len(field); i++ {
		for next < len(castlingOrder) && castlingOrder[next].letter != field[i] {
			next++
		}
		if next == len(castlingOrder) {
			return &errors.FENError{
				Err:   fmt.Errorf("castling letters must be a subset of KQkq in order: %w", errors.ErrInvalidFEN),
				Field: "castling",
				Value: field,
			}
		}
		right := castlingOrder[next]
		p.castling[right.colour][right.side] = true
		next++
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(p *Position, field string) error {
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return &errors.FENError{Err: err, Field: "en-passant", Value: field}
	}
	p.epTarget = sq
	p.hasEPTarget = true
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(p *Position, halfmove, fullmove string) error {
	n, err := parseCounter(halfmove)
	if err != nil {
		return &errors.FENError{Err: err, Field: "halfmove clock", Value: halfmove}
	}
	p.halfmoveClock = n

	n, err = parseCounter(fullmove)
	if err != nil {
		return &errors.FENError{Err: err, Field: "fullmove number", Value: fullmove}
	}
	p.fullmoveNumber = n
	return nil
}

// parseCounter parses a plain non-negative decimal integer without
// leading zeros.
func parseCounter(s string) (int, error) {
	if s == "" {
		return 0, errors.ErrInvalidFEN
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("leading zero: %w", errors.ErrInvalidFEN)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("not a non-negative integer: %w", errors.ErrInvalidFEN)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(errors.ErrInvalidFEN, err.Error())
	}
	return n, nil
}

// positionToFEN converts a position to a FEN string.
func positionToFEN(p *Position) string {
	var sb strings.Builder
	writeCanonical(&sb, p)
	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.fullmoveNumber)
	return sb.String()
}

// canonicalKey returns the placement, side, castling and en passant fields.
func canonicalKey(p *Position) string {
	var sb strings.Builder
	writeCanonical(&sb, p)
	return sb.String()
}

// writeCanonical writes the first four FEN fields to the builder.
func writeCanonical(sb *strings.Builder, p *Position) {
	writePiecePositions(sb, p)
	sb.WriteByte(' ')
	sb.WriteByte(p.toMove.FENLetter())
	sb.WriteByte(' ')
	writeCastlingRights(sb, p)
	sb.WriteByte(' ')
	writeEnPassant(sb, p)
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, p *Position) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := p.board.Get(chess.Sq(row, col))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.LastRow {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, p *Position) {
	hasCastling := false
	for _, right := range castlingOrder {
		if p.castling[right.colour][right.side] {
			sb.WriteByte(right.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, p *Position) {
	if p.hasEPTarget {
		sb.WriteString(p.epTarget.String())
	} else {
		sb.WriteByte('-')
	}
}
