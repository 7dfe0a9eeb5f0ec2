// Package errors provides sentinel errors and error types for chesscore.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates an unrecognized square label or an
	// off-board coordinate.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrEmptySquare indicates a piece query on a square holding no piece.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrInvalidPosition indicates a position breaking a placement
	// invariant (king count, pawn rows, opponent left in check).
	ErrInvalidPosition = errors.New("invalid position")

	// ErrIllegalMove indicates a move that is not in the legal move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrUndecided indicates a player that has not chosen a move when one
	// was required immediately.
	ErrUndecided = errors.New("move not decided")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FENError reports which field of a FEN string could not be parsed.
type FENError struct {
	Err   error  // The underlying error
	Field string // FEN field name (placement, side, castling, ...)
	Value string // The offending text
}

// Error returns a formatted error message naming the field and value.
func (e *FENError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return "FEN error"
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Is reports every FENError as an ErrInvalidFEN, whatever its cause.
func (e *FENError) Is(target error) bool {
	return target == ErrInvalidFEN
}

// GameError wraps errors with game context, including game number,
// ply and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in a batch (0 if not applicable)
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	FEN      string // Position the move was attempted in (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameNum > 0 {
		parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
