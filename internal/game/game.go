// Package game drives a position between two player strategies.
package game

import (
	"context"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/player"
)

// DefaultMaxPlies caps games between computer players.
const DefaultMaxPlies = 1000

// Game holds a position, the two players and the record of the plies
// played so far.
type Game struct {
	players  [chess.NumColours]player.Strategy
	pos      *engine.Position
	legal    []chess.Move
	status   chess.Status
	record   *chess.GameRecord
	maxPlies int
	number   int
	log      func(...any)
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets a function that receives one line per executed ply and
// one when the game ends.
func WithLogger(fn func(...any)) Option {
	return func(g *Game) {
		g.log = fn
	}
}

// WithMaxPlies sets the number of plies after which Play stops.
// Zero or less means no limit.
func WithMaxPlies(n int) Option {
	return func(g *Game) {
		g.maxPlies = n
	}
}

// WithTag sets a tag on the game record.
func WithTag(name, value string) Option {
	return func(g *Game) {
		g.record.SetTag(name, value)
	}
}

// WithNumber sets the game's number within a batch, used in errors and tags.
func WithNumber(n int) Option {
	return func(g *Game) {
		g.number = n
	}
}

// New creates a game from the given FEN; an empty FEN means the standard
// starting position.
func New(white, black player.Strategy, fen string, opts ...Option) (*Game, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}

	g := &Game{
		pos:      pos,
		status:   pos.Status(),
		record:   chess.NewGameRecord(pos.FEN()),
		maxPlies: DefaultMaxPlies,
		log:      func(...any) {},
	}
	g.players[chess.White] = white
	g.players[chess.Black] = black

	g.record.SetTag(chess.WhiteTag, white.String())
	g.record.SetTag(chess.BlackTag, black.String())
	g.record.SetTag(chess.SetupTag, "1")
	g.record.SetTag(chess.FENTag, pos.FEN())

	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Position returns the live position. Callers must not modify it.
func (g *Game) Position() *engine.Position {
	return g.pos
}

// Status returns the status of the current position.
func (g *Game) Status() chess.Status {
	return g.status
}

// LegalMoves returns the legal moves of the side to move, computed once
// per turn.
func (g *Game) LegalMoves() []chess.Move {
	if g.legal == nil {
		g.legal = g.pos.LegalMoves(g.pos.ToMove())
	}
	return g.legal
}

// AtPlyLimit reports whether the game has reached its ply cap.
func (g *Game) AtPlyLimit() bool {
	return g.maxPlies > 0 && g.record.PlyCount() >= g.maxPlies
}

// LastPly returns the most recent ply, if any.
func (g *Game) LastPly() (chess.Ply, bool) {
	return g.record.LastPly()
}

// Player returns the strategy playing the given colour.
func (g *Game) Player(colour chess.Colour) player.Strategy {
	return g.players[colour]
}

// Update polls the player to move once. It returns true if a move was
// executed. A move outside the legal list is rejected with a GameError
// wrapping errors.ErrIllegalMove and the position is left unchanged.
// Update does nothing once the game is over.
func (g *Game) Update() (bool, error) {
	if g.status.IsTerminal() {
		return false, nil
	}

	legal := g.LegalMoves()
	move, ok := g.players[g.pos.ToMove()].DecideMove(g.pos, legal)
	if !ok {
		return false, nil
	}
	if !contains(legal, move) {
		return false, g.error(errors.ErrIllegalMove, move.UCI())
	}

	san := engine.MoveToSAN(g.pos, move)
	g.pos.ExecuteMove(move)
	g.legal = nil
	g.status = g.pos.Status()
	g.record.AppendPly(chess.Ply{Move: move, SAN: san, FEN: g.pos.FEN()})

	g.log("ply", g.record.PlyCount(), san, g.pos.FEN())
	if g.status.IsTerminal() {
		g.log("game over:", g.status, g.status.Result())
	}
	return true, nil
}

// Play polls the players until the game ends or the ply cap is reached.
// Every strategy must decide immediately; a player that does not is
// reported as errors.ErrUndecided. The returned record is complete up to
// the point of any error.
func (g *Game) Play(ctx context.Context) (*chess.GameRecord, error) {
	for !g.status.IsTerminal() {
		if g.AtPlyLimit() {
			g.log("ply limit reached:", g.maxPlies)
			break
		}
		if err := ctx.Err(); err != nil {
			return g.Record(), err
		}

		moved, err := g.Update()
		if err != nil {
			return g.Record(), err
		}
		if !moved {
			return g.Record(), g.error(errors.ErrUndecided, "")
		}
	}
	return g.Record(), nil
}

// Record returns the game record with the current status and result tags.
func (g *Game) Record() *chess.GameRecord {
	g.record.Status = g.status
	g.record.SetTag(chess.ResultTag, g.status.Result())
	if g.status == chess.InPlay && g.AtPlyLimit() {
		g.record.SetTag(chess.TerminationTag, "ply limit")
	}
	return g.record
}

func (g *Game) error(err error, moveText string) error {
	return &errors.GameError{
		Err:      err,
		GameNum:  g.number,
		PlyNum:   g.record.PlyCount() + 1,
		MoveText: moveText,
		FEN:      g.pos.FEN(),
	}
}

func contains(moves []chess.Move, move chess.Move) bool {
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}
