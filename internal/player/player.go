// Package player defines the strategies that choose moves for each side.
package player

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Strategy names accepted by New.
const (
	HumanName  = "human"
	RandomName = "random"
)

// Strategy chooses a move from the legal moves of a position.
// DecideMove is polled once per tick; it returns false while the decision
// is still pending. The position must be treated as read-only.
type Strategy interface {
	DecideMove(pos *engine.Position, legal []chess.Move) (chess.Move, bool)
	String() string
}

// New creates a strategy by name. The seed is used by random strategies.
func New(name string, seed int64) (Strategy, error) {
	switch name {
	case HumanName:
		return NewInteractive(), nil
	case RandomName:
		return NewRandom(seed), nil
	default:
		return nil, fmt.Errorf("unknown player %q: %w", name, errors.ErrInvalidConfig)
	}
}

// Interactive is a strategy whose moves come from outside, e.g. a terminal
// or a mouse. Submit may be called from another goroutine.
type Interactive struct {
	mu        sync.Mutex
	pending   *chess.Move
	available []chess.Move
}

// NewInteractive creates an interactive strategy with no pending move.
func NewInteractive() *Interactive {
	return &Interactive{}
}

// Submit records the move to play on the next poll, replacing any
// earlier submission.
func (h *Interactive) Submit(move chess.Move) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending = &move
}

// Available returns the legal moves seen on the most recent poll.
func (h *Interactive) Available() []chess.Move {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]chess.Move(nil), h.available...)
}

// DecideMove yields the submitted move exactly once.
func (h *Interactive) DecideMove(_ *engine.Position, legal []chess.Move) (chess.Move, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.available = legal
	if h.pending == nil {
		return chess.Move{}, false
	}
	move := *h.pending
	h.pending = nil
	return move, true
}

func (h *Interactive) String() string {
	return HumanName
}

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random strategy with its own seeded source.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// DecideMove returns a random legal move, or false if there is none.
func (r *Random) DecideMove(_ *engine.Position, legal []chess.Move) (chess.Move, bool) {
	if len(legal) == 0 {
		return chess.Move{}, false
	}
	return legal[r.rng.Intn(len(legal))], true
}

func (r *Random) String() string {
	return RandomName
}

// SelectMove resolves an origin, a destination and an optional promotion
// kind against the legal list. NoPiece selects the queen on promotions.
func SelectMove(legal []chess.Move, from, to chess.Square, promotion chess.PieceKind) (chess.Move, error) {
	if promotion == chess.NoPiece {
		promotion = chess.Queen
	}
	for _, m := range legal {
		if m.From != from || m.To != to {
			continue
		}
		if m.IsPromotion() && m.PromotionKind() != promotion {
			continue
		}
		return m, nil
	}
	return chess.Move{}, fmt.Errorf("%s%s: %w", from, to, errors.ErrIllegalMove)
}
