package engine

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := p.LegalMoves(p.toMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		child := p.scratch()
		child.applyMove(move)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// Divide runs Perft below each legal root move in parallel and returns the
// node count per move, keyed by its UCI text. Each goroutine works on its
// own copy of the position.
func Divide(ctx context.Context, p *Position, depth int) (map[string]uint64, error) {
	moves := p.LegalMoves(p.toMove)
	counts := make(map[string]uint64, len(moves))
	if depth <= 0 {
		return counts, nil
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, move := range moves {
		move := move
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child := p.scratch()
			child.applyMove(move)
			n := Perft(child, depth-1)

			mu.Lock()
			counts[move.UCI()] = n
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}
