// Package search implements a bounded-depth negamax search: a recursive
// position evaluation with a parallel, data-parallel root fan-out.
package search

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/chessengine/core/internal/board"
	"github.com/chessengine/core/internal/eval"
	"github.com/chessengine/core/internal/rules"
)

// Negamax evaluates candidate move m played in pos at ply d, to a
// maximum ply maxPly, from color's perspective. d counts the plies
// already played below the root (0 for a root move), so m is ply d+1
// and maxPly 1 returns the static rating of m.
func Negamax(pos *board.Position, m board.Move, d int, color board.Color, maxPly int) eval.Evaluation {
	e := eval.RateMove(pos, m, color)
	if d+1 >= maxPly || !e.IsRating() {
		return e
	}

	next := pos.Clone()
	next.Apply(m)

	replies := rules.LegalMoves(next, next.SideToMove)
	if len(replies) == 0 {
		// No reply at all — including stalemate, which this scores as
		// a draw rather than distinguishing it from checkmate.
		return eval.Draw()
	}

	best := Negamax(next, replies[0], d+1, next.SideToMove, maxPly)
	for _, reply := range replies[1:] {
		candidate := Negamax(next, reply, d+1, next.SideToMove, maxPly)
		best = eval.Max(best, candidate)
	}

	return e.UpdateWithOpponentBest(best)
}

// Result pairs a root move with its negamax evaluation.
type Result struct {
	Move board.Move
	Eval eval.Evaluation
}

// SearchRoot enumerates the legal moves of color in pos, evaluates each
// in parallel to maxPly, and returns them ordered best-first — the
// ordering the provider pipeline's difficulty sampling assumes when it
// treats index 0 as the best move.
//
// Each root branch runs as its own errgroup task. The search itself is
// CPU-bound and does not poll cancellation: once started, every branch
// runs to completion regardless of ctx. ctx is threaded through only so
// the fan-out composes with errgroup the way the rest of this module's
// concurrency does; only the outer orchestrator races the finished
// result against cancellation.
func SearchRoot(ctx context.Context, pos *board.Position, color board.Color, maxPly int) ([]Result, error) {
	roots := rules.LegalMoves(pos, color)
	if len(roots) == 0 {
		return nil, nil
	}

	results := make([]Result, len(roots))

	g, _ := errgroup.WithContext(ctx)
	for i, m := range roots {
		i, m := i, m
		g.Go(func() error {
			results[i] = Result{Move: m, Eval: Negamax(pos, m, 0, color, maxPly)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Eval.Compare(results[j].Eval) > 0
	})

	return results, nil
}
