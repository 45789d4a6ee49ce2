package provider

import (
	"context"

	"github.com/chessengine/core/internal/board"
	"github.com/chessengine/core/internal/search"
)

// Negamax always produces a recommendation (when any legal move
// exists) by running the bounded-depth search to opts.RecursionDepth.
type Negamax struct{}

// NewNegamax returns a Negamax provider.
func NewNegamax() *Negamax { return &Negamax{} }

func (n *Negamax) Recommend(pos *board.Position, opts Options) []board.Move {
	depth := opts.RecursionDepth
	if depth < 1 {
		depth = 1
	}
	results, err := search.SearchRoot(context.Background(), pos, pos.SideToMove, depth)
	if err != nil {
		return nil
	}
	moves := make([]board.Move, len(results))
	for i, r := range results {
		moves[i] = r.Move
	}
	return moves
}
