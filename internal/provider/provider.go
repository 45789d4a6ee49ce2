// Package provider implements the move-recommendation pipeline: an
// ordered cascade of opening book, endgame tablebase, and local search,
// plus difficulty-weighted sampling over whichever provider answers.
package provider

import "github.com/chessengine/core/internal/board"

// Provider recommends moves for a position, ranked best-first.
// Implementations must be safe for concurrent use: the pipeline is
// process-wide, shared state.
type Provider interface {
	Recommend(pos *board.Position, opts Options) []board.Move
}
