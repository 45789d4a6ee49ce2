package provider

import (
	"sync"

	"github.com/chessengine/core/internal/board"
)

// Pipeline holds an ordered, process-wide list of providers and tries
// each in turn, returning the first non-empty candidate list. Mutation
// of the provider list itself (not the providers' internal state,
// which each provider guards on its own) is protected by mu.
type Pipeline struct {
	mu        sync.RWMutex
	providers []Provider
}

// NewPipeline builds a pipeline trying providers in the given order.
func NewPipeline(providers ...Provider) *Pipeline {
	return &Pipeline{providers: providers}
}

// Recommend tries each provider in order and returns the first
// non-empty candidate list, or nil if every provider comes up empty.
func (p *Pipeline) Recommend(pos *board.Position, opts Options) []board.Move {
	p.mu.RLock()
	providers := make([]Provider, len(p.providers))
	copy(providers, p.providers)
	p.mu.RUnlock()

	for _, prov := range providers {
		moves := prov.Recommend(pos, opts)
		if len(moves) > 0 {
			return moves
		}
	}
	return nil
}

// Best returns the single move Recommend's difficulty sampling selects
// from the ranked candidate list, or false if no provider produced one.
func (p *Pipeline) Best(pos *board.Position, opts Options) (board.Move, bool) {
	moves := p.Recommend(pos, opts)
	if len(moves) == 0 {
		return board.Move{}, false
	}
	idx := Sample(len(moves), opts.Difficulty)
	return moves[idx], true
}
