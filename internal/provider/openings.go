package provider

import (
	"sync"

	"github.com/chessengine/core/internal/board"
	"github.com/chessengine/core/internal/cache"
)

const openingsNamespace = "openings"

// openingsSource is the remote lookup Openings delegates to; satisfied
// by *remote.OpeningsClient.
type openingsSource interface {
	Recommend(pos *board.Position) []board.Move
}

// Openings consults an external opening-book service. Once the service
// has answered empty for any position, outOfBook latches true and every
// later call returns empty immediately without a network round trip —
// the book is assumed exhausted for the remainder of the game.
type Openings struct {
	source openingsSource
	store  *cache.Store // optional; nil disables caching

	mu        sync.Mutex
	outOfBook bool
}

// NewOpenings returns an Openings provider backed by source, optionally
// caching responses in store (pass nil to disable caching).
func NewOpenings(source openingsSource, store *cache.Store) *Openings {
	return &Openings{source: source, store: store}
}

func (o *Openings) Recommend(pos *board.Position, _ Options) []board.Move {
	o.mu.Lock()
	outOfBook := o.outOfBook
	o.mu.Unlock()
	if outOfBook {
		return nil
	}

	if o.store != nil {
		if moves, ok := o.store.Get(openingsNamespace, pos); ok {
			if len(moves) == 0 {
				o.markOutOfBook()
			}
			return moves
		}
	}

	moves := o.source.Recommend(pos)

	if o.store != nil {
		if err := o.store.Put(openingsNamespace, pos, moves); err != nil {
			// Caching is an optimization; a write failure does not
			// prevent returning the freshly fetched moves.
			_ = err
		}
	}

	if len(moves) == 0 {
		o.markOutOfBook()
	}
	return moves
}

func (o *Openings) markOutOfBook() {
	o.mu.Lock()
	o.outOfBook = true
	o.mu.Unlock()
}

// OutOfBook reports whether the opening service has been observed
// empty for some position already, per the monotonic false→true flag.
func (o *Openings) OutOfBook() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.outOfBook
}
