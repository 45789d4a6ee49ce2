package provider

import (
	"github.com/chessengine/core/internal/board"
	"github.com/chessengine/core/internal/cache"
)

const (
	endgameNamespace = "endgame"
	endgameMaxPieces = 7
)

// endgameSource is the remote lookup Endgame delegates to; satisfied by
// *remote.EndgameClient.
type endgameSource interface {
	Recommend(pos *board.Position) []board.Move
}

// Endgame consults an external tablebase service, but only for
// positions with few enough pieces left for the table to cover.
type Endgame struct {
	source endgameSource
	store  *cache.Store // optional; nil disables caching
}

// NewEndgame returns an Endgame provider backed by source, optionally
// caching responses in store (pass nil to disable caching).
func NewEndgame(source endgameSource, store *cache.Store) *Endgame {
	return &Endgame{source: source, store: store}
}

func (e *Endgame) Recommend(pos *board.Position, _ Options) []board.Move {
	if pos.PieceCount() > endgameMaxPieces {
		return nil
	}

	if e.store != nil {
		if moves, ok := e.store.Get(endgameNamespace, pos); ok {
			return moves
		}
	}

	moves := e.source.Recommend(pos)

	if e.store != nil {
		if err := e.store.Put(endgameNamespace, pos, moves); err != nil {
			_ = err
		}
	}

	return moves
}
