package cache

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/chessengine/core/internal/board"
)

// Store persists provider responses in a BadgerDB keyed by a namespace
// prefix ("openings" or "endgame") and the position's FEN.
type Store struct {
	db *badger.DB
}

// Open opens (creating if absent) the BadgerDB at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func cacheKey(namespace string, pos *board.Position) []byte {
	return []byte(namespace + ":" + pos.ToFEN())
}

// Get looks up a cached move list for pos under namespace. ok is false
// on a cache miss or any decode error — the caller should treat it the
// same as a miss and re-fetch from the remote service.
func (s *Store) Get(namespace string, pos *board.Position) (moves []board.Move, ok bool) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(namespace, pos))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var uciMoves []string
			if err := json.Unmarshal(val, &uciMoves); err != nil {
				return err
			}
			for _, u := range uciMoves {
				m, err := board.ParseMove(u)
				if err != nil {
					continue
				}
				moves = append(moves, m)
			}
			return nil
		})
	})
	if err != nil {
		return nil, false
	}
	return moves, true
}

// Put stores moves under namespace and pos's FEN, overwriting any
// previous entry. Storing an empty list caches a negative result too
// (e.g. a position the opening book has nothing for).
func (s *Store) Put(namespace string, pos *board.Position, moves []board.Move) error {
	uciMoves := make([]string, len(moves))
	for i, m := range moves {
		uciMoves[i] = m.String()
	}
	data, err := json.Marshal(uciMoves)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(namespace, pos), data)
	})
}
