// Package rules implements the chess rules engine: pseudo-legal move
// generation per piece kind, the attacked-square predicate, castling
// legality, and legal-move filtering via check detection.
package rules

import "github.com/chessengine/core/internal/board"

var knightOffsets = [8][2]int{
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var rookDirections = [4][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

var bishopDirections = [4][2]int{
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var queenDirections = append(append([][2]int{}, rookDirections[:]...), bishopDirections[:]...)

// sightScan lists the successive squares along direction (df, dr) from
// sq, stopping at and including the first occupied square. Rook,
// bishop, and queen move generation walk this list and stop a capture
// short of a friendly piece.
func sightScan(pos *board.Position, sq board.Square, df, dr int) []board.Square {
	var squares []board.Square
	file, rank := sq.File.Index(), sq.Rank.Index()
	for {
		file += df
		rank += dr
		if !board.OnBoard(file, rank) {
			break
		}
		next := board.NewSquare(file, rank)
		squares = append(squares, next)
		if !pos.At(next).IsEmpty() {
			break
		}
	}
	return squares
}

// isAttacked reports whether sq is attacked by any piece of color by in
// position pos.
func isAttacked(pos *board.Position, sq board.Square, by board.Color) bool {
	// Pawn: an opposite-direction diagonal scan detects attacking pawns.
	// A square attacked by white pawns has white pawns one rank below.
	pawnRankDelta := -1
	if by == board.Black {
		pawnRankDelta = 1
	}
	for _, df := range [2]int{-1, 1} {
		file := sq.File.Index() + df
		rank := sq.Rank.Index() + pawnRankDelta
		if !board.OnBoard(file, rank) {
			continue
		}
		piece := pos.At(board.NewSquare(file, rank))
		if piece.Kind == board.Pawn && piece.Color == by {
			return true
		}
	}

	// Knight.
	for _, off := range knightOffsets {
		file := sq.File.Index() + off[0]
		rank := sq.Rank.Index() + off[1]
		if !board.OnBoard(file, rank) {
			continue
		}
		piece := pos.At(board.NewSquare(file, rank))
		if piece.Kind == board.Knight && piece.Color == by {
			return true
		}
	}

	// Rook/queen orthogonal sight.
	for _, dir := range rookDirections {
		scan := sightScan(pos, sq, dir[0], dir[1])
		if len(scan) == 0 {
			continue
		}
		last := scan[len(scan)-1]
		piece := pos.At(last)
		if piece.Color == by && (piece.Kind == board.Rook || piece.Kind == board.Queen) {
			return true
		}
	}

	// Bishop/queen diagonal sight.
	for _, dir := range bishopDirections {
		scan := sightScan(pos, sq, dir[0], dir[1])
		if len(scan) == 0 {
			continue
		}
		last := scan[len(scan)-1]
		piece := pos.At(last)
		if piece.Color == by && (piece.Kind == board.Bishop || piece.Kind == board.Queen) {
			return true
		}
	}

	// King.
	for _, off := range kingOffsets {
		file := sq.File.Index() + off[0]
		rank := sq.Rank.Index() + off[1]
		if !board.OnBoard(file, rank) {
			continue
		}
		piece := pos.At(board.NewSquare(file, rank))
		if piece.Kind == board.King && piece.Color == by {
			return true
		}
	}

	return false
}
