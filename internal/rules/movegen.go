package rules

import "github.com/chessengine/core/internal/board"

// LegalMoves returns all legal moves for side c in position pos: the
// pseudo-legal moves of every piece of color c, with any move that
// leaves c's own king in check discarded. Filtering is performed on
// cloned positions.
func LegalMoves(pos *board.Position, c board.Color) []board.Move {
	pseudo := pseudoLegalMoves(pos, c)
	legal := make([]board.Move, 0, len(pseudo))
	for _, m := range pseudo {
		clone := pos.Clone()
		clone.Apply(m)
		if !IsInCheck(clone, c) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsInCheck reports whether side c's king is attacked in pos.
func IsInCheck(pos *board.Position, c board.Color) bool {
	kingSq, ok := pos.KingSquare(c)
	if !ok {
		// Invalid position (missing king); treated as non-fatal.
		return false
	}
	return isAttacked(pos, kingSq, c.Other())
}

// IsCheckmated reports whether c is checkmated: c is in check, c has no
// legal moves, and it is c's turn to move.
func IsCheckmated(pos *board.Position, c board.Color) bool {
	if pos.SideToMove != c {
		return false
	}
	if !IsInCheck(pos, c) {
		return false
	}
	return len(LegalMoves(pos, c)) == 0
}

// pseudoLegalMoves returns the pseudo-legal moves of every piece of
// color c, ignoring whether they leave c's own king in check.
func pseudoLegalMoves(pos *board.Position, c board.Color) []board.Move {
	var moves []board.Move
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			sq := board.NewSquare(f, r)
			piece := pos.At(sq)
			if piece.IsEmpty() || piece.Color != c {
				continue
			}
			switch piece.Kind {
			case board.Pawn:
				moves = append(moves, pawnMoves(pos, sq, c)...)
			case board.Knight:
				moves = append(moves, knightMoves(pos, sq, c)...)
			case board.Bishop:
				moves = append(moves, slidingMoves(pos, sq, c, bishopDirections[:])...)
			case board.Rook:
				moves = append(moves, slidingMoves(pos, sq, c, rookDirections[:])...)
			case board.Queen:
				moves = append(moves, slidingMoves(pos, sq, c, queenDirections)...)
			case board.King:
				moves = append(moves, kingMoves(pos, sq, c)...)
			}
		}
	}
	return moves
}

// pawnMoves generates pseudo-legal pawn moves from sq: single and
// double forward pushes, diagonal captures, en-passant, and queen
// promotion on the last rank. Under-promotion is never generated.
func pawnMoves(pos *board.Position, sq board.Square, c board.Color) []board.Move {
	var moves []board.Move

	direction := 1
	homeRank := 1
	lastRank := 7
	if c == board.Black {
		direction = -1
		homeRank = 6
		lastRank = 0
	}

	file, rank := sq.File.Index(), sq.Rank.Index()

	addPawnMove := func(to board.Square) {
		if to.Rank.Index() == lastRank {
			moves = append(moves, board.Move{From: sq, To: to, Promotion: board.Queen})
		} else {
			moves = append(moves, board.Move{From: sq, To: to})
		}
	}

	// Forward one.
	oneRank := rank + direction
	if board.OnBoard(file, oneRank) {
		oneSq := board.NewSquare(file, oneRank)
		if pos.At(oneSq).IsEmpty() {
			addPawnMove(oneSq)

			// Forward two from home rank, both intermediate and
			// destination unoccupied.
			twoRank := rank + 2*direction
			if rank == homeRank && board.OnBoard(file, twoRank) {
				twoSq := board.NewSquare(file, twoRank)
				if pos.At(twoSq).IsEmpty() {
					moves = append(moves, board.Move{From: sq, To: twoSq})
				}
			}
		}
	}

	// Diagonal captures.
	for _, df := range [2]int{-1, 1} {
		captureFile := file + df
		if !board.OnBoard(captureFile, oneRank) {
			continue
		}
		captureSq := board.NewSquare(captureFile, oneRank)
		target := pos.At(captureSq)
		if !target.IsEmpty() && target.Color != c {
			addPawnMove(captureSq)
		}
	}

	// En-passant: capturing pawn on rank 5 (white) / rank 4 (black),
	// target one file away.
	epRank := 4
	if c == board.Black {
		epRank = 3
	}
	if rank == epRank && pos.EnPassant != nil {
		ep := *pos.EnPassant
		if ep.Rank.Index() == oneRank && abs(ep.File.Index()-file) == 1 {
			moves = append(moves, board.Move{From: sq, To: ep})
		}
	}

	return moves
}

func knightMoves(pos *board.Position, sq board.Square, c board.Color) []board.Move {
	var moves []board.Move
	file, rank := sq.File.Index(), sq.Rank.Index()
	for _, off := range knightOffsets {
		f, r := file+off[0], rank+off[1]
		if !board.OnBoard(f, r) {
			continue
		}
		to := board.NewSquare(f, r)
		target := pos.At(to)
		if target.IsEmpty() || target.Color != c {
			moves = append(moves, board.Move{From: sq, To: to})
		}
	}
	return moves
}

// slidingMoves generates rook/bishop/queen moves via sightScan, keeping
// empty or opponent-occupied destinations.
func slidingMoves(pos *board.Position, sq board.Square, c board.Color, directions [][2]int) []board.Move {
	var moves []board.Move
	for _, dir := range directions {
		for _, to := range sightScan(pos, sq, dir[0], dir[1]) {
			target := pos.At(to)
			if target.IsEmpty() || target.Color != c {
				moves = append(moves, board.Move{From: sq, To: to})
			}
		}
	}
	return moves
}

func kingMoves(pos *board.Position, sq board.Square, c board.Color) []board.Move {
	var moves []board.Move
	file, rank := sq.File.Index(), sq.Rank.Index()
	opponent := c.Other()

	for _, off := range kingOffsets {
		f, r := file+off[0], rank+off[1]
		if !board.OnBoard(f, r) {
			continue
		}
		to := board.NewSquare(f, r)
		target := pos.At(to)
		if target.IsEmpty() || target.Color != c {
			if !isAttacked(pos, to, opponent) {
				moves = append(moves, board.Move{From: sq, To: to})
			}
		}
	}

	moves = append(moves, castlingMoves(pos, sq, c)...)
	return moves
}

// castlingMoves generates the (up to two) legal castling moves for the
// king on sq: the matching right is held, the intermediate files are
// empty, the king is not currently in check, and the two squares it
// traverses are not attacked.
func castlingMoves(pos *board.Position, sq board.Square, c board.Color) []board.Move {
	var moves []board.Move

	homeRank := board.Rank1
	if c == board.Black {
		homeRank = board.Rank8
	}
	if sq != (board.Square{File: board.FileE, Rank: homeRank}) {
		return nil
	}

	opponent := c.Other()
	if isAttacked(pos, sq, opponent) {
		return nil
	}

	hasShort := pos.WhiteShortCastle
	hasLong := pos.WhiteLongCastle
	if c == board.Black {
		hasShort = pos.BlackShortCastle
		hasLong = pos.BlackLongCastle
	}

	empty := func(files ...board.File) bool {
		for _, f := range files {
			if !pos.At(board.Square{File: f, Rank: homeRank}).IsEmpty() {
				return false
			}
		}
		return true
	}
	safe := func(files ...board.File) bool {
		for _, f := range files {
			if isAttacked(pos, board.Square{File: f, Rank: homeRank}, opponent) {
				return false
			}
		}
		return true
	}

	if hasShort && empty(board.FileF, board.FileG) && safe(board.FileF, board.FileG) {
		moves = append(moves, board.Move{From: sq, To: board.Square{File: board.FileG, Rank: homeRank}})
	}
	if hasLong && empty(board.FileB, board.FileC, board.FileD) && safe(board.FileC, board.FileD) {
		moves = append(moves, board.Move{From: sq, To: board.Square{File: board.FileC, Rank: homeRank}})
	}

	return moves
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
