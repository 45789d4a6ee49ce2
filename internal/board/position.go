package board

import "fmt"

// Position aggregates the full state of a chess game at one point in
// time: piece placement, side to move, castling rights, the en-passant
// target, and the move counter.
//
// A Position is constructed empty by NewPosition (or populated by
// ParseFEN), then mutated only by Apply. Clone produces an independent
// copy for search branches — no Position is ever shared mutably between
// goroutines.
type Position struct {
	squares [8][8]Piece // squares[file][rank]

	SideToMove Color

	WhiteShortCastle bool
	WhiteLongCastle  bool
	BlackShortCastle bool
	BlackLongCastle  bool

	// EnPassant is the square a pawn just passed over, or nil if none.
	EnPassant *Square

	// MoveCounter is a positive, strictly non-decreasing move counter
	// (the FEN fullmove number).
	MoveCounter int
}

// NewPosition returns an empty position: no pieces, white to move, all
// castling rights held, no en-passant target, move counter 1.
func NewPosition() *Position {
	return &Position{
		SideToMove:       White,
		WhiteShortCastle: true,
		WhiteLongCastle:  true,
		BlackShortCastle: true,
		BlackLongCastle:  true,
		MoveCounter:      1,
	}
}

// At returns the piece occupying sq, or the zero Piece if empty.
func (p *Position) At(sq Square) Piece {
	return p.squares[sq.File][sq.Rank]
}

// Set places piece (possibly empty) on sq.
func (p *Position) Set(sq Square, piece Piece) {
	p.squares[sq.File][sq.Rank] = piece
}

// Clone returns an independent deep copy of the position. Search
// branches clone per-move; clones share no mutable state.
func (p *Position) Clone() *Position {
	clone := *p
	if p.EnPassant != nil {
		ep := *p.EnPassant
		clone.EnPassant = &ep
	}
	return &clone
}

// KingSquare returns the square holding c's king, and false if c has no
// king on the board (an invalid position).
func (p *Position) KingSquare(c Color) (Square, bool) {
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			sq := NewSquare(f, r)
			piece := p.At(sq)
			if piece.Kind == King && piece.Color == c {
				return sq, true
			}
		}
	}
	return Square{}, false
}

// PieceCount returns the total number of pieces on the board.
func (p *Position) PieceCount() int {
	n := 0
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			if !p.squares[f][r].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// String returns a human-readable board dump, for debugging.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.At(NewSquare(file, rank))
			if piece.IsEmpty() {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	ep := "-"
	if p.EnPassant != nil {
		ep = p.EnPassant.String()
	}
	s += fmt.Sprintf("En passant: %s\n", ep)
	s += fmt.Sprintf("Move counter: %d\n", p.MoveCounter)
	return s
}
