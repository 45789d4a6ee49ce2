package board

import "fmt"

// Move is a single chess move: the origin and destination squares, plus
// an optional promotion piece kind. A castle is encoded as the king
// moving two files on its home rank; an en-passant capture is encoded
// as the pawn moving diagonally onto the position's en-passant target.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind // NoPieceKind if this move is not a promotion
}

// IsPromotion reports whether the move carries a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceKind
}

// String returns the UCI move text: "<from><to>[promotion]".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Char())
	}
	return s
}

// ParseMove parses UCI move text ("e2e4", "e7e8q") into a Move. It does
// not consult a position and so cannot detect castling or en-passant;
// callers that need the fully-flagged move should match the result
// against a legal move by From/To/Promotion (see rules.LegalMoves).
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("board: invalid move text %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("board: invalid move text %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("board: invalid move text %q: %w", s, err)
	}
	promo := NoPieceKind
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return Move{}, fmt.Errorf("board: invalid promotion in move text %q", s)
		}
	}
	return Move{From: from, To: to, Promotion: promo}, nil
}
