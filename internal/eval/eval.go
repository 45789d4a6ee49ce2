// Package eval provides static evaluation of a single move applied to a
// position, and the Evaluation variant type search results are compared
// and combined through.
package eval

import (
	"fmt"

	"github.com/chessengine/core/internal/board"
	"github.com/chessengine/core/internal/rules"
)

// kind distinguishes the four Evaluation variants.
type kind uint8

const (
	kindRating kind = iota
	kindPlayerMateIn
	kindOpponentMateIn
	kindDraw
)

// Evaluation is a sum-of-four-variants result type: a signed centipawn
// Rating, a forced PlayerMateIn(n)/OpponentMateIn(n)
// mate distance, or an assumed Draw. Construct one with the Rating,
// PlayerMateIn, OpponentMateIn, or Draw() functions; do not set the
// fields directly.
type Evaluation struct {
	k kind
	n int // rating value for kindRating, ply count for the mate variants
}

// Rating constructs a plain signed centipawn evaluation.
func Rating(i int) Evaluation { return Evaluation{k: kindRating, n: i} }

// PlayerMateIn constructs an evaluation meaning the mover has a forced
// checkmate in n plies.
func PlayerMateIn(n int) Evaluation { return Evaluation{k: kindPlayerMateIn, n: n} }

// OpponentMateIn constructs an evaluation meaning the opponent has a
// forced checkmate in n plies.
func OpponentMateIn(n int) Evaluation { return Evaluation{k: kindOpponentMateIn, n: n} }

// Draw constructs an assumed-forced-draw evaluation.
func Draw() Evaluation { return Evaluation{k: kindDraw} }

// IsRating reports whether e is a plain Rating (neither a mate
// distance nor a draw). Negamax recursion stops descending once a node
// is not a plain Rating.
func (e Evaluation) IsRating() bool { return e.k == kindRating }

// RatingValue returns the centipawn value and true if e is a plain Rating.
func (e Evaluation) RatingValue() (int, bool) {
	if e.k != kindRating {
		return 0, false
	}
	return e.n, true
}

func (e Evaluation) String() string {
	switch e.k {
	case kindRating:
		return fmt.Sprintf("cp(%d)", e.n)
	case kindPlayerMateIn:
		return fmt.Sprintf("+mate(%d)", e.n)
	case kindOpponentMateIn:
		return fmt.Sprintf("-mate(%d)", e.n)
	default:
		return "draw"
	}
}

// Compare orders evaluations from the mover's perspective:
//   - PlayerMateIn beats everything except another PlayerMateIn, and
//     among PlayerMateIn values a smaller n (faster mate) is better;
//   - OpponentMateIn loses to everything except another OpponentMateIn,
//     and among them a larger n (a more delayed loss) is better;
//   - Draw beats a negative Rating, loses to a positive one, ties at 0;
//   - two Ratings compare numerically.
//
// Compare returns a negative number if e < other, zero if equal, and a
// positive number if e > other — the shape sort.Slice and max want.
func (e Evaluation) Compare(other Evaluation) int {
	rank := func(v Evaluation) int {
		switch v.k {
		case kindOpponentMateIn:
			return 0
		case kindDraw, kindRating:
			return 1
		case kindPlayerMateIn:
			return 2
		}
		return 1
	}

	re, ro := rank(e), rank(other)
	if re != ro {
		return re - ro
	}

	switch e.k {
	case kindPlayerMateIn:
		// Smaller n is better, so reverse the numeric comparison.
		return other.n - e.n
	case kindOpponentMateIn:
		// Larger n is better (delay the loss).
		return e.n - other.n
	case kindDraw:
		if other.k == kindDraw {
			return 0
		}
		return -other.n // Draw vs Rating: beats negative, loses to positive, ties at 0.
	default: // kindRating
		if other.k == kindDraw {
			return e.n
		}
		return e.n - other.n
	}
}

// Max returns the better of a and b per Compare.
func Max(a, b Evaluation) Evaluation {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

// UpdateWithOpponentBest combines a plain-Rating node evaluation e with
// the best reply the opponent found at the next ply. If e is not a
// plain Rating it is returned unchanged — it already represents a
// terminal outcome (a forced mate or, trivially, a draw) that no reply
// can improve on.
func (e Evaluation) UpdateWithOpponentBest(bestReply Evaluation) Evaluation {
	if !e.IsRating() {
		return e
	}
	switch bestReply.k {
	case kindRating:
		return Rating(e.n - bestReply.n)
	case kindOpponentMateIn:
		// The opponent's opponent (us) is mated in bestReply.n from
		// their view; from ours, we force mate in n+1 against them.
		return PlayerMateIn(bestReply.n + 1)
	case kindPlayerMateIn:
		// The opponent mates us in bestReply.n.
		return OpponentMateIn(bestReply.n)
	default: // kindDraw
		return Draw()
	}
}

// RateMove applies m on a clone of pos and returns the resulting
// Evaluation from color's perspective.
func RateMove(pos *board.Position, m board.Move, color board.Color) Evaluation {
	captured := pos.At(m.To)

	clone := pos.Clone()
	clone.Apply(m)

	opponent := color.Other()
	if rules.IsCheckmated(clone, opponent) {
		return PlayerMateIn(1)
	}

	sum := 0
	if !captured.IsEmpty() {
		// A pseudo-legal capture by color can only ever land on an
		// opponent piece, so a "subtract own captured piece" branch
		// would be dead code and is not present here.
		if captured.Color != color {
			sum += captured.Kind.Value()
		}
	}
	if rules.IsInCheck(clone, color) {
		sum--
	}
	if rules.IsInCheck(clone, opponent) {
		sum++
	}

	return Rating(sum)
}
