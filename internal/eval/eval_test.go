package eval

import (
	"testing"

	"github.com/chessengine/core/internal/board"
)

func TestCompareTotalOrder(t *testing.T) {
	values := []Evaluation{
		OpponentMateIn(1),
		OpponentMateIn(3),
		Rating(-5),
		Draw(),
		Rating(5),
		PlayerMateIn(3),
		PlayerMateIn(1),
	}

	// Antisymmetry: Compare(a,b) and Compare(b,a) must have opposite sign.
	for _, a := range values {
		for _, b := range values {
			ab := sign(a.Compare(b))
			ba := sign(b.Compare(a))
			if ab != -ba {
				t.Errorf("antisymmetry violated for %v vs %v: %d vs %d", a, b, ab, ba)
			}
		}
	}

	// Expected strict order, worst to best, from the mover's perspective.
	ordered := []Evaluation{
		OpponentMateIn(1), // lose fastest is worst
		OpponentMateIn(3), // losing slower is better than losing fast
		Rating(-5),
		Draw(),
		Rating(5),
		PlayerMateIn(3), // winning slower is worse than winning fast
		PlayerMateIn(1), // fastest forced win is best
	}
	for i := 0; i < len(ordered)-1; i++ {
		if ordered[i].Compare(ordered[i+1]) >= 0 {
			t.Errorf("expected %v < %v", ordered[i], ordered[i+1])
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func TestMaxPicksBetter(t *testing.T) {
	if got := Max(Rating(3), Rating(-2)); got != Rating(3) {
		t.Errorf("Max(3,-2) = %v", got)
	}
	if got := Max(PlayerMateIn(5), Rating(1000)); got != PlayerMateIn(5) {
		t.Errorf("Max(mate,rating) = %v", got)
	}
}

func TestUpdateWithOpponentBestCombination(t *testing.T) {
	cases := []struct {
		e, reply, want Evaluation
	}{
		{Rating(3), Rating(2), Rating(1)},
		{Rating(3), OpponentMateIn(2), PlayerMateIn(3)},
		{Rating(3), PlayerMateIn(4), OpponentMateIn(4)},
		{Rating(3), Draw(), Draw()},
	}
	for _, c := range cases {
		got := c.e.UpdateWithOpponentBest(c.reply)
		if got != c.want {
			t.Errorf("UpdateWithOpponentBest(%v, %v) = %v, want %v", c.e, c.reply, got, c.want)
		}
	}
}

func TestUpdateWithOpponentBestLeavesNonRatingUnchanged(t *testing.T) {
	e := PlayerMateIn(2)
	if got := e.UpdateWithOpponentBest(Rating(100)); got != e {
		t.Errorf("expected non-Rating evaluation to pass through unchanged, got %v", got)
	}
}

func TestRateMoveDetectsForcedMate(t *testing.T) {
	// White rook delivers back-rank mate: Ra8 from a1.
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m := board.Move{From: board.Square{File: board.FileA, Rank: board.Rank1}, To: board.Square{File: board.FileA, Rank: board.Rank8}}
	got := RateMove(pos, m, board.White)
	if got != PlayerMateIn(1) {
		t.Errorf("expected PlayerMateIn(1), got %v", got)
	}
}

func TestRateMoveCaptureAddsMaterial(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m := board.Move{From: board.Square{File: board.FileE, Rank: board.Rank4}, To: board.Square{File: board.FileD, Rank: board.Rank5}}
	got := RateMove(pos, m, board.White)
	rating, ok := got.RatingValue()
	if !ok || rating != board.Pawn.Value() {
		t.Errorf("expected a rating of %d for capturing a pawn, got %v", board.Pawn.Value(), got)
	}
}
