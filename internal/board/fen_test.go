package board

import "testing"

func TestParseFENStartPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal("ParseFEN:", err)
	}
	if pos.SideToMove != White {
		t.Error("expected white to move")
	}
	if !pos.WhiteShortCastle || !pos.WhiteLongCastle || !pos.BlackShortCastle || !pos.BlackLongCastle {
		t.Error("expected all castling rights held")
	}
	if pos.EnPassant != nil {
		t.Error("expected no en-passant target")
	}
	if pos.MoveCounter != 1 {
		t.Errorf("expected move counter 1, got %d", pos.MoveCounter)
	}
	p := pos.At(Square{FileE, Rank1})
	if p.Kind != King || p.Color != White {
		t.Errorf("expected white king on e1, got %v", p)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		got := pos.ToFEN()
		if got != fen {
			t.Errorf("round trip mismatch: got %q, want %q", got, fen)
		}
	}
}

func TestFENHalfmoveClockIgnoredOnEmission(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 37 12")
	if err != nil {
		t.Fatal("ParseFEN:", err)
	}
	got := pos.ToFEN()
	want := "4k3/8/8/8/8/8/8/4K3 w - - 0 12"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUCIMoveRoundTrip(t *testing.T) {
	cases := []string{"e2e4", "g1f3", "e7e8q", "a7a8n"}
	for _, s := range cases {
		m, err := ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if got := m.String(); got != s {
			t.Errorf("ParseMove(%q).String() = %q", s, got)
		}
	}
}

func TestApplyCastlingRoundTripsThroughKingTwoFiles(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := ParseMove("e1g1")
	if err != nil {
		t.Fatal(err)
	}
	pos.Apply(m)

	rook := pos.At(Square{FileF, Rank1})
	if rook.Kind != Rook || rook.Color != White {
		t.Errorf("expected white rook on f1 after short castle, got %v", rook)
	}
	corner := pos.At(Square{FileH, Rank1})
	if !corner.IsEmpty() {
		t.Errorf("expected h1 empty after short castle, got %v", corner)
	}
	if pos.WhiteShortCastle || pos.WhiteLongCastle {
		t.Error("expected both white castling rights cleared after castling")
	}
}
