package uci

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/chessengine/core/internal/board"
	"github.com/chessengine/core/internal/orchestrator"
	"github.com/chessengine/core/internal/provider"
)

type stubProvider struct {
	moves []board.Move
}

func (s stubProvider) Recommend(pos *board.Position, opts provider.Options) []board.Move {
	return s.moves
}

// blockingProvider never answers until release is closed, simulating a
// search still in flight when "stop" arrives.
type blockingProvider struct {
	release chan struct{}
	moves   []board.Move
}

func (b blockingProvider) Recommend(pos *board.Position, opts provider.Options) []board.Move {
	<-b.release
	return b.moves
}

func newTestUCI(t *testing.T, moves ...string) (*UCI, *bytes.Buffer) {
	t.Helper()
	var boardMoves []board.Move
	for _, s := range moves {
		m, err := board.ParseMove(s)
		if err != nil {
			t.Fatal(err)
		}
		boardMoves = append(boardMoves, m)
	}
	p := provider.NewPipeline(stubProvider{moves: boardMoves})
	var out bytes.Buffer
	return New(orchestrator.New(p), &out), &out
}

func TestUCIHandshake(t *testing.T) {
	u, out := newTestUCI(t, "e2e4")
	u.Run(strings.NewReader("uci\n"))
	got := out.String()
	if !strings.Contains(got, "id name") || !strings.Contains(got, "uciok") {
		t.Errorf("expected id/uciok handshake, got %q", got)
	}
	if !strings.Contains(got, "option name Difficulty") || !strings.Contains(got, "option name RecursiveDepth") {
		t.Errorf("expected Difficulty/RecursiveDepth options, got %q", got)
	}
}

func TestUCIIsReady(t *testing.T) {
	u, out := newTestUCI(t)
	u.Run(strings.NewReader("isready\n"))
	if strings.TrimSpace(out.String()) != "readyok" {
		t.Errorf("expected readyok, got %q", out.String())
	}
}

func TestUCIStartposGoEmitsBestmove(t *testing.T) {
	u, out := newTestUCI(t, "e2e4")
	u.Run(strings.NewReader("position startpos\ngo\n"))
	if !strings.Contains(out.String(), "bestmove e2e4") {
		t.Errorf("expected bestmove e2e4, got %q", out.String())
	}
}

func TestUCIPositionWithMovesThenGo(t *testing.T) {
	u, out := newTestUCI(t, "e7e5")
	u.Run(strings.NewReader("position startpos moves e2e4\ngo\n"))
	if !strings.Contains(out.String(), "bestmove e7e5") {
		t.Errorf("expected bestmove e7e5, got %q", out.String())
	}
}

func TestUCISetOptionDifficultyAndDepth(t *testing.T) {
	u, _ := newTestUCI(t)
	u.Run(strings.NewReader("setoption name Difficulty value HARD\nsetoption name RecursiveDepth value 3\n"))
	if u.difficulty != provider.Hard {
		t.Errorf("expected Hard difficulty, got %v", u.difficulty)
	}
	if u.recursionDepth != 3 {
		t.Errorf("expected depth 3, got %d", u.recursionDepth)
	}
}

func TestUCIUnknownLeadingTokenIsSkipped(t *testing.T) {
	u, out := newTestUCI(t)
	u.Run(strings.NewReader("garbage isready\n"))
	if strings.TrimSpace(out.String()) != "readyok" {
		t.Errorf("expected the parser to skip the unknown token and still handle isready, got %q", out.String())
	}
}

func TestUCIQuitStopsTheLoop(t *testing.T) {
	u, out := newTestUCI(t)
	// If quit did not stop the loop, the reader would be consumed
	// past "quit" and "isready" would be handled as a second command,
	// writing "readyok".
	u.Run(strings.NewReader("quit\nisready\n"))
	if strings.Contains(out.String(), "readyok") {
		t.Errorf("expected no command after quit to be handled, got %q", out.String())
	}
}

func TestUCIStopDuringGoCancelsSearchWithoutBlockingTheLoop(t *testing.T) {
	release := make(chan struct{})
	e4, err := board.ParseMove("e2e4")
	if err != nil {
		t.Fatal(err)
	}
	p := provider.NewPipeline(blockingProvider{release: release, moves: []board.Move{e4}})
	var out bytes.Buffer
	u := New(orchestrator.New(p), &out)

	done := make(chan struct{})
	go func() {
		// "go" must return immediately so dispatch can reach "stop" and
		// "quit" while the search is still blocked on release.
		u.Run(strings.NewReader("position startpos\ngo\nstop\nquit\n"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal(`Run did not return; "go" appears to have blocked the read loop so "stop"/"quit" were never processed`)
	}

	close(release)
	if strings.Contains(out.String(), "bestmove") {
		t.Errorf("expected stop to cancel the search before it produced a move, got %q", out.String())
	}
}
