package orchestrator

import (
	"context"
	"testing"

	"github.com/chessengine/core/internal/board"
	"github.com/chessengine/core/internal/provider"
)

type stubProvider struct {
	moves []board.Move
}

func (s stubProvider) Recommend(pos *board.Position, opts provider.Options) []board.Move {
	return s.moves
}

func TestCalculateNextMoveFromStartpos(t *testing.T) {
	e4, err := board.ParseMove("e2e4")
	if err != nil {
		t.Fatal(err)
	}
	p := provider.NewPipeline(stubProvider{moves: []board.Move{e4}})
	o := New(p)

	uci, err := o.CalculateNextMove(context.Background(), "", nil, provider.Options{Difficulty: provider.Hard, RecursionDepth: 1})
	if err != nil {
		t.Fatal(err)
	}
	if uci != "e2e4" {
		t.Errorf("expected e2e4, got %q", uci)
	}
}

func TestCalculateNextMoveAppliesSuppliedMoves(t *testing.T) {
	e5, err := board.ParseMove("e7e5")
	if err != nil {
		t.Fatal(err)
	}
	p := provider.NewPipeline(stubProvider{moves: []board.Move{e5}})
	o := New(p)

	uci, err := o.CalculateNextMove(context.Background(), "", []string{"e2e4"}, provider.Options{Difficulty: provider.Hard, RecursionDepth: 1})
	if err != nil {
		t.Fatal(err)
	}
	if uci != "e7e5" {
		t.Errorf("expected e7e5, got %q", uci)
	}
}

func TestCalculateNextMoveReturnsEmptyWhenNoProviderHasAMove(t *testing.T) {
	p := provider.NewPipeline(stubProvider{})
	o := New(p)

	uci, err := o.CalculateNextMove(context.Background(), "", nil, provider.Options{RecursionDepth: 1})
	if err != nil {
		t.Fatal(err)
	}
	if uci != "" {
		t.Errorf("expected empty result, got %q", uci)
	}
}

func TestCalculateNextMoveCancelledByCancelledContext(t *testing.T) {
	p := provider.NewPipeline(stubProvider{})
	o := New(p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.CalculateNextMove(ctx, "", nil, provider.Options{RecursionDepth: 1})
	if err != ErrCancelled {
		t.Errorf("expected ErrCancelled, got %v", err)
	}
}

func TestCalculateNextMoveInvalidFENReturnsError(t *testing.T) {
	p := provider.NewPipeline(stubProvider{})
	o := New(p)

	_, err := o.CalculateNextMove(context.Background(), "not a fen", nil, provider.Options{RecursionDepth: 1})
	if err == nil {
		t.Error("expected an error for invalid FEN")
	}
}

func TestBeginRegistersCancelBeforeResolveRuns(t *testing.T) {
	p := provider.NewPipeline(stubProvider{moves: []board.Move{mustMove(t, "e2e4")}})
	o := New(p)

	// Begin is synchronous: by the time it returns, a Stop is
	// guaranteed to observe the cancel func it just registered, even
	// though Resolve (the part that can block) hasn't run yet.
	ctx := o.Begin(context.Background())
	o.Stop()

	_, err := o.Resolve(ctx, "", nil, provider.Options{RecursionDepth: 1})
	if err != ErrCancelled {
		t.Errorf("expected ErrCancelled, got %v", err)
	}
}

func mustMove(t *testing.T, s string) board.Move {
	t.Helper()
	m, err := board.ParseMove(s)
	if err != nil {
		t.Fatal(err)
	}
	return m
}
