// Package orchestrator turns a FEN-plus-move-history request into a
// recommended move: it decodes the position, applies the moves, and
// hands the result to the provider pipeline, racing the computation
// against cancellation.
package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/chessengine/core/internal/board"
	"github.com/chessengine/core/internal/provider"
)

// ErrCancelled is returned when a computation is superseded by a new
// one, or explicitly cancelled, before it produces a move.
var ErrCancelled = fmt.Errorf("orchestrator: computation cancelled")

// Orchestrator runs one move computation at a time. Starting a new one
// cancels whichever computation is still in flight; only its own
// result can ever be observed afterward.
type Orchestrator struct {
	pipeline *provider.Pipeline

	mu     sync.Mutex
	cancel context.CancelFunc
}

// New returns an Orchestrator that recommends moves via pipeline.
func New(pipeline *provider.Pipeline) *Orchestrator {
	return &Orchestrator{pipeline: pipeline}
}

// Begin registers a new in-flight computation, cancelling whichever one
// is already running on this Orchestrator, and returns the context it
// runs under. It is synchronous so a caller that starts a search in a
// goroutine can call Begin on its own goroutine first: a Stop (or a
// subsequent Begin) issued immediately afterward is then guaranteed to
// observe the registered cancel func, rather than racing the search
// goroutine to register it.
func (o *Orchestrator) Begin(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)

	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
	}
	o.cancel = cancel
	o.mu.Unlock()

	return ctx
}

// Resolve decodes fen (or the starting position if fen is empty),
// applies moves in order, asks the pipeline for a recommended move
// under opts, and returns it as UCI move text, racing the computation
// against ctx (as returned by Begin) being cancelled.
func (o *Orchestrator) Resolve(ctx context.Context, fen string, moves []string, opts provider.Options) (string, error) {
	pos, err := decodePosition(fen, moves)
	if err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ErrCancelled
	default:
	}

	done := make(chan string, 1)
	go func() {
		best, ok := o.pipeline.Best(pos, opts)
		if !ok {
			done <- ""
			return
		}
		done <- best.String()
	}()

	select {
	case <-ctx.Done():
		return "", ErrCancelled
	case uci := <-done:
		if uci == "" {
			return "", nil
		}
		return uci, nil
	}
}

// CalculateNextMove is Begin followed by Resolve, for callers that want
// one synchronous call and don't need their own read loop to stay live
// while it runs.
func (o *Orchestrator) CalculateNextMove(ctx context.Context, fen string, moves []string, opts provider.Options) (string, error) {
	return o.Resolve(o.Begin(ctx), fen, moves, opts)
}

// Stop cancels whichever computation is currently in flight, if any.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cancel != nil {
		o.cancel()
	}
}

func decodePosition(fen string, moves []string) (*board.Position, error) {
	var pos *board.Position
	if fen == "" {
		var err error
		pos, err = board.ParseFEN(board.StartFEN)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		pos, err = board.ParseFEN(fen)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: invalid FEN %q: %w", fen, err)
		}
	}

	for _, text := range moves {
		m, err := board.ParseMove(text)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: invalid move %q: %w", text, err)
		}
		pos.Apply(m)
	}
	return pos, nil
}
