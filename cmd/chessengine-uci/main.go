package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/chessengine/core/internal/cache"
	"github.com/chessengine/core/internal/chesslog"
	"github.com/chessengine/core/internal/orchestrator"
	"github.com/chessengine/core/internal/provider"
	"github.com/chessengine/core/internal/remote"
	"github.com/chessengine/core/internal/uci"
)

var debug = flag.Bool("debug", false, "enable debug-level diagnostic logging")

func main() {
	flag.Parse()
	chesslog.SetDebug(*debug)

	store := openResponseCache()
	if store != nil {
		defer store.Close()
	}

	httpClient := &http.Client{Timeout: 5 * time.Second}
	openingsSource := remote.NewOpeningsClientWithHTTPClient(httpClient)
	endgameSource := remote.NewEndgameClientWithHTTPClient(httpClient)

	pipeline := provider.NewPipeline(
		provider.NewOpenings(openingsSource, store),
		provider.NewEndgame(endgameSource, store),
		provider.NewNegamax(),
	)

	orch := orchestrator.New(pipeline)
	protocol := uci.New(orch, os.Stdout)
	protocol.Run(os.Stdin)
}

// openResponseCache opens the provider response cache. A failure to
// open it is non-fatal: the engine falls back to calling the remote
// services directly on every request.
func openResponseCache() *cache.Store {
	dir, err := cache.DatabaseDir()
	if err != nil {
		chesslog.Info("provider cache directory unavailable: %v", err)
		return nil
	}
	store, err := cache.Open(dir)
	if err != nil {
		chesslog.Info("provider cache unavailable: %v", err)
		return nil
	}
	return store
}
