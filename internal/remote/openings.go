// Package remote wraps the two external lookup services the provider
// pipeline consults before falling back to local search: the Lichess
// opening explorer and the Lichess endgame tablebase.
package remote

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chessengine/core/internal/board"
)

const openingsBaseURL = "https://explorer.lichess.ovh/masters"

// OpeningsClient queries the Lichess masters opening explorer for the
// moves played from a given position, ranked by the service itself.
type OpeningsClient struct {
	client  *http.Client
	baseURL string
}

// NewOpeningsClient returns an OpeningsClient using a default 5-second
// timeout. Pass an injected client (e.g. with a custom Transport) for
// tests or alternate deployments.
func NewOpeningsClient() *OpeningsClient {
	return NewOpeningsClientWithHTTPClient(&http.Client{Timeout: 5 * time.Second})
}

// NewOpeningsClientWithHTTPClient wraps an existing *http.Client.
func NewOpeningsClientWithHTTPClient(c *http.Client) *OpeningsClient {
	return &OpeningsClient{client: c, baseURL: openingsBaseURL}
}

type openingsResponse struct {
	Moves []struct {
		UCI           string `json:"uci"`
		AverageRating int    `json:"averageRating"`
		White         int    `json:"white"`
		Draws         int    `json:"draws"`
		Black         int    `json:"black"`
	} `json:"moves"`
}

// Recommend returns the moves the explorer reports for pos, in the
// order the service ranks them. A network failure or non-200/non-JSON
// response yields an empty, non-error result: the caller falls through
// to the next provider.
func (oc *OpeningsClient) Recommend(pos *board.Position) []board.Move {
	fen := strings.ReplaceAll(pos.ToFEN(), " ", "_")
	url := fmt.Sprintf("%s?fen=%s&topGames=0", oc.baseURL, fen)

	resp, err := oc.client.Get(url)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var body openingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil
	}

	moves := make([]board.Move, 0, len(body.Moves))
	for _, m := range body.Moves {
		move, err := board.ParseMove(m.UCI)
		if err != nil {
			continue
		}
		moves = append(moves, move)
	}
	return moves
}
