package remote

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chessengine/core/internal/board"
)

const endgameBaseURL = "https://tablebase.lichess.ovh/standard"

// EndgameClient queries the Lichess tablebase service for the
// preference-ordered moves from a position with few enough pieces
// remaining to be tabulated.
type EndgameClient struct {
	client  *http.Client
	baseURL string
}

// NewEndgameClient returns an EndgameClient using a default 5-second
// timeout.
func NewEndgameClient() *EndgameClient {
	return NewEndgameClientWithHTTPClient(&http.Client{Timeout: 5 * time.Second})
}

// NewEndgameClientWithHTTPClient wraps an existing *http.Client.
func NewEndgameClientWithHTTPClient(c *http.Client) *EndgameClient {
	return &EndgameClient{client: c, baseURL: endgameBaseURL}
}

type endgameResponse struct {
	Moves []struct {
		UCI      string `json:"uci"`
		Category string `json:"category"`
	} `json:"moves"`
}

// Recommend returns the moves the tablebase service reports for pos,
// in the order the service ranks them. A network failure or
// non-200/non-JSON response yields an empty, non-error result.
func (ec *EndgameClient) Recommend(pos *board.Position) []board.Move {
	fen := strings.ReplaceAll(pos.ToFEN(), " ", "_")
	url := fmt.Sprintf("%s?fen=%s", ec.baseURL, fen)

	resp, err := ec.client.Get(url)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var body endgameResponse
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
