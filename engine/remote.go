package engine

import (
	"bytes"
	"fmt"
	"hexothello/experiments/metrics"
	"hexothello/game"
	"hexothello/searcher/agent"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// RemoteAgent asks an agent server for moves over HTTP.
type RemoteAgent struct {
	URL    string
	Client *http.Client
}

func NewRemoteAgent(url string) *RemoteAgent {
	return &RemoteAgent{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// FindMove posts the position to /findmove. Transport failures fall back to the first legal
// move so a flaky agent cannot stall the game.
func (ra *RemoteAgent) FindMove(pos game.Position, color game.Color) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	move, err := ra.requestMove(pos, color)
	if err != nil {
		log.Error().Err(err).Msgf("remote agent %s failed, forcing a fallback", ra.URL)
		return fallback(pos, color), metrics.SearchMetric{}
	}
	return move, metrics.SearchMetric{Duration: time.Since(start)}
}

func (ra *RemoteAgent) requestMove(pos game.Position, color game.Color) (game.Move, error) {
	body, err := sonic.Marshal(agent.FindMoveRequest{Position: pos, Color: color})
	if err != nil {
		return game.Move{}, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := ra.Client.Post(ra.URL+"/findmove", "application/json", bytes.NewReader(body))
	if err != nil {
		return game.Move{}, fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return game.Move{}, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return game.Move{}, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, out)
	}

	var move game.Move
	if err := sonic.Unmarshal(out, &move); err != nil {
		return game.Move{}, fmt.Errorf("failed to decode move: %w", err)
	}
	return move, nil
}
