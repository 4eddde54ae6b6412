package agent

import (
	"hexothello/experiments/metrics"
	"hexothello/game"
	"hexothello/searcher"
	"sync"
)

type searchAgent struct {
	mu       sync.Mutex // The searcher's metrics collector serves one search at a time
	searcher *searcher.AlphaBeta
}

// NewSearchAgent returns an agent playing the minimax choice of ab.
func NewSearchAgent(ab *searcher.AlphaBeta) Agent {
	return &searchAgent{searcher: ab}
}

func (a *searchAgent) FindMove(pos game.Position, color game.Color) (game.Move, metrics.SearchMetric) {
	a.mu.Lock()
	defer a.mu.Unlock()
	move, _, metric := a.searcher.Search(pos, color)
	return move, metric
}
