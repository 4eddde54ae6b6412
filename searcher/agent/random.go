package agent

import (
	"hexothello/experiments/metrics"
	"hexothello/game"
	"sync"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns an agent picking uniformly among the legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(pos game.Position, color game.Color) (game.Move, metrics.SearchMetric) {
	moves := pos.LegalMoves(color)
	if len(moves) == 0 {
		return game.Pass(color), metrics.SearchMetric{}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
