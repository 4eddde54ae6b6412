package agent

import (
	"hexothello/experiments/metrics"
	"hexothello/game"
)

type Agent interface {
	// FindMove returns a legal move for color, or a pass when color has none, together with the
	// search metrics (if collected)
	FindMove(pos game.Position, color game.Color) (game.Move, metrics.SearchMetric)
}
