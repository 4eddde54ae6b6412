package engine

import (
	"hexothello/experiments/metrics"
	"hexothello/game"
)

type Engine interface {
	// Run plays a game till neither side can move or MaxTurns is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, record *game.Record)
}
