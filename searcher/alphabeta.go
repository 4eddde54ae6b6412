package searcher

import (
	"hexothello/experiments/metrics"
	"hexothello/game"
	"hexothello/meta"
	"math"
)

type Option func(ab *AlphaBeta)

// AlphaBeta is a fixed-depth minimax searcher. Every node owns its own copy of the position.
type AlphaBeta struct {
	depth     int
	pruning   bool
	passNodes bool
	evaluate  game.Evaluate
	metrics   metrics.Collector
}

func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth > 0 {
			ab.depth = depth
		}
	}
}

func WithPruning(enabled bool) Option {
	return func(ab *AlphaBeta) {
		ab.pruning = enabled
	}
}

// WithPassNodes makes a side without moves pass as a real zero-effect move in the tree instead
// of ending the branch with a static evaluation.
func WithPassNodes(enabled bool) Option {
	return func(ab *AlphaBeta) {
		ab.passNodes = enabled
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		depth:    meta.DefaultDepth,
		pruning:  true,
		evaluate: game.EvaluateDefault,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

func (ab *AlphaBeta) Depth() int {
	return ab.depth
}

func (ab *AlphaBeta) Pruning() bool {
	return ab.pruning
}

// BestMove returns the move for color with the highest minimax value, or a pass when color has
// no legal move.
func (ab *AlphaBeta) BestMove(pos game.Position, color game.Color) game.Move {
	move, _, _ := ab.Search(pos, color)
	return move
}

// Search expands every root move and searches the resulting child depth-1 plies deep. The first
// move with the strictly greatest value wins, so ties go to generation order.
func (ab *AlphaBeta) Search(pos game.Position, color game.Color) (game.Move, int, metrics.SearchMetric) {
	ab.metrics.Start(ab.depth, ab.pruning)
	ab.metrics.AddNode()

	moves := pos.LegalMoves(color)
	if len(moves) == 0 {
		ab.metrics.AddLeaf()
		return game.Pass(color), ab.evaluate(&pos, color), ab.metrics.Complete()
	}

	best := moves[0]
	bestValue := math.MinInt
	alpha := math.MinInt
	for _, move := range moves {
		child := pos.Play(move)
		value := ab.minimax(&child, ab.depth-1, alpha, math.MaxInt, false, color)
		if value > bestValue {
			bestValue = value
			best = move
		}
		if ab.pruning {
			alpha = max(alpha, bestValue)
		}
	}
	return best, bestValue, ab.metrics.Complete()
}

// minimax returns the value of pos for root. Maximizing layers are root to move, minimizing
// layers its opponent.
func (ab *AlphaBeta) minimax(pos *game.Position, depth, alpha, beta int, maximizing bool, root game.Color) int {
	ab.metrics.AddNode()

	if depth <= 0 || pos.GameOver() {
		ab.metrics.AddLeaf()
		return ab.evaluate(pos, root)
	}

	mover := root
	if !maximizing {
		mover = root.Other()
	}
	moves := pos.LegalMoves(mover)
	if len(moves) == 0 {
		if ab.passNodes {
			child := *pos
			return ab.minimax(&child, depth-1, alpha, beta, !maximizing, root)
		}
		ab.metrics.AddLeaf()
		return ab.evaluate(pos, root)
	}

	if maximizing {
		value := math.MinInt
		for _, move := range moves {
			child := pos.Play(move)
			value = max(value, ab.minimax(&child, depth-1, alpha, beta, false, root))
			if ab.pruning {
				alpha = max(alpha, value)
				if beta <= alpha {
					ab.metrics.AddCutoff()
					break
				}
			}
		}
		return value
	}

	value := math.MaxInt
	for _, move := range moves {
		child := pos.Play(move)
		value = min(value, ab.minimax(&child, depth-1, alpha, beta, true, root))
		if ab.pruning {
			beta = min(beta, value)
			if beta <= alpha {
				ab.metrics.AddCutoff()
				break
			}
		}
	}
	return value
}
