package engine

import (
	"hexothello/experiments/metrics"
	"hexothello/game"
	"hexothello/meta"
	"hexothello/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type localEngine struct {
	State  game.Position
	Agents [2]agent.Agent // Indexed by game.Color
}

// LocalEngine pits two in-process agents against each other from the initial position.
// Black moves first.
func LocalEngine(black, white agent.Agent) *localEngine {
	if black == nil || white == nil {
		panic("need two agents")
	}
	var agents [2]agent.Agent
	agents[game.Black] = black
	agents[game.White] = white
	return &localEngine{
		State:  game.InitialPosition(),
		Agents: agents,
	}
}

// Run executes the entire game loop until neither side can move.
func (e *localEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, *game.Record) {
	record := game.NewRecord()
	record.Final = e.State
	gameMetric := metrics.GameMetric{
		ID:             record.ID,
		StartingPlayer: game.Black.String(),
		StartTime:      time.Now(),
	}
	log.Debug().Msgf("game %s: black is starting", record.ID)

	var moveMetrics []metrics.MoveMetric
	current := game.Black
	turnCount := 1
	for !e.State.GameOver() && turnCount <= meta.MaxTurns {
		move, searchMetric := e.Agents[current].FindMove(e.State, current)
		if !e.State.IsLegal(move) {
			log.Warn().Msgf("game %s: %s played illegal move %s, forcing a fallback", record.ID, current, move)
			move = fallback(e.State, current)
		}

		record.Add(move)
		e.State.Apply(move)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       current.String(),
			Move:         move.String(),
			Score:        e.State.Score,
			SearchMetric: searchMetric,
		})

		current = current.Other()
		turnCount++
	}

	if turnCount > meta.MaxTurns {
		log.Warn().Msgf("game %s: stopped after %d turns", record.ID, meta.MaxTurns)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(record.Moves)
	gameMetric.WhiteDiscs = e.State.Score[game.White]
	gameMetric.BlackDiscs = e.State.Score[game.Black]
	if winner, ok := e.State.Winner(); ok {
		gameMetric.Winner = winner.String()
	}
	log.Debug().Msgf("game %s over: white %d - black %d", record.ID, gameMetric.WhiteDiscs, gameMetric.BlackDiscs)

	return gameMetric, moveMetrics, record
}

func fallback(pos game.Position, color game.Color) game.Move {
	moves := pos.LegalMoves(color)
	if len(moves) == 0 {
		return game.Pass(color)
	}
	return moves[0]
}
