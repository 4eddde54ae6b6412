package engine

import (
	"hexothello/game"
	"hexothello/searcher"
	"hexothello/searcher/agent"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalEngineRun(t *testing.T) {
	t.Run("self-play reaches a finished game with a replayable record", func(t *testing.T) {
		var e Engine = LocalEngine(
			agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithDepth(1))),
			agent.NewRandomAgent(5),
		)

		gameMetric, moveMetrics, record := e.Run()

		require.True(t, record.Final.GameOver())
		require.NoError(t, record.Verify())
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Equal(t, record.ID, gameMetric.ID)
		require.Equal(t, record.Final.Score[game.White], gameMetric.WhiteDiscs)
		require.Equal(t, record.Final.Score[game.Black], gameMetric.BlackDiscs)
		require.Equal(t, "black", moveMetrics[0].Player)
		require.Equal(t, "white", moveMetrics[1].Player)
	})

	t.Run("same agents replay the same game", func(t *testing.T) {
		_, _, first := LocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(2)).Run()
		_, _, second := LocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(2)).Run()

		require.Equal(t, first.Moves, second.Moves)
		require.Equal(t, first.Final, second.Final)
	})

	t.Run("illegal agent moves are replaced", func(t *testing.T) {
		e := LocalEngine(cheater{}, agent.NewRandomAgent(3))

		_, _, record := e.Run()

		require.NoError(t, record.Verify())
	})

	t.Run("panics without two agents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(nil, agent.NewRandomAgent(1))
		})
	})
}

func TestRemoteAgent(t *testing.T) {
	server := httptest.NewServer(agent.NewServer(agent.NewRandomAgent(4)))
	defer server.Close()

	t.Run("moves come from the agent server", func(t *testing.T) {
		pos := game.InitialPosition()

		move, _ := NewRemoteAgent(server.URL).FindMove(pos, game.Black)

		require.True(t, pos.IsLegal(move))
	})

	t.Run("unreachable server falls back to the first legal move", func(t *testing.T) {
		pos := game.InitialPosition()

		move, _ := NewRemoteAgent("http://127.0.0.1:1").FindMove(pos, game.Black)

		require.Equal(t, pos.LegalMoves(game.Black)[0], move)
	})

	t.Run("plays a full game against a local agent", func(t *testing.T) {
		_, _, record := LocalEngine(NewRemoteAgent(server.URL), agent.NewRandomAgent(8)).Run()

		require.NoError(t, record.Verify())
	})
}
