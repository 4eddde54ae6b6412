package player

import (
	"bytes"
	"context"
	"errors"
	"hexothello/communication"
	"hexothello/game"
	"hexothello/searcher"
	"hexothello/searcher/agent"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedComm replays a fixed list of server messages and records the replies.
type scriptedComm struct {
	incoming []communication.Message
	sent     []communication.Message
	closed   bool
}

func (s *scriptedComm) Receive() (communication.Message, error) {
	if len(s.incoming) == 0 {
		return communication.Message{}, io.EOF
	}
	msg := s.incoming[0]
	s.incoming = s.incoming[1:]
	return msg, nil
}

func (s *scriptedComm) Send(msg communication.Message) error {
	s.sent = append(s.sent, msg)
	return nil
}

func (s *scriptedComm) Close() error {
	s.closed = true
	return nil
}

func TestPlayerRun(t *testing.T) {
	t.Run("follows a short game and quits", func(t *testing.T) {
		opening := game.Move{Row: 5, Col: 5}
		comm := &scriptedComm{incoming: []communication.Message{
			{Type: communication.RequestName},
			{Type: communication.ColorWhite},
			{Type: communication.NewPosition, Position: game.InitialPosition()},
			{Type: communication.PrepareToReceiveMove, Move: opening},
			{Type: communication.RequestMove},
			{Type: communication.Quit},
		}}
		ab := searcher.NewAlphaBeta(searcher.WithDepth(2))
		var out bytes.Buffer
		p := NewPlayer("tester", comm, agent.NewSearchAgent(ab))
		p.Output = &out

		err := p.Run(context.Background())

		require.NoError(t, err)
		require.True(t, comm.closed)
		require.Len(t, comm.sent, 2)
		require.Equal(t, communication.Message{Type: communication.Name, Name: "tester"}, comm.sent[0])

		afterOpening := game.InitialPosition()
		afterOpening.Apply(game.Move{Row: 5, Col: 5, Color: game.Black})
		reply := comm.sent[1]
		require.Equal(t, communication.Move, reply.Type)
		require.Equal(t, ab.BestMove(afterOpening, game.White), reply.Move)
		require.Equal(t, afterOpening.Play(reply.Move), p.Position)
		require.Equal(t, game.White, p.Color)
		require.NotEmpty(t, out.String(), "Board should be printed after updates")
	})

	t.Run("passes when it has no move", func(t *testing.T) {
		stuck := game.NewPosition()
		stuck.Place(4, 4, game.White)
		comm := &scriptedComm{incoming: []communication.Message{
			{Type: communication.ColorWhite},
			{Type: communication.NewPosition, Position: stuck},
			{Type: communication.RequestMove},
			{Type: communication.Quit},
		}}
		p := NewPlayer("tester", comm, agent.NewRandomAgent(1))

		require.NoError(t, p.Run(context.Background()))

		require.Len(t, comm.sent, 1)
		require.True(t, comm.sent[0].Move.IsPass())
		require.Equal(t, stuck, p.Position)
	})

	t.Run("rejects an illegal opponent move", func(t *testing.T) {
		comm := &scriptedComm{incoming: []communication.Message{
			{Type: communication.ColorBlack},
			{Type: communication.PrepareToReceiveMove, Move: game.Move{Row: 0, Col: 4}},
		}}
		p := NewPlayer("tester", comm, agent.NewRandomAgent(1))

		err := p.Run(context.Background())

		require.ErrorContains(t, err, "illegal opponent move")
	})

	t.Run("connection loss is an error", func(t *testing.T) {
		comm := &scriptedComm{}
		p := NewPlayer("tester", comm, agent.NewRandomAgent(1))

		err := p.Run(context.Background())

		require.True(t, errors.Is(err, io.EOF))
	})
}
