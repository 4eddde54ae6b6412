package communication

import (
	"bytes"
	"hexothello/game"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

type nopCloser struct{ io.ReadWriter }

func (nopCloser) Close() error { return nil }

func pipe(t *testing.T) (*Conn, *Conn) {
	a, b := net.Pipe()
	t.Cleanup(func() {
		a.Close()
		b.Close()
	})
	return NewConn(a), NewConn(b)
}

func exchange(t *testing.T, msg Message) Message {
	sender, receiver := pipe(t)
	errCh := make(chan error, 1)
	go func() { errCh <- sender.Send(msg) }()

	got, err := receiver.Receive()
	require.NoError(t, err)
	require.NoError(t, <-errCh)
	return got
}

func TestConnExchange(t *testing.T) {
	t.Run("bare message types carry no payload", func(t *testing.T) {
		for _, typ := range []MessageType{RequestName, ColorWhite, ColorBlack, RequestMove, Quit} {
			got := exchange(t, Message{Type: typ})
			require.Equal(t, Message{Type: typ}, got)
		}
	})

	t.Run("positions arrive with recounted scores", func(t *testing.T) {
		pos := game.InitialPosition()
		pos.Apply(game.Move{Row: 5, Col: 5, Color: game.Black})

		got := exchange(t, Message{Type: NewPosition, Position: pos})

		require.Equal(t, pos, got.Position)
	})

	t.Run("moves and passes keep their coordinates", func(t *testing.T) {
		got := exchange(t, Message{Type: PrepareToReceiveMove, Move: game.Move{Row: 7, Col: 3}})
		require.Equal(t, game.Move{Row: 7, Col: 3}, got.Move)

		got = exchange(t, Message{Type: Move, Move: game.Pass(game.White)})
		require.True(t, got.Move.IsPass())
	})

	t.Run("names are padded and trimmed", func(t *testing.T) {
		got := exchange(t, Message{Type: Name, Name: "agent"})
		require.Equal(t, "agent", got.Name)
	})
}

func TestConnReceiveErrors(t *testing.T) {
	t.Run("unknown message type", func(t *testing.T) {
		conn := NewConn(nopCloser{bytes.NewBuffer([]byte{42})})

		_, err := conn.Receive()

		require.ErrorContains(t, err, "unknown message type 42")
	})

	t.Run("truncated move", func(t *testing.T) {
		conn := NewConn(nopCloser{bytes.NewBuffer([]byte{byte(Move), 3})})

		_, err := conn.Receive()

		require.ErrorContains(t, err, "short move")
	})

	t.Run("move off the board", func(t *testing.T) {
		conn := NewConn(nopCloser{bytes.NewBuffer([]byte{byte(Move), 0, 0})})

		_, err := conn.Receive()

		require.ErrorContains(t, err, "off the board")
	})

	t.Run("position breaking the hexagon mask", func(t *testing.T) {
		data := append([]byte{byte(NewPosition)}, make([]byte, game.Diameter*game.Diameter)...)
		conn := NewConn(nopCloser{bytes.NewBuffer(data)})

		_, err := conn.Receive()

		require.ErrorContains(t, err, "invalid position")
	})
}
