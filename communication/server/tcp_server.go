package server

import (
	"context"
	"hexothello/communication"
	"net"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ServerCommunicator accepts agent connections for a referee.
type ServerCommunicator struct {
	listener net.Listener
}

// Listen starts listening on addr, e.g. ":6001" or "127.0.0.1:0".
func Listen(addr string) (*ServerCommunicator, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to listen on %s", addr)
	}
	log.Info().Msgf("listening on %s", listener.Addr())
	return &ServerCommunicator{listener: listener}, nil
}

func (sc *ServerCommunicator) Addr() net.Addr {
	return sc.listener.Addr()
}

// Accept waits for the next agent. Cancelling ctx closes the listener.
func (sc *ServerCommunicator) Accept(ctx context.Context) (communication.Communicator, error) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			sc.listener.Close()
		case <-done:
		}
	}()

	conn, err := sc.listener.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(err, "failed to accept connection")
	}
	log.Debug().Msgf("accepted connection from %s", conn.RemoteAddr())
	return communication.NewConn(conn), nil
}

func (sc *ServerCommunicator) Close() error {
	return sc.listener.Close()
}
