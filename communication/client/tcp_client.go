package client

import (
	"context"
	"hexothello/communication"
	"net"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ClientCommunicator talks to the tournament server over TCP.
type ClientCommunicator struct {
	*communication.Conn
	addr string
}

// Dial connects to the server at host:port.
func Dial(ctx context.Context, host, port string) (*ClientCommunicator, error) {
	addr := net.JoinHostPort(host, port)
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", addr)
	}
	log.Info().Msgf("connected to %s", addr)

	return &ClientCommunicator{
		Conn: communication.NewConn(conn),
		addr: addr,
	}, nil
}

func (cc *ClientCommunicator) Addr() string {
	return cc.addr
}
