package communication

import (
	"bufio"
	"bytes"
	"hexothello/game"
	"hexothello/meta"
	"io"

	"github.com/pkg/errors"
)

const positionSize = game.Diameter * game.Diameter

// Conn frames messages over a byte stream.
type Conn struct {
	rw     io.ReadWriteCloser
	reader *bufio.Reader
	writer *bufio.Writer
}

func NewConn(rw io.ReadWriteCloser) *Conn {
	return &Conn{
		rw:     rw,
		reader: bufio.NewReader(rw),
		writer: bufio.NewWriter(rw),
	}
}

// Receive blocks until a complete message has been read.
func (c *Conn) Receive() (Message, error) {
	tag, err := c.reader.ReadByte()
	if err != nil {
		return Message{}, errors.Wrap(err, "failed to read message type")
	}
	msg := Message{Type: MessageType(tag)}

	switch msg.Type {
	case RequestName, ColorWhite, ColorBlack, RequestMove, Quit:
	case NewPosition:
		msg.Position, err = c.readPosition()
	case PrepareToReceiveMove, Move:
		msg.Move, err = c.readMove()
	case Name:
		msg.Name, err = c.readName()
	default:
		return msg, errors.Errorf("unknown message type %d", tag)
	}
	if err != nil {
		return msg, errors.WithMessagef(err, "failed to read %s payload", msg.Type)
	}
	return msg, nil
}

func (c *Conn) readPosition() (game.Position, error) {
	var buf [positionSize]byte
	if _, err := io.ReadFull(c.reader, buf[:]); err != nil {
		return game.Position{}, errors.Wrap(err, "short position")
	}
	var pos game.Position
	for i, b := range buf {
		pos.Board[i/game.Diameter][i%game.Diameter] = game.Cell(b)
	}
	pos.Recount()
	if err := pos.Validate(); err != nil {
		return game.Position{}, errors.Wrap(err, "invalid position")
	}
	return pos, nil
}

func (c *Conn) readMove() (game.Move, error) {
	var buf [2]byte
	if _, err := io.ReadFull(c.reader, buf[:]); err != nil {
		return game.Move{}, errors.Wrap(err, "short move")
	}
	move := game.Move{Row: int(int8(buf[0])), Col: int(int8(buf[1]))}
	if !move.IsPass() && !game.InBounds(move.Row, move.Col) {
		return game.Move{}, errors.Errorf("move (%d,%d) is off the board", move.Row, move.Col)
	}
	return move, nil
}

func (c *Conn) readName() (string, error) {
	var buf [meta.MaxNameLength]byte
	if _, err := io.ReadFull(c.reader, buf[:]); err != nil {
		return "", errors.Wrap(err, "short name")
	}
	return string(bytes.TrimRight(buf[:], "\x00")), nil
}

// Send writes msg and flushes it.
func (c *Conn) Send(msg Message) error {
	if err := c.writer.WriteByte(byte(msg.Type)); err != nil {
		return errors.Wrap(err, "failed to write message type")
	}

	switch msg.Type {
	case RequestName, ColorWhite, ColorBlack, RequestMove, Quit:
	case NewPosition:
		for r := 0; r < game.Diameter; r++ {
			for col := 0; col < game.Diameter; col++ {
				c.writer.WriteByte(byte(msg.Position.Board[r][col]))
			}
		}
	case PrepareToReceiveMove, Move:
		c.writer.WriteByte(byte(int8(msg.Move.Row)))
		c.writer.WriteByte(byte(int8(msg.Move.Col)))
	case Name:
		var buf [meta.MaxNameLength]byte
		copy(buf[:], msg.Name)
		c.writer.Write(buf[:])
	default:
		return errors.Errorf("unknown message type %d", msg.Type)
	}

	return errors.Wrapf(c.writer.Flush(), "failed to send %s", msg.Type)
}

func (c *Conn) Close() error {
	return c.rw.Close()
}
