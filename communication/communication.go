package communication

import "hexothello/game"

// MessageType is the one-byte tag opening every message.
type MessageType byte

const (
	RequestName          MessageType = 1 // server asks for our name
	NewPosition          MessageType = 2 // server sends a full position
	ColorWhite           MessageType = 3 // we play white
	ColorBlack           MessageType = 4 // we play black
	PrepareToReceiveMove MessageType = 5 // opponent move follows
	RequestMove          MessageType = 6 // server asks for our move
	Quit                 MessageType = 7 // game over, disconnect
	Name                 MessageType = 8 // client name reply
	Move                 MessageType = 9 // client move reply
)

func (t MessageType) String() string {
	switch t {
	case RequestName:
		return "request-name"
	case NewPosition:
		return "new-position"
	case ColorWhite:
		return "color-white"
	case ColorBlack:
		return "color-black"
	case PrepareToReceiveMove:
		return "prepare-to-receive-move"
	case RequestMove:
		return "request-move"
	case Quit:
		return "quit"
	case Name:
		return "name"
	case Move:
		return "move"
	default:
		return "unknown"
	}
}

// Message is one protocol message. Only the payload field matching Type is set; moves carry
// coordinates only, their color is implied by the session.
type Message struct {
	Type     MessageType
	Name     string
	Position game.Position
	Move     game.Move
}

// Communicator is an interface that abstracts the communication mechanism.
type Communicator interface {
	Receive() (Message, error)
	Send(msg Message) error
	Close() error
}
