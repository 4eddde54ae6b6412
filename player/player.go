package player

import (
	"context"
	"fmt"
	"hexothello/communication"
	"hexothello/game"
	"hexothello/searcher/agent"
	"io"

	"github.com/rs/zerolog/log"
)

// Player is one agent's session with the tournament server: its name, color, local copy of the
// position and the connection it plays over.
type Player struct {
	Name         string
	Color        game.Color
	Position     game.Position
	Communicator communication.Communicator
	Agent        agent.Agent
	Output       io.Writer // Board printing after every update, nil to disable
	Colored      bool
}

// NewPlayer creates a new Player instance.
func NewPlayer(name string, comm communication.Communicator, a agent.Agent) *Player {
	return &Player{
		Name:         name,
		Position:     game.InitialPosition(),
		Communicator: comm,
		Agent:        a,
	}
}

// Run serves server messages until the server says quit, ctx is cancelled, or the connection
// fails. The connection is closed on return.
func (p *Player) Run(ctx context.Context) error {
	defer p.Communicator.Close()

	stop := context.AfterFunc(ctx, func() { p.Communicator.Close() })
	defer stop()

	for {
		msg, err := p.Communicator.Receive()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to receive message: %w", err)
		}

		done, err := p.Handle(msg)
		if err != nil {
			return err
		}
		if done {
			log.Info().Msgf("%s: server ended the game, white %d - black %d",
				p.Name, p.Position.Score[game.White], p.Position.Score[game.Black])
			return nil
		}
	}
}

// Handle applies one server message to the session, replying when the server expects it.
// It reports true once the server has asked us to quit.
func (p *Player) Handle(msg communication.Message) (bool, error) {
	switch msg.Type {
	case communication.RequestName:
		return false, p.send(communication.Message{Type: communication.Name, Name: p.Name})

	case communication.NewPosition:
		p.Position = msg.Position
		p.print()

	case communication.ColorWhite:
		p.Color = game.White
		log.Info().Msgf("%s: playing white", p.Name)

	case communication.ColorBlack:
		p.Color = game.Black
		log.Info().Msgf("%s: playing black", p.Name)

	case communication.PrepareToReceiveMove:
		move := msg.Move
		move.Color = p.Color.Other()
		if !p.Position.IsLegal(move) {
			return false, fmt.Errorf("server sent illegal opponent move %s", move)
		}
		p.Position.Apply(move)
		log.Debug().Msgf("%s: opponent played %s", p.Name, move)
		p.print()

	case communication.RequestMove:
		move := game.Pass(p.Color)
		if p.Position.CanMove(p.Color) {
			move = p.search()
		}
		if err := p.send(communication.Message{Type: communication.Move, Move: move}); err != nil {
			return false, err
		}
		p.Position.Apply(move)
		p.print()

	case communication.Quit:
		return true, nil

	default:
		log.Warn().Msgf("%s: ignoring unexpected %s message", p.Name, msg.Type)
	}
	return false, nil
}

func (p *Player) search() game.Move {
	move, metric := p.Agent.FindMove(p.Position, p.Color)
	log.Info().Msgf("%s: playing %s (depth %d, %d nodes, %d cutoffs, %s)",
		p.Name, move, metric.Depth, metric.Nodes, metric.Cutoffs, metric.Duration)
	return move
}

func (p *Player) send(msg communication.Message) error {
	if err := p.Communicator.Send(msg); err != nil {
		return fmt.Errorf("failed to send %s: %w", msg.Type, err)
	}
	return nil
}

func (p *Player) print() {
	if p.Output == nil {
		return
	}
	if err := p.Position.Fprint(p.Output, p.Colored); err != nil {
		log.Warn().Err(err).Msg("failed to print position")
	}
}
