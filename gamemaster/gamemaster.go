package gamemaster

import (
	"context"
	"fmt"
	"hexothello/communication"
	"hexothello/communication/server"
	"hexothello/game"
	"hexothello/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Result summarizes a refereed game.
type Result struct {
	Names   [2]string // Indexed by game.Color
	Winner  string    // Name of the winner, "" on a draw
	Forfeit bool      // The loser sent an illegal move
	Record  *game.Record
}

// GameMaster referees one game between two agents connecting over the wire protocol.
type GameMaster struct {
	server *server.ServerCommunicator
	conns  [2]communication.Communicator // Indexed by game.Color
	names  [2]string
	state  game.Position
}

// NewGameMaster initializes a new GameMaster listening on srv.
func NewGameMaster(srv *server.ServerCommunicator) *GameMaster {
	return &GameMaster{
		server: srv,
		state:  game.InitialPosition(),
	}
}

// Run waits for two agents, the first playing black, and referees the game to the end.
func (gm *GameMaster) Run(ctx context.Context) (Result, error) {
	defer gm.closeAll()
	for _, color := range []game.Color{game.Black, game.White} {
		conn, err := gm.server.Accept(ctx)
		if err != nil {
			return Result{}, err
		}
		gm.conns[color] = conn
	}

	stop := context.AfterFunc(ctx, gm.closeAll)
	defer stop()

	result, err := gm.play()
	if err != nil && ctx.Err() != nil {
		return result, ctx.Err()
	}
	return result, err
}

func (gm *GameMaster) play() (Result, error) {
	for _, color := range []game.Color{game.Black, game.White} {
		if err := gm.InitializePlayer(color); err != nil {
			return Result{}, err
		}
	}
	return gm.RunGame()
}

// InitializePlayer registers the agent playing color and sends it the starting position.
func (gm *GameMaster) InitializePlayer(color game.Color) error {
	conn := gm.conns[color]
	if err := conn.Send(communication.Message{Type: communication.RequestName}); err != nil {
		return err
	}
	msg, err := conn.Receive()
	if err != nil {
		return err
	}
	if msg.Type != communication.Name {
		return fmt.Errorf("expected a name from the %s agent, got %s", color, msg.Type)
	}
	gm.names[color] = msg.Name
	log.Info().Msgf("%s plays %s", msg.Name, color)

	colorMsg := communication.ColorWhite
	if color == game.Black {
		colorMsg = communication.ColorBlack
	}
	if err := conn.Send(communication.Message{Type: colorMsg}); err != nil {
		return err
	}
	return conn.Send(communication.Message{Type: communication.NewPosition, Position: gm.state})
}

// RunGame alternates move requests until neither side can move.
func (gm *GameMaster) RunGame() (Result, error) {
	record := game.NewRecord()
	record.Final = gm.state
	result := Result{Names: gm.names, Record: record}

	current := game.Black
	for turn := 0; !gm.state.GameOver() && turn < meta.MaxTurns; turn++ {
		move, err := gm.requestMove(current)
		if err != nil {
			return result, err
		}
		if !gm.legal(move) {
			log.Warn().Msgf("%s sent illegal move %s and forfeits", gm.names[current], move)
			result.Forfeit = true
			result.Winner = gm.names[current.Other()]
			gm.broadcastQuit()
			return result, nil
		}

		gm.state.Apply(move)
		record.Add(move)
		log.Debug().Msgf("%s played %s", gm.names[current], move)

		err = gm.conns[current.Other()].Send(communication.Message{Type: communication.PrepareToReceiveMove, Move: move})
		if err != nil {
			return result, err
		}
		current = current.Other()
	}

	if winner, ok := gm.state.Winner(); ok {
		result.Winner = gm.names[winner]
	}
	log.Info().Msgf("game over: %s (white) %d - %s (black) %d", gm.names[game.White], gm.state.Score[game.White],
		gm.names[game.Black], gm.state.Score[game.Black])
	gm.broadcastQuit()
	return result, nil
}

func (gm *GameMaster) requestMove(color game.Color) (game.Move, error) {
	conn := gm.conns[color]
	if err := conn.Send(communication.Message{Type: communication.RequestMove}); err != nil {
		return game.Move{}, err
	}
	msg, err := conn.Receive()
	if err != nil {
		return game.Move{}, err
	}
	if msg.Type != communication.Move {
		return game.Move{}, fmt.Errorf("expected a move from %s, got %s", gm.names[color], msg.Type)
	}
	move := msg.Move
	move.Color = color
	return move, nil
}

// legal checks move against the generated list; a pass must be the only option.
func (gm *GameMaster) legal(move game.Move) bool {
	legal := gm.state.LegalMoves(move.Color)
	if move.IsPass() {
		return len(legal) == 0
	}
	return slices.Contains(legal, move)
}

func (gm *GameMaster) broadcastQuit() {
	for color, conn := range gm.conns {
		if err := conn.Send(communication.Message{Type: communication.Quit}); err != nil {
			log.Warn().Err(err).Msgf("failed to tell %s to quit", game.Color(color))
		}
	}
}

func (gm *GameMaster) closeAll() {
	for _, conn := range gm.conns {
		if conn != nil {
			conn.Close()
		}
	}
}
