package game

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// Record is the move list of one game together with the position it reached.
type Record struct {
	ID    string   `json:"id"`
	Moves []Move   `json:"moves"`
	Final Position `json:"final"`
}

// NewRecord starts an empty record with a fresh id.
func NewRecord() *Record {
	return &Record{ID: uuid.New().String(), Final: InitialPosition()}
}

// Add appends a move that has just been applied to the record's final position.
func (r *Record) Add(m Move) {
	r.Moves = append(r.Moves, m)
	r.Final.Apply(m)
}

func (r *Record) Marshal() ([]byte, error) {
	return sonic.Marshal(r)
}

func UnmarshalRecord(data []byte) (*Record, error) {
	var r Record
	if err := sonic.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return &r, nil
}

// Replay plays moves from the initial position, rejecting the first illegal one.
func Replay(moves []Move) (Position, error) {
	pos := InitialPosition()
	for i, m := range moves {
		if !pos.IsLegal(m) {
			return pos, fmt.Errorf("move %d (%s) is illegal", i+1, m)
		}
		pos.Apply(m)
	}
	return pos, nil
}

// Verify replays the record and checks that it reproduces the stored final position.
func (r *Record) Verify() error {
	pos, err := Replay(r.Moves)
	if err != nil {
		return err
	}
	if pos != r.Final {
		return fmt.Errorf("record %s replays to a different position", r.ID)
	}
	return nil
}
