package game

import "fmt"

// NullMove marks the coordinates of a pass.
const NullMove = -1

// Move places a disc of Color at (Row, Col), or passes when both coordinates are NullMove.
type Move struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Color Color `json:"color"`
}

// Pass returns the pass move for c.
func Pass(c Color) Move {
	return Move{Row: NullMove, Col: NullMove, Color: c}
}

func (m Move) IsPass() bool {
	return m.Row == NullMove && m.Col == NullMove
}

func (m Move) String() string {
	if m.IsPass() {
		return fmt.Sprintf("%s pass", m.Color)
	}
	return fmt.Sprintf("%s (%d,%d)", m.Color, m.Row, m.Col)
}
