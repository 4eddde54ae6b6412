package game

import "fmt"

// Position is a game position. It is a value type: assigning a Position copies the whole grid,
// so search branches never share state.
type Position struct {
	Board [Diameter][Diameter]Cell `json:"board"`
	Score [2]int                   `json:"score"` // Discs per color, indexed by Color
}

// NewPosition returns a hexagon with every playable cell empty.
func NewPosition() Position {
	var p Position
	for r := 0; r < Diameter; r++ {
		for c := 0; c < Diameter; c++ {
			if !InBounds(r, c) {
				p.Board[r][c] = OutOfBound
			}
		}
	}
	return p
}

// InitialPosition returns the starting position: the six cells around the centre alternate
// colors and the centre itself stays empty. Black moves first.
func InitialPosition() Position {
	p := NewPosition()
	center := Side - 1
	for i, d := range directions {
		color := White
		if i%2 == 1 {
			color = Black
		}
		p.Place(center+d.dr, center+d.dc, color)
	}
	return p
}

// Place puts a disc of color on an empty playable cell without capturing. It is used to set up
// positions and keeps the score consistent.
func (p *Position) Place(row, col int, color Color) {
	if prev, ok := p.Board[row][col].Occupant(); ok {
		p.Score[prev]--
	}
	p.Board[row][col] = Disc(color)
	p.Score[color]++
}

// Cell returns the cell at (row, col); anything off the grid is OutOfBound.
func (p *Position) Cell(row, col int) Cell {
	if row < 0 || col < 0 || row >= Diameter || col >= Diameter {
		return OutOfBound
	}
	return p.Board[row][col]
}

// Discs returns the number of discs on the board.
func (p *Position) Discs() int {
	return p.Score[White] + p.Score[Black]
}

// Empties returns the number of empty playable cells.
func (p *Position) Empties() int {
	return Playable - p.Discs()
}

// Recount recomputes the scores from the grid.
func (p *Position) Recount() {
	p.Score = p.count()
}

func (p *Position) count() [2]int {
	var score [2]int
	for r := 0; r < Diameter; r++ {
		for c := 0; c < Diameter; c++ {
			if color, ok := p.Board[r][c].Occupant(); ok {
				score[color]++
			}
		}
	}
	return score
}

// Validate checks the hexagon mask and that the scores match the grid.
func (p *Position) Validate() error {
	for r := 0; r < Diameter; r++ {
		for c := 0; c < Diameter; c++ {
			cell := p.Board[r][c]
			if cell > OutOfBound {
				return fmt.Errorf("cell (%d,%d) has unknown state %d", r, c, cell)
			}
			if InBounds(r, c) == (cell == OutOfBound) {
				return fmt.Errorf("cell (%d,%d) does not match the hexagon mask", r, c)
			}
		}
	}
	if score := p.count(); score != p.Score {
		return fmt.Errorf("score %v does not match board count %v", p.Score, score)
	}
	return nil
}

// Winner returns the color with more discs, false on a draw.
func (p *Position) Winner() (Color, bool) {
	switch {
	case p.Score[White] > p.Score[Black]:
		return White, true
	case p.Score[Black] > p.Score[White]:
		return Black, true
	default:
		return White, false
	}
}
