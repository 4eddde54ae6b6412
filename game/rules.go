package game

// Apply plays m on p. The move must be legal for m.Color; it is not re-validated here.
// A pass leaves the position unchanged.
func (p *Position) Apply(m Move) {
	if m.IsPass() {
		return
	}
	own := Disc(m.Color)
	p.Board[m.Row][m.Col] = own
	p.Score[m.Color]++

	flipped := 0
	for _, d := range directions {
		run := p.capturedRun(m.Row, m.Col, d, m.Color)
		for i := 1; i <= run; i++ {
			p.Board[m.Row+i*d.dr][m.Col+i*d.dc] = own
		}
		flipped += run
	}
	p.Score[m.Color] += flipped
	p.Score[m.Color.Other()] -= flipped
}

// Play returns a copy of p with m applied.
func (p Position) Play(m Move) Position {
	p.Apply(m)
	return p
}

// capturedRun returns how many opposing discs a disc of color at (row, col) would capture in
// direction d: a contiguous run of opponent discs closed by a disc of color, or zero.
func (p *Position) capturedRun(row, col int, d direction, color Color) int {
	opponent := Disc(color.Other())
	own := Disc(color)
	run := 0
	r, c := row+d.dr, col+d.dc
	for p.Cell(r, c) == opponent {
		run++
		r += d.dr
		c += d.dc
	}
	if run > 0 && p.Cell(r, c) == own {
		return run
	}
	return 0
}

func (p *Position) captures(row, col int, color Color) bool {
	if p.Board[row][col] != Empty {
		return false
	}
	for _, d := range directions {
		if p.capturedRun(row, col, d, color) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal move of color in row-major order. The result is empty when
// color has to pass.
func (p *Position) LegalMoves(color Color) []Move {
	var moves []Move
	for r := 0; r < Diameter; r++ {
		for c := 0; c < Diameter; c++ {
			if p.captures(r, c, color) {
				moves = append(moves, Move{Row: r, Col: c, Color: color})
			}
		}
	}
	return moves
}

// CanMove reports whether color has at least one legal move.
func (p *Position) CanMove(color Color) bool {
	for r := 0; r < Diameter; r++ {
		for c := 0; c < Diameter; c++ {
			if p.captures(r, c, color) {
				return true
			}
		}
	}
	return false
}

// GameOver reports whether neither side can move.
func (p *Position) GameOver() bool {
	return !p.CanMove(White) && !p.CanMove(Black)
}

// IsLegal reports whether m may be played on p. A pass is legal only when its color has no
// other move.
func (p *Position) IsLegal(m Move) bool {
	if m.IsPass() {
		return !p.CanMove(m.Color)
	}
	if !InBounds(m.Row, m.Col) {
		return false
	}
	return p.captures(m.Row, m.Col, m.Color)
}
