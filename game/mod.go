package game

import "fmt"

// Hexagon side length and the square grid it is embedded in.
const (
	Side     = 5
	Diameter = 2*Side - 1
	Playable = 3*Side*(Side-1) + 1
)

// Color is the side owning a disc or a move.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// Cell is the state of one grid square. The values double as the wire encoding.
type Cell uint8

const (
	Empty Cell = iota
	WhiteDisc
	BlackDisc
	OutOfBound
)

// Disc returns the cell occupied by c.
func Disc(c Color) Cell {
	if c == White {
		return WhiteDisc
	}
	return BlackDisc
}

// Occupant reports which color holds the cell, if any.
func (c Cell) Occupant() (Color, bool) {
	switch c {
	case WhiteDisc:
		return White, true
	case BlackDisc:
		return Black, true
	default:
		return White, false
	}
}

// Evaluates a position to a score from color's perspective, higher is better for color.
type Evaluate func(pos *Position, color Color) int

type direction struct{ dr, dc int }

// Hex adjacency in axial coordinates, counter-clockwise from east.
var directions = [6]direction{
	{0, 1}, {-1, 1}, {-1, 0},
	{0, -1}, {1, -1}, {1, 0},
}

// Corners of the hexagon in grid coordinates.
var Corners = [6][2]int{
	{0, Side - 1}, {Side - 1, 0}, {Diameter - 1, 0},
	{Diameter - 1, Side - 1}, {Side - 1, Diameter - 1}, {0, Diameter - 1},
}

// InBounds reports whether (row, col) is a playable cell of the hexagon.
func InBounds(row, col int) bool {
	if row < 0 || col < 0 || row >= Diameter || col >= Diameter {
		return false
	}
	sum := row + col
	return sum >= Side-1 && sum <= 3*(Side-1)
}

// OnEdge reports whether a playable cell lies on the outer ring.
func OnEdge(row, col int) bool {
	if !InBounds(row, col) {
		return false
	}
	sum := row + col
	return row == 0 || col == 0 || row == Diameter-1 || col == Diameter-1 ||
		sum == Side-1 || sum == 3*(Side-1)
}

// IsCorner reports whether (row, col) is one of the six corners.
func IsCorner(row, col int) bool {
	for _, corner := range Corners {
		if corner[0] == row && corner[1] == col {
			return true
		}
	}
	return false
}
