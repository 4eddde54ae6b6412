package game

// Weights of the heuristic terms. Early weights apply until the game-phase fraction passes
// PhaseMidpoint, late weights after it.
type Weights struct {
	MaterialEarly int     `yaml:"material_early"`
	MaterialLate  int     `yaml:"material_late"`
	MobilityEarly int     `yaml:"mobility_early"`
	MobilityLate  int     `yaml:"mobility_late"`
	Corner        int     `yaml:"corner"`
	Edge          int     `yaml:"edge"`
	Stable        int     `yaml:"stable"`
	Parity        int     `yaml:"parity"`
	PhaseMidpoint float64 `yaml:"phase_midpoint"`
	ParityPhase   float64 `yaml:"parity_phase"`
}

func DefaultWeights() Weights {
	return Weights{
		MaterialEarly: 1,
		MaterialLate:  8,
		MobilityEarly: 6,
		MobilityLate:  2,
		Corner:        30,
		Edge:          4,
		Stable:        2,
		Parity:        10,
		PhaseMidpoint: 0.5,
		ParityPhase:   0.85,
	}
}

// Evaluator scores positions with a fixed set of weights.
type Evaluator struct {
	weights Weights
}

func NewEvaluator(weights Weights) *Evaluator {
	return &Evaluator{weights: weights}
}

// EvaluateDefault scores pos for color with DefaultWeights.
func EvaluateDefault(pos *Position, color Color) int {
	return NewEvaluator(DefaultWeights()).Evaluate(pos, color)
}

// Phase returns the fraction of playable cells holding a disc.
func Phase(pos *Position) float64 {
	return float64(pos.Discs()) / float64(Playable)
}

// Evaluate combines material, mobility, corner, edge/stability and parity terms from color's
// perspective.
func (e *Evaluator) Evaluate(pos *Position, color Color) int {
	w := e.weights
	phase := Phase(pos)

	materialWeight, mobilityWeight := w.MaterialEarly, w.MobilityEarly
	if phase > w.PhaseMidpoint {
		materialWeight, mobilityWeight = w.MaterialLate, w.MobilityLate
	}

	score := materialWeight * material(pos, color)
	score += mobilityWeight * mobility(pos, color)
	score += w.Corner * corners(pos, color)

	edges, stable := stability(pos, color)
	score += w.Edge*edges + w.Stable*stable

	if phase > w.ParityPhase {
		score += w.Parity * parity(pos)
	}
	return score
}

func material(pos *Position, color Color) int {
	return pos.Score[color] - pos.Score[color.Other()]
}

func mobility(pos *Position, color Color) int {
	return len(pos.LegalMoves(color)) - len(pos.LegalMoves(color.Other()))
}

// corners counts owned corners minus opponent corners.
func corners(pos *Position, color Color) int {
	score := 0
	for _, corner := range Corners {
		if owner, ok := pos.Board[corner[0]][corner[1]].Occupant(); ok {
			score += sign(owner, color)
		}
	}
	return score
}

// stability counts non-corner edge discs, and interior discs whose four orthogonal grid
// neighbours share their color, both as color minus opponent.
func stability(pos *Position, color Color) (edges, stable int) {
	for r := 0; r < Diameter; r++ {
		for c := 0; c < Diameter; c++ {
			owner, ok := pos.Board[r][c].Occupant()
			if !ok {
				continue
			}
			switch {
			case IsCorner(r, c):
			case OnEdge(r, c):
				edges += sign(owner, color)
			case surrounded(pos, r, c, owner):
				stable += sign(owner, color)
			}
		}
	}
	return edges, stable
}

func surrounded(pos *Position, row, col int, owner Color) bool {
	own := Disc(owner)
	return pos.Cell(row-1, col) == own && pos.Cell(row+1, col) == own &&
		pos.Cell(row, col-1) == own && pos.Cell(row, col+1) == own
}

// parity is +1 with an odd number of empties left, -1 otherwise.
func parity(pos *Position) int {
	if pos.Empties()%2 == 1 {
		return 1
	}
	return -1
}

func sign(owner, color Color) int {
	if owner == color {
		return 1
	}
	return -1
}
