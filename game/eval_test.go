package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// zeroWeights isolates one term at a time.
func zeroWeights() Weights {
	return Weights{PhaseMidpoint: 0.5, ParityPhase: 0.85}
}

// fillPosition places alternating discs on the first n playable cells, leaving the rest empty.
func fillPosition(n int) Position {
	pos := NewPosition()
	placed := 0
	for r := 0; r < Diameter && placed < n; r++ {
		for c := 0; c < Diameter && placed < n; c++ {
			if InBounds(r, c) {
				pos.Place(r, c, Color(placed%2))
				placed++
			}
		}
	}
	return pos
}

func TestEvaluateMaterial(t *testing.T) {
	w := zeroWeights()
	w.MaterialEarly = 1
	w.MaterialLate = 10
	e := NewEvaluator(w)

	t.Run("early game uses the low material weight", func(t *testing.T) {
		pos := InitialPosition()
		pos.Place(6, 6, Black)

		require.Equal(t, 1, e.Evaluate(&pos, Black))
		require.Equal(t, -1, e.Evaluate(&pos, White))
	})

	t.Run("material weight escalates past the midpoint", func(t *testing.T) {
		pos := fillPosition(41)
		require.Greater(t, Phase(&pos), 0.5)
		diff := pos.Score[White] - pos.Score[Black]
		require.Equal(t, 1, diff)

		require.Equal(t, 10, e.Evaluate(&pos, White))
	})
}

func TestEvaluateMobility(t *testing.T) {
	w := zeroWeights()
	w.MobilityEarly = 5
	w.MobilityLate = 1
	e := NewEvaluator(w)

	pos := NewPosition()
	pos.Place(4, 4, White)
	for _, d := range directions {
		pos.Place(4+d.dr, 4+d.dc, Black)
	}

	require.Equal(t, 5*6, e.Evaluate(&pos, White), "White has six moves and Black none")
	require.Equal(t, -5*6, e.Evaluate(&pos, Black))
}

func TestEvaluateCorners(t *testing.T) {
	w := zeroWeights()
	w.Corner = 30
	e := NewEvaluator(w)

	pos := NewPosition()
	pos.Place(Corners[0][0], Corners[0][1], White)
	pos.Place(Corners[1][0], Corners[1][1], White)
	pos.Place(Corners[2][0], Corners[2][1], Black)

	require.Equal(t, 30, e.Evaluate(&pos, White))
	require.Equal(t, -30, e.Evaluate(&pos, Black))
}

func TestEvaluateStability(t *testing.T) {
	t.Run("edge discs score apart from corners", func(t *testing.T) {
		w := zeroWeights()
		w.Edge = 4
		e := NewEvaluator(w)

		pos := NewPosition()
		pos.Place(0, 5, White)
		pos.Place(0, 6, White)
		pos.Place(0, 4, White) // corner, not an edge disc
		pos.Place(4, 4, Black) // interior

		require.Equal(t, 8, e.Evaluate(&pos, White))
	})

	t.Run("interior disc surrounded orthogonally by its color", func(t *testing.T) {
		w := zeroWeights()
		w.Stable = 3
		e := NewEvaluator(w)

		pos := NewPosition()
		pos.Place(4, 4, Black)
		pos.Place(3, 4, Black)
		pos.Place(5, 4, Black)
		pos.Place(4, 3, Black)
		pos.Place(4, 5, Black)

		require.Equal(t, 3, e.Evaluate(&pos, Black))

		pos.Place(4, 5, White)
		require.Equal(t, 0, e.Evaluate(&pos, Black))
	})
}

func TestEvaluateParity(t *testing.T) {
	w := zeroWeights()
	w.Parity = 10
	e := NewEvaluator(w)

	t.Run("ignored before the endgame", func(t *testing.T) {
		pos := fillPosition(50)
		require.LessOrEqual(t, Phase(&pos), 0.85)
		require.Equal(t, 0, e.Evaluate(&pos, White))
	})

	t.Run("odd empties favor the evaluated color", func(t *testing.T) {
		pos := fillPosition(58)
		require.Equal(t, 3, pos.Empties())
		require.Equal(t, 10, e.Evaluate(&pos, White))
		require.Equal(t, 10, e.Evaluate(&pos, Black))
	})

	t.Run("even empties penalize", func(t *testing.T) {
		pos := fillPosition(59)
		require.Equal(t, -10, e.Evaluate(&pos, White))
	})
}

func TestEvaluateDefault(t *testing.T) {
	pos := InitialPosition()
	require.Equal(t, 0, EvaluateDefault(&pos, White), "Initial position is symmetric")
}

func TestFprint(t *testing.T) {
	pos := InitialPosition()
	out := pos.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, Diameter+2)
	require.Equal(t, 3, strings.Count(out, "W"))
	require.Equal(t, 3, strings.Count(out, "B"))
	require.Contains(t, out, "white 3 - black 3")
}
