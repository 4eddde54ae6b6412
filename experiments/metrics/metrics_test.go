package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("counts and resets between searches", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, true)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddCutoff()
		m := c.Complete()
		require.Equal(t, 3, m.Depth)
		require.True(t, m.Pruning)
		require.Equal(t, 2, m.Nodes)
		require.Equal(t, 1, m.Leaves)
		require.Equal(t, 1, m.Cutoffs)

		c.Start(1, false)
		m = c.Complete()
		require.Zero(t, m.Nodes)
		require.Zero(t, m.Cutoffs)
		require.False(t, m.Pruning)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3, true)
		c.AddNode()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "unit")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Depth: 2, Pruning: true}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		Index: 1, Black: 1, White: 1,
		GameMetric: GameMetric{ID: "g", WhiteDiscs: 30, BlackDiscs: 31, Winner: "black", StartTime: time.Now(), EndTime: time.Now()},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: "black", Move: "(5, 5)"}}}))

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{{"id", "depth", "pruning", "pass_nodes"}, {"1", "2", "true", "false"}}, configs)

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, "black", games[1][4])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, "(5, 5)", moves[1][3])
}
