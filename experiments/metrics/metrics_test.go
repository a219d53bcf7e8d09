package metrics

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("start resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax", 2)
		c.AddCandidates(3)
		c.AddNode()
		c.AddNode()
		c.AddEvaluation()
		c.SetBudgetExhausted()

		m := c.Complete()
		require.Equal(t, "minimax", m.Strategy)
		require.Equal(t, 2, m.Depth)
		require.Equal(t, 3, m.Candidates)
		require.Equal(t, 2, m.Nodes)
		require.Equal(t, 1, m.Evaluations)
		require.True(t, m.BudgetExhausted)

		c.Start("heuristic", 0)
		m = c.Complete()
		require.Zero(t, m.Nodes, "Counters should not leak into the next search")
		require.False(t, m.BudgetExhausted)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("naive", 0)
		c.AddNode()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "comparison")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "comparison"), filepath.Dir(w.Dir()))

	t.Run("setup is written as json with its duration", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		setup := Setup{
			Name:      "comparison",
			MatchUps:  [][]AgentConfig{{{ID: 1, Strategy: "naive"}, {ID: 2, Strategy: "minimax", Depth: 2}}},
			NumGames:  4,
			TurnLimit: 96,
			StartTime: start,
			EndTime:   start.Add(time.Minute),
		}
		require.NoError(t, w.WriteSetup(setup))

		data, err := os.ReadFile(filepath.Join(w.Dir(), "setup.json"))
		require.NoError(t, err)
		var read Setup
		require.NoError(t, json.Unmarshal(data, &read))
		require.Equal(t, time.Minute, read.Duration)
		require.Equal(t, 2, read.MatchUps[0][1].Depth)
	})

	t.Run("agent configs have a header and one row each", func(t *testing.T) {
		configs := []AgentConfig{{ID: 1, Strategy: "naive", Seed: 7}, {ID: 2, Strategy: "minimax", Depth: 2, MoveBudget: 1000}}
		require.NoError(t, w.WriteAgentConfigs(configs))

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"id", "strategy", "depth", "move_budget", "seed"}, rows[0])
		require.Equal(t, []string{"2", "minimax", "2", "1000", "0"}, rows[2])
	})

	t.Run("game records join their agents", func(t *testing.T) {
		records := []GameRecord{{ID: 1, Agents: []int{3, 1}, GameMetric: GameMetric{ID: "x", Players: 2, StartingColour: "white", Winners: "white", Scores: "white:6 red:2", TotalMoves: 40}}}
		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "3-1", rows[1][2])
		require.Equal(t, "false", rows[1][6])
		require.Equal(t, "40", rows[1][11])
		require.Equal(t, "", rows[1][12], "Finished games have no stalled colour")
	})

	t.Run("move records keep the game id", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 5, MoveMetric: MoveMetric{Step: 0, Colour: "white", Move: "A1,A1,1", SearchMetric: SearchMetric{Strategy: "naive"}}},
			{Game: 5, MoveMetric: MoveMetric{Step: 1, Colour: "red", Move: "I5,I5,3", SearchMetric: SearchMetric{Strategy: "minimax", Nodes: 12, BudgetExhausted: true}}},
		}
		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, "5", rows[2][0])
		require.Equal(t, "12", rows[2][8])
		require.Equal(t, "true", rows[2][10])
	})
}
