package experiments

import (
	"abalone/experiments/metrics"
	"abalone/searcher"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchUps(t *testing.T) {
	t.Run("round robin pairs every ordered combination", func(t *testing.T) {
		configs := StrategyComparison(1, 100, 0)
		matchUps := RoundRobin(configs)
		require.Len(t, matchUps, 6, "Three agents give six ordered pairs")
		for _, m := range matchUps {
			require.NotEqual(t, m[0].ID, m[1].ID)
		}
	})

	t.Run("baseline seats first", func(t *testing.T) {
		baseline, configs := DepthComparison(2, 100, 0)
		matchUps := AgainstBaseline(baseline, configs)
		require.Len(t, matchUps, 2)
		require.Equal(t, 0, matchUps[0][0].Depth)
		require.Equal(t, 2, matchUps[1][1].Depth)
	})
}

func TestCreateStrategy(t *testing.T) {
	s, err := CreateStrategy(metrics.AgentConfig{Strategy: searcher.MinimaxName, Depth: 0, Seed: 1}, 0)
	require.NoError(t, err)
	require.IsType(t, &searcher.Minimax{}, s)

	_, err = CreateStrategy(metrics.AgentConfig{Strategy: "unknown"}, 0)
	require.Error(t, err)
}

func TestRunAndStore(t *testing.T) {
	configs := []metrics.AgentConfig{
		{ID: 1, Strategy: searcher.NaiveName, Seed: 1},
		{ID: 2, Strategy: searcher.HeuristicName, Seed: 2},
	}
	exp := Experiment{
		Name:       "test",
		Configs:    configs,
		MatchUps:   RoundRobin(configs),
		Games:      2,
		TurnLimit:  12,
		Goroutines: 2,
	}

	results, err := Run(context.Background(), exp)
	require.NoError(t, err)
	require.Len(t, results.Games, 4, "Two matchups of two games")
	require.Len(t, results.Moves, 4*12, "Every game should stop at the turn limit")
	for i, record := range results.Games {
		require.Equal(t, i+1, record.ID, "Records should keep job order")
		require.Equal(t, 12, record.TotalMoves)
	}

	writer, err := metrics.NewWriter(t.TempDir(), exp.Name)
	require.NoError(t, err)
	require.NoError(t, Store(writer, exp, results))
	for _, file := range []string{"setup.json", "agent_configs.csv", "game_records.csv", "move_records.csv"} {
		info, err := os.Stat(filepath.Join(writer.Dir(), file))
		require.NoError(t, err, "%s should be written", file)
		require.Positive(t, info.Size())
	}
}

func TestRunCancelled(t *testing.T) {
	configs := StrategyComparison(0, 10, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Experiment{Name: "cancelled", Configs: configs, MatchUps: RoundRobin(configs), Games: 1, TurnLimit: 4})
	require.ErrorIs(t, err, context.Canceled)
}

func TestThroughput(t *testing.T) {
	results, err := Throughput([]int{0, 1}, 500, 3)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Less(t, results[0].Nodes, results[1].Nodes, "Deeper search should play more boards")
	require.LessOrEqual(t, results[1].Nodes, 500+results[1].Candidates)
}
