package experiments

import (
	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Throughput times one minimax search per depth on the two player starting
// position.
func Throughput(depths []int, budget int, seed uint64) ([]metrics.SearchMetric, error) {
	board := game.NewBoard(game.TwoPlayer(game.Black, game.White))
	results := make([]metrics.SearchMetric, 0, len(depths))

	log.Info().Msg("starting throughput experiment...")
	for _, depth := range depths {
		mm := searcher.NewMinimax(
			searcher.WithSeed(seed),
			searcher.WithDepth(depth),
			searcher.WithMoveBudget(budget),
			searcher.WithMetrics(),
		)
		move, err := mm.DetermineMove(board, game.Black)
		if err != nil {
			return nil, fmt.Errorf("depth %d: %w", depth, err)
		}
		metric := mm.LastMetric()
		results = append(results, metric)
		log.Info().Msgf("depth %d chose %s: %d nodes in %s (%.0f nodes/s), budget exhausted: %t",
			depth, move, metric.Nodes, metric.Duration, nodesPerSecond(metric), metric.BudgetExhausted)
	}
	log.Info().Msg("completed throughput experiment")
	return results, nil
}

func nodesPerSecond(m metrics.SearchMetric) float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Nodes) / m.Duration.Seconds()
}
