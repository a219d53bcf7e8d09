package engine

import (
	"abalone/experiments/metrics"
	"abalone/game"
	"context"
)

type Engine interface {
	// Run plays a game till a team wins or the turn limit is reached
	Run(ctx context.Context) (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
