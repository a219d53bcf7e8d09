package searcher

import (
	"abalone/experiments/metrics"
	"abalone/game"
	"fmt"

	"github.com/rs/zerolog/log"
)

const NaiveName = "naive"

// Naive samples a random own marble and a random direction until the single
// marble move is legal, giving up after a bounded number of attempts.
type Naive struct {
	options
	last metrics.SearchMetric
}

func NewNaive(opts ...Option) *Naive {
	return &Naive{options: newOptions(opts)}
}

func (n *Naive) Name() string {
	return NaiveName
}

func (n *Naive) DetermineMove(board *game.Board, colour game.Colour) (game.Move, error) {
	n.metrics.Start(NaiveName, 0)
	defer func() { n.last = n.metrics.Complete() }()

	fields := board.FieldsOf(colour)
	if len(fields) == 0 {
		return game.Move{}, fmt.Errorf("%w: %s has no marbles", ErrNoLegalMove, colour)
	}
	for i := 0; i < n.retries; i++ {
		n.metrics.AddCandidates(1)
		field := fields[n.rng.Intn(len(fields))]
		move := game.NewMove(field, field, game.Direction(n.rng.Intn(game.NumDirections)))
		if board.IsValidFor(move, colour) {
			return move, nil
		}
	}
	log.Warn().Msgf("naive strategy found no move for %s after %d attempts", colour, n.retries)
	return game.Move{}, fmt.Errorf("%w: %s after %d attempts", ErrNoLegalMove, colour, n.retries)
}

func (n *Naive) LastMetric() metrics.SearchMetric {
	return n.last
}
