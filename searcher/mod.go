package searcher

import (
	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/meta"
	"errors"
	"time"

	"golang.org/x/exp/rand"
)

// Terminal evaluations of a position for the searching side.
const WIN = 100
const LOSS = -WIN

var ErrNoLegalMove = errors.New("no legal move")

// Strategy picks a legal move for a colour. The board is never mutated; trial
// moves are played on clones.
type Strategy interface {
	Name() string
	DetermineMove(board *game.Board, colour game.Colour) (game.Move, error)
}

// Reporter is implemented by strategies that record metrics for their last
// search.
type Reporter interface {
	LastMetric() metrics.SearchMetric
}

type Option func(o *options)

type options struct {
	rng     *rand.Rand
	depth   int
	budget  int
	retries int
	metrics metrics.Collector
}

func newOptions(opts []Option) options {
	o := options{ // Default values
		depth:   meta.MINIMAX_DEPTH,
		budget:  meta.MOVE_BUDGET,
		retries: meta.NAIVE_RETRIES,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range opts {
		option(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return o
}

// WithRand injects the random source used for every random choice.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithSeed is WithRand over a fresh source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDepth sets the plies searched below each root candidate. Depth 3 can
// take around a minute per move on the starting position.
func WithDepth(depth int) Option {
	return func(o *options) {
		if depth >= 0 {
			o.depth = depth
		}
	}
}

func WithMoveBudget(budget int) Option {
	return func(o *options) {
		if budget > 0 {
			o.budget = budget
		}
	}
}

func WithRetries(retries int) Option {
	return func(o *options) {
		if retries > 0 {
			o.retries = retries
		}
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.metrics = metrics.NewCollector()
	}
}

// New builds a strategy by name: "naive", "heuristic" or "minimax".
func New(name string, opts ...Option) (Strategy, error) {
	switch name {
	case NaiveName:
		return NewNaive(opts...), nil
	case HeuristicName:
		return NewHeuristic(opts...), nil
	case MinimaxName:
		return NewMinimax(opts...), nil
	default:
		return nil, errors.New("unknown strategy " + name)
	}
}
