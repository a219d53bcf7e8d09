package player

import (
	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/searcher"
	"fmt"
)

// Player is asked for a move whenever its colour is to move.
type Player interface {
	Name() string
	Colour() game.Colour
	DetermineMove(board *game.Board) (game.Move, error)
}

// Computer plays the moves chosen by a search strategy.
type Computer struct {
	colour   game.Colour
	strategy searcher.Strategy
}

// NewComputer creates a new Computer player for a colour.
func NewComputer(colour game.Colour, strategy searcher.Strategy) *Computer {
	return &Computer{
		colour:   colour,
		strategy: strategy,
	}
}

func (p *Computer) Name() string {
	return fmt.Sprintf("%s-%s", p.strategy.Name(), p.colour)
}

func (p *Computer) Colour() game.Colour {
	return p.colour
}

// DetermineMove consults the strategy on a snapshot of the board.
func (p *Computer) DetermineMove(board *game.Board) (game.Move, error) {
	move, err := p.strategy.DetermineMove(board, p.colour)
	if err != nil {
		return game.Move{}, fmt.Errorf("%s: %w", p.Name(), err)
	}
	return move, nil
}

// Metric returns the search metrics of the last move, if the strategy
// records any.
func (p *Computer) Metric() metrics.SearchMetric {
	if r, ok := p.strategy.(searcher.Reporter); ok {
		return r.LastMetric()
	}
	return metrics.SearchMetric{}
}
