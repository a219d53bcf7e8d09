package searcher

import (
	"abalone/experiments/metrics"
	"abalone/game"
	"fmt"

	"github.com/rs/zerolog/log"
)

const MinimaxName = "minimax"

// Minimax searches the candidate moves of the acting colour against a single
// opposing colour. Every node plays on its own clone of the board. The search
// stops at the depth limit, when the shared move budget runs out or when a
// side has won.
type Minimax struct {
	options
	last metrics.SearchMetric
}

func NewMinimax(opts ...Option) *Minimax {
	return &Minimax{options: newOptions(opts)}
}

func (m *Minimax) Name() string {
	return MinimaxName
}

type search struct {
	*Minimax
	ownColour game.Colour
	oppColour game.Colour
	remaining int
}

// DetermineMove evaluates every candidate and returns the best one. The
// incumbent starts as a random candidate and is only replaced by a strictly
// better one.
func (m *Minimax) DetermineMove(board *game.Board, colour game.Colour) (game.Move, error) {
	m.metrics.Start(MinimaxName, m.depth)
	defer func() { m.last = m.metrics.Complete() }()

	own, ok := board.TeamOf(colour)
	if !ok {
		return game.Move{}, fmt.Errorf("%w: %s is not playing", ErrNoLegalMove, colour)
	}
	others := board.OtherTeams(own)
	if len(others) == 0 {
		return game.Move{}, fmt.Errorf("%w: %s has no opponent", ErrNoLegalMove, colour)
	}
	candidates := CandidateMoves(board, colour)
	m.metrics.AddCandidates(len(candidates))
	if len(candidates) == 0 {
		return game.Move{}, fmt.Errorf("%w: no candidates for %s", ErrNoLegalMove, colour)
	}

	s := &search{
		Minimax:   m,
		ownColour: colour,
		oppColour: others[0].Colours[0],
		remaining: m.budget,
	}
	values := make([]int, len(candidates))
	for i, candidate := range candidates {
		child := s.play(board, candidate)
		values[i] = s.minimax(child, 0, false)
	}

	best := m.rng.Intn(len(candidates))
	for i, value := range values {
		if value > values[best] {
			best = i
		}
	}
	if s.remaining <= 0 {
		log.Debug().Msgf("minimax move budget of %d exhausted for %s", m.budget, colour)
	}
	return candidates[best], nil
}

func (s *search) minimax(board *game.Board, depth int, isMax bool) int {
	score := s.evaluate(board)
	if score == WIN || score == LOSS {
		return score
	}
	if depth >= s.depth {
		return score
	}
	if s.remaining <= 0 {
		s.metrics.SetBudgetExhausted()
		return score
	}

	colour := s.oppColour
	if isMax {
		colour = s.ownColour
	}
	moves := CandidateMoves(board, colour)
	if len(moves) == 0 {
		return score
	}

	best := LOSS - 1
	if !isMax {
		best = WIN + 1
	}
	explored := false
	for _, move := range moves {
		if s.remaining <= 0 {
			s.metrics.SetBudgetExhausted()
			break
		}
		value := s.minimax(s.play(board, move), depth+1, !isMax)
		explored = true
		if isMax {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}
	if !explored {
		return score
	}
	return best
}

// play clones the board and applies the move, charging the move budget.
func (s *search) play(board *game.Board, move game.Move) *game.Board {
	child := board.Clone()
	child.Execute(move)
	s.remaining--
	s.metrics.AddNode()
	return child
}

// evaluate scores a position for the searching side: WIN or LOSS once a side
// reached the capture threshold, the score difference otherwise.
func (s *search) evaluate(board *game.Board) int {
	s.metrics.AddEvaluation()
	own, _ := board.TeamOf(s.ownColour)
	opponent, _ := board.TeamOf(s.oppColour)
	switch {
	case own.Score >= game.LoserMarbles:
		return WIN
	case opponent.Score >= game.LoserMarbles:
		return LOSS
	}
	return own.Score - opponent.Score
}

func (m *Minimax) LastMetric() metrics.SearchMetric {
	return m.last
}
