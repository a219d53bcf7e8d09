package searcher

import (
	"abalone/experiments/metrics"
	"abalone/game"
	"fmt"

	"golang.org/x/exp/slices"
)

const HeuristicName = "heuristic"

// CandidateMoves lists legal moves for a colour: from every own marble, the
// group is extended through up to two teammates along each direction and
// moved both ways along that line. Side-steps of groups are not generated.
func CandidateMoves(board *game.Board, colour game.Colour) []game.Move {
	team, ok := board.TeamOf(colour)
	if !ok {
		return nil
	}
	var moves []game.Move
	for _, head := range board.FieldsOf(colour) {
		for d := game.Direction(0); d < game.NumDirections; d++ {
			tail := head
			for i := 0; i < game.MaxGroup-1; i++ {
				next, ok := tail.Neighbor(d)
				if !ok {
					break
				}
				marble, occupied := board.MarbleAt(next)
				if !occupied || !team.Has(marble.Colour) {
					break
				}
				tail = next
			}
			for _, dir := range []game.Direction{d, d.Opposite()} {
				move := game.NewMove(head, tail, dir)
				if board.IsValidFor(move, colour) && !slices.Contains(moves, move) {
					moves = append(moves, move)
				}
			}
		}
	}
	return moves
}

// Heuristic plays a uniformly random candidate move.
type Heuristic struct {
	options
	last metrics.SearchMetric
}

func NewHeuristic(opts ...Option) *Heuristic {
	return &Heuristic{options: newOptions(opts)}
}

func (h *Heuristic) Name() string {
	return HeuristicName
}

func (h *Heuristic) DetermineMove(board *game.Board, colour game.Colour) (game.Move, error) {
	h.metrics.Start(HeuristicName, 0)
	defer func() { h.last = h.metrics.Complete() }()

	moves := CandidateMoves(board, colour)
	h.metrics.AddCandidates(len(moves))
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("%w: no candidates for %s", ErrNoLegalMove, colour)
	}
	return moves[h.rng.Intn(len(moves))], nil
}

func (h *Heuristic) LastMetric() metrics.SearchMetric {
	return h.last
}
