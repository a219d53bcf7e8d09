package engine

import (
	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/gamemaster"
	"abalone/player"
	"abalone/searcher"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Local struct {
	Game    *gamemaster.Game
	Players map[game.Colour]player.Player
}

// measured is implemented by players exposing search metrics.
type measured interface {
	Metric() metrics.SearchMetric
}

// LocalEngine seats the players in the given order; the first one starts.
func LocalEngine(players []player.Player, options ...gamemaster.Option) (*Local, error) {
	if len(players) < 2 {
		panic("need at least two players")
	}
	colours := make([]game.Colour, len(players))
	seated := make(map[game.Colour]player.Player, len(players))
	for i, p := range players {
		colours[i] = p.Colour()
		seated[p.Colour()] = p
	}
	g, err := gamemaster.New(colours, options...)
	if err != nil {
		return nil, err
	}
	return &Local{Game: g, Players: seated}, nil
}

// Run executes the entire game loop until the game is over.
func (e *Local) Run(ctx context.Context) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	seats := e.Game.Seats()
	gameMetric := metrics.GameMetric{
		ID:             e.Game.ID.String(),
		Players:        len(seats),
		StartingColour: seats[0].String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: %s is starting", e.Game.ID, seats[0])

	for !e.Game.IsOver() {
		if err := ctx.Err(); err != nil {
			return game.Outcome{}, gameMetric, moveMetrics, err
		}
		colour := e.Game.Turn()
		p := e.Players[colour]

		move, err := p.DetermineMove(e.Game.Board())
		if errors.Is(err, searcher.ErrNoLegalMove) {
			// A stuck colour ends its game on points instead of failing it
			if _, err := e.Game.Stall(colour); err != nil {
				return game.Outcome{}, gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", e.Game.TurnCount()+1, err)
			}
			gameMetric.Stalled = colour.String()
			break
		}
		if err != nil {
			return game.Outcome{}, gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", e.Game.TurnCount()+1, err)
		}
		result, err := e.Game.AttemptMove(colour, move)
		if err != nil {
			return game.Outcome{}, gameMetric, moveMetrics, fmt.Errorf("turn %d: %s: %w", e.Game.TurnCount()+1, p.Name(), err)
		}

		moveMetric := metrics.MoveMetric{
			Step:   result.TurnCount,
			Colour: colour.String(),
			Move:   move.String(),
		}
		if m, ok := p.(measured); ok {
			moveMetric.SearchMetric = m.Metric()
		}
		moveMetrics = append(moveMetrics, moveMetric)
	}

	outcome := e.Game.Outcome()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.Game.TurnCount()
	gameMetric.Draw = outcome.Draw
	gameMetric.Winners = joinColours(outcome.WinnerColours())
	gameMetric.Scores = formatScores(e.Game.Board())

	if outcome.Draw {
		log.Info().Msgf("game %s ended in a draw after %d moves", e.Game.ID, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("game %s won by %s after %d moves", e.Game.ID, gameMetric.Winners, gameMetric.TotalMoves)
	}
	return outcome, gameMetric, moveMetrics, nil
}

func joinColours(colours []game.Colour) string {
	names := make([]string, len(colours))
	for i, c := range colours {
		names[i] = c.String()
	}
	return strings.Join(names, ",")
}

// formatScores lists team scores in seating order, e.g. "black=2 white=1".
func formatScores(b *game.Board) string {
	parts := make([]string, 0, len(b.Teams()))
	for _, t := range b.Teams() {
		parts = append(parts, fmt.Sprintf("%s=%d", t, t.Score))
	}
	return strings.Join(parts, " ")
}
