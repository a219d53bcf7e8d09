package gamemaster

import (
	"abalone/game"
	"abalone/meta"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var (
	ErrGameOver      = errors.New("game is over - no moves allowed")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrUnknownColour = errors.New("colour is not seated in this game")
)

type Option func(g *Game)

func WithTurnLimit(limit int) Option {
	return func(g *Game) {
		if limit > 0 {
			g.turnLimit = limit
		}
	}
}

func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.ID = id
	}
}

// Game owns one board and serialises every mutation of it. Seats follow the
// colour order given at creation and seat 0 moves first.
type Game struct {
	ID uuid.UUID

	mu        sync.Mutex
	board     *game.Board
	seats     []game.Colour
	turnCount int
	turnLimit int
	history   []game.Move
	stalled   game.Colour // Colour left without a legal move, ends the game
	watchers  []chan Update
}

// Result is reported back after an accepted move.
type Result struct {
	Move      game.Move
	TurnCount int
	Next      game.Colour // NoColour once the game is over
	Scores    map[string]int
	Outcome   game.Outcome
}

// New seats 2 to 4 colours on the matching variant.
func New(colours []game.Colour, options ...Option) (*Game, error) {
	layout, err := game.NewLayout(colours)
	if err != nil {
		return nil, err
	}
	g := &Game{
		ID:        uuid.New(),
		board:     game.NewBoard(layout),
		seats:     slices.Clone(colours),
		turnLimit: meta.TURN_LIMIT,
	}
	for _, option := range options {
		option(g)
	}
	log.Info().Msgf("game %s created: %s with seats %v", g.ID, layout.Name, g.seats)
	return g, nil
}

// Board returns a snapshot of the board.
func (g *Game) Board() *game.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Clone()
}

func (g *Game) Seats() []game.Colour {
	return slices.Clone(g.seats)
}

// Turn is the colour expected to move next.
func (g *Game) Turn() game.Colour {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn()
}

func (g *Game) turn() game.Colour {
	return g.seats[g.turnCount%len(g.seats)]
}

func (g *Game) TurnCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turnCount
}

func (g *Game) TurnLimit() int {
	return g.turnLimit
}

func (g *Game) History() []game.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.history)
}

// IsOver reports whether a team won, the turn limit was reached or a colour
// had no legal move.
func (g *Game) IsOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.outcome().Over
}

func (g *Game) Outcome() game.Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.outcome()
}

// outcome resolves a stalled game on points, like one at the turn limit.
func (g *Game) outcome() game.Outcome {
	return g.board.Outcome(g.turnCount >= g.turnLimit || g.stalled != game.NoColour)
}

// Stalled returns the colour that ended the game without a legal move.
func (g *Game) Stalled() (game.Colour, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stalled, g.stalled != game.NoColour
}

// Stall ends the game on points because the colour to move has no legal
// move.
func (g *Game) Stall(colour game.Colour) (game.Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.outcome().Over {
		return game.Outcome{}, ErrGameOver
	}
	if !slices.Contains(g.seats, colour) {
		return game.Outcome{}, fmt.Errorf("%w: %s", ErrUnknownColour, colour)
	}
	if turn := g.turn(); turn != colour {
		return game.Outcome{}, fmt.Errorf("%w: %s to move, not %s", ErrNotYourTurn, turn, colour)
	}

	g.stalled = colour
	outcome := g.outcome()
	log.Warn().Msgf("game %s stalled after %d turns: %s has no legal move, %s", g.ID, g.turnCount, colour, outcome)
	g.closeWatchers()
	return outcome, nil
}

// AttemptMove plays the move for the colour if it is that colour's turn and
// the move is legal for it.
func (g *Game) AttemptMove(colour game.Colour, move game.Move) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.outcome().Over {
		return Result{}, ErrGameOver
	}
	if !slices.Contains(g.seats, colour) {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownColour, colour)
	}
	if turn := g.turn(); turn != colour {
		return Result{}, fmt.Errorf("%w: %s to move, not %s", ErrNotYourTurn, turn, colour)
	}
	if !g.board.IsValidFor(move, colour) {
		return Result{}, fmt.Errorf("%w: %s by %s", game.ErrIllegalMove, move, colour)
	}

	g.board.Execute(move)
	g.turnCount++
	g.history = append(g.history, move)
	log.Debug().Msgf("game %s turn %d: %s played %s", g.ID, g.turnCount, colour, move)

	result := Result{
		Move:      move,
		TurnCount: g.turnCount,
		Scores:    g.board.Scores(),
		Outcome:   g.outcome(),
	}
	if result.Outcome.Over {
		log.Info().Msgf("game %s over after %d turns: %s", g.ID, g.turnCount, result.Outcome)
	} else {
		result.Next = g.turn()
	}
	g.publish(colour, result)
	return result, nil
}

// AttemptWireMove parses a move in wire form and attempts it.
func (g *Game) AttemptWireMove(colour game.Colour, wire string) (Result, error) {
	move, err := game.ParseWireMove(wire)
	if err != nil {
		return Result{}, err
	}
	return g.AttemptMove(colour, move)
}

// Reset restores the starting position and turn order.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.board.Reset()
	g.turnCount = 0
	g.history = nil
	g.stalled = game.NoColour
}
