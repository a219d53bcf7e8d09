package gamemaster

import (
	"abalone/game"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func mustMove(t *testing.T, s string) game.Move {
	t.Helper()
	m, err := game.ParseMove(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return m
}

func TestNewGame(t *testing.T) {
	g, err := New([]game.Colour{game.White, game.Black})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if g.ID == uuid.Nil {
		t.Error("expected a game ID")
	}
	if g.Turn() != game.White {
		t.Errorf("expected white to start, got %s", g.Turn())
	}
	if g.TurnLimit() != 96 {
		t.Errorf("expected the default turn limit of 96, got %d", g.TurnLimit())
	}
	if g.Board().CountOnGrid() != 28 {
		t.Errorf("expected 28 marbles on a two player board, got %d", g.Board().CountOnGrid())
	}

	if _, err := New([]game.Colour{game.White}); !errors.Is(err, game.ErrPlayerCount) {
		t.Errorf("expected a player count error, got %v", err)
	}

	id := uuid.New()
	g, err = New([]game.Colour{game.White, game.Black, game.Red, game.Green}, WithID(id), WithTurnLimit(10))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if g.ID != id || g.TurnLimit() != 10 {
		t.Errorf("options were not applied: id=%s limit=%d", g.ID, g.TurnLimit())
	}
}

func TestAttemptMove_ValidMove(t *testing.T) {
	// c0 sits at the bottom, so black's marble at C2 can step up into D2
	g, _ := New([]game.Colour{game.Black, game.White})
	getUpdate := g.Watch(4)

	result, err := g.AttemptMove(game.Black, mustMove(t, "C2,C2,0"))
	if err != nil {
		t.Fatalf("expected no error for a valid move, got %v", err)
	}
	if result.TurnCount != 1 || result.Next != game.White {
		t.Errorf("expected turn 1 with white next, got %+v", result)
	}
	if result.Outcome.Over {
		t.Error("game should not be over after one move")
	}
	if m, ok := g.Board().MarbleAt(mustMove(t, "D2,D2,0").Head); !ok || m.Colour != game.Black {
		t.Error("expected a black marble on D2")
	}

	u, ok, closed := getUpdate()
	if !ok || closed {
		t.Fatal("expected an update after playing a move, got none")
	}
	if u.Colour != game.Black || u.Move != result.Move {
		t.Errorf("unexpected update %+v", u)
	}
	if _, ok, _ := getUpdate(); ok {
		t.Error("expected no further update")
	}
}

func TestAttemptMove_Rejections(t *testing.T) {
	g, _ := New([]game.Colour{game.Black, game.White})

	if _, err := g.AttemptMove(game.White, mustMove(t, "G4,G4,4")); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("expected not your turn, got %v", err)
	}
	if _, err := g.AttemptMove(game.Red, mustMove(t, "C2,C2,0")); !errors.Is(err, ErrUnknownColour) {
		t.Errorf("expected unknown colour, got %v", err)
	}
	if _, err := g.AttemptMove(game.Black, mustMove(t, "G4,G4,4")); !errors.Is(err, game.ErrIllegalMove) {
		t.Errorf("expected an illegal move error for moving white's marble, got %v", err)
	}
	if _, err := g.AttemptMove(game.Black, mustMove(t, "A0,A0,4")); !errors.Is(err, game.ErrIllegalMove) {
		t.Errorf("expected an illegal move error, got %v", err)
	}
	if _, err := g.AttemptWireMove(game.Black, "3,C;3,C;9"); !errors.Is(err, game.ErrMoveFormat) {
		t.Errorf("expected a move format error, got %v", err)
	}
	if g.TurnCount() != 0 || len(g.History()) != 0 {
		t.Error("rejected moves must not change the game")
	}

	if _, err := g.AttemptWireMove(game.Black, "3,C;3,C;0"); err != nil {
		t.Errorf("expected the wire move to be accepted, got %v", err)
	}
}

func TestTurnLimit(t *testing.T) {
	g, _ := New([]game.Colour{game.Black, game.White}, WithTurnLimit(2))
	getUpdate := g.Watch(1)

	if _, err := g.AttemptMove(game.Black, mustMove(t, "C2,C2,0")); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	result, err := g.AttemptMove(game.White, mustMove(t, "G4,G4,4"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !result.Outcome.Over || !result.Outcome.Draw {
		t.Errorf("expected a draw at the turn limit, got %+v", result.Outcome)
	}
	if result.Next != game.NoColour {
		t.Errorf("expected no next colour, got %s", result.Next)
	}
	if !g.IsOver() {
		t.Error("expected the game to be over")
	}
	if _, err := g.AttemptMove(game.Black, mustMove(t, "D2,D2,0")); !errors.Is(err, ErrGameOver) {
		t.Errorf("expected game over, got %v", err)
	}

	// The buffer of one keeps the first update, then the channel is closed
	if _, ok, _ := getUpdate(); !ok {
		t.Error("expected the buffered update")
	}
	if _, _, closed := getUpdate(); !closed {
		t.Error("expected the update feed to be closed")
	}

	g.Reset()
	if g.IsOver() || g.Turn() != game.Black || g.TurnCount() != 0 {
		t.Error("expected reset to restart the game")
	}
}

func TestStall(t *testing.T) {
	g, _ := New([]game.Colour{game.Black, game.White})
	getUpdate := g.Watch(1)

	if _, err := g.Stall(game.White); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("expected not your turn, got %v", err)
	}
	if _, err := g.Stall(game.Green); !errors.Is(err, ErrUnknownColour) {
		t.Errorf("expected unknown colour, got %v", err)
	}

	outcome, err := g.Stall(game.Black)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !outcome.Over || !outcome.Draw {
		t.Errorf("expected a draw on points, got %+v", outcome)
	}
	if colour, ok := g.Stalled(); !ok || colour != game.Black {
		t.Errorf("expected black to be recorded as stalled, got %s", colour)
	}
	if _, err := g.AttemptMove(game.Black, mustMove(t, "C2,C2,0")); !errors.Is(err, ErrGameOver) {
		t.Errorf("expected game over, got %v", err)
	}
	if _, _, closed := getUpdate(); !closed {
		t.Error("expected the update feed to be closed")
	}

	g.Reset()
	if _, ok := g.Stalled(); ok || g.IsOver() {
		t.Error("expected reset to clear the stall")
	}
}

func TestConcurrentAttempts(t *testing.T) {
	g, _ := New([]game.Colour{game.Black, game.White})
	move := mustMove(t, "C2,C2,0")

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.AttemptMove(game.Black, move); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if accepted != 1 {
		t.Errorf("expected exactly one accepted move, got %d", accepted)
	}
	if g.TurnCount() != 1 {
		t.Errorf("expected turn count 1, got %d", g.TurnCount())
	}
}
