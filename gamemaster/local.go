package gamemaster

import (
	"abalone/game"
)

// Update is published for every accepted move.
type Update struct {
	Colour game.Colour
	Move   game.Move
	Board  *game.Board // Snapshot after the move
	Result Result
}

// UpdateGetter polls the next update without blocking. It returns false when
// no update is pending, and closed once the game is over and drained.
type UpdateGetter func() (u Update, ok bool, closed bool)

// Watch subscribes to the updates of the game. Updates that do not fit in the
// buffer are dropped for that watcher.
func (g *Game) Watch(buffer int) UpdateGetter {
	ch := make(chan Update, max(buffer, 1))
	g.mu.Lock()
	if g.outcome().Over {
		close(ch)
	} else {
		g.watchers = append(g.watchers, ch)
	}
	g.mu.Unlock()

	return func() (Update, bool, bool) {
		select {
		case u, ok := <-ch:
			if !ok { // Game over
				return Update{}, false, true
			}
			return u, true, false
		default:
			// No updates yet, return immediately
			return Update{}, false, false
		}
	}
}

// publish must be called with the lock held.
func (g *Game) publish(colour game.Colour, result Result) {
	for _, ch := range g.watchers {
		u := Update{
			Colour: colour,
			Move:   result.Move,
			Board:  g.board.Clone(),
			Result: result,
		}
		select {
		case ch <- u:
		default:
		}
	}
	if result.Outcome.Over {
		g.closeWatchers()
	}
}

// closeWatchers ends every feed. It must be called with the lock held.
func (g *Game) closeWatchers() {
	for _, ch := range g.watchers {
		close(ch)
	}
	g.watchers = nil
}
