// meta/meta.go
package meta

// GO_ROUTINES defines the number of games run in parallel by experiments.
const GO_ROUTINES = 8

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 10

// TURN_LIMIT defines the number of moves, over all players, after which the
// game ends on points.
const TURN_LIMIT = 96

// MINIMAX_DEPTH defines the plies searched below each candidate move.
const MINIMAX_DEPTH = 2

// MOVE_BUDGET defines the number of boards a single minimax search may play.
const MOVE_BUDGET = 200000

// NAIVE_RETRIES bounds the random sampling of the naive strategy.
const NAIVE_RETRIES = 10000

// OUTPUT_DIR defines where experiment records are written.
const OUTPUT_DIR = "experiments/results"

// LOSER_MARBLES defines the number of captured marbles that ends the game.
const LOSER_MARBLES = 6
