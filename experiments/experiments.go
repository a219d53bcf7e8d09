package experiments

import (
	"abalone/engine"
	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/gamemaster"
	"abalone/player"
	"abalone/searcher"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Experiment plays every matchup Games times. A matchup lists one agent per
// seat; seats take the colours of the matching variant in order.
type Experiment struct {
	Name       string
	Configs    []metrics.AgentConfig
	MatchUps   [][]metrics.AgentConfig
	Games      int
	TurnLimit  int
	Goroutines int
}

// Results holds the records of a finished experiment.
type Results struct {
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	StartTime time.Time
	EndTime   time.Time
}

// StrategyComparison pairs every strategy against every other one, both ways
// round so each gets to start.
func StrategyComparison(depth, budget int, seed uint64) []metrics.AgentConfig {
	return []metrics.AgentConfig{
		{ID: 1, Strategy: searcher.NaiveName, Seed: seed},
		{ID: 2, Strategy: searcher.HeuristicName, Seed: seed + 1},
		{ID: 3, Strategy: searcher.MinimaxName, Depth: depth, MoveBudget: budget, Seed: seed + 2},
	}
}

// DepthComparison lines minimax agents of increasing depth up against a
// depth 0 baseline.
func DepthComparison(maxDepth, budget int, seed uint64) (metrics.AgentConfig, []metrics.AgentConfig) {
	baseline := metrics.AgentConfig{ID: 0, Strategy: searcher.MinimaxName, Depth: 0, MoveBudget: budget, Seed: seed}
	configs := []metrics.AgentConfig{}
	for depth := 1; depth <= maxDepth; depth++ {
		configs = append(configs, metrics.AgentConfig{ID: depth, Strategy: searcher.MinimaxName, Depth: depth, MoveBudget: budget, Seed: seed + uint64(depth)})
	}
	return baseline, configs
}

// RoundRobin builds two seat matchups for every ordered pair of configs.
func RoundRobin(configs []metrics.AgentConfig) [][]metrics.AgentConfig {
	matchUps := [][]metrics.AgentConfig{}
	for _, a := range configs {
		for _, b := range configs {
			if a.ID != b.ID {
				matchUps = append(matchUps, []metrics.AgentConfig{a, b})
			}
		}
	}
	return matchUps
}

// AgainstBaseline pairs every config with the baseline, baseline first.
func AgainstBaseline(baseline metrics.AgentConfig, configs []metrics.AgentConfig) [][]metrics.AgentConfig {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return matchUps
}

// Run plays all games of the experiment on up to Goroutines goroutines.
func Run(ctx context.Context, exp Experiment) (Results, error) {
	type job struct {
		id      int
		matchUp []metrics.AgentConfig
		game    int
	}
	jobs := []job{}
	for _, matchUp := range exp.MatchUps {
		for i := 0; i < exp.Games; i++ {
			jobs = append(jobs, job{id: len(jobs) + 1, matchUp: matchUp, game: i})
		}
	}

	log.Info().Msgf("starting %s experiment: %d matchups, %d games", exp.Name, len(exp.MatchUps), len(jobs))
	start := time.Now()

	gameRecords := make([]metrics.GameRecord, len(jobs))
	moveRecords := make([][]metrics.MoveRecord, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(exp.Goroutines, 1))
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			outcome, gameMetric, moveMetrics, err := runGame(ctx, j.matchUp, j.game, exp.TurnLimit)
			if err != nil {
				return fmt.Errorf("game %d: %w", j.id, err)
			}
			agents := make([]int, len(j.matchUp))
			for k, config := range j.matchUp {
				agents[k] = config.ID
			}
			gameRecords[i] = metrics.GameRecord{ID: j.id, Agents: agents, GameMetric: gameMetric}
			for _, mm := range moveMetrics {
				moveRecords[i] = append(moveRecords[i], metrics.MoveRecord{Game: j.id, MoveMetric: mm})
			}
			log.Info().Msgf("completed game %d of %d with outcome: %s", j.id, len(jobs), outcome)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Results{}, err
	}

	results := Results{Games: gameRecords, StartTime: start, EndTime: time.Now()}
	for _, records := range moveRecords {
		results.Moves = append(results.Moves, records...)
	}
	log.Info().Msgf("completed %s experiment", exp.Name)
	return results, nil
}

// Store writes the setup of an experiment as JSON, its configs and records as
// CSV files.
func Store(writer *metrics.Writer, exp Experiment, results Results) error {
	setup := metrics.Setup{
		Name:      exp.Name,
		MatchUps:  exp.MatchUps,
		NumGames:  exp.Games,
		TurnLimit: exp.TurnLimit,
		StartTime: results.StartTime,
		EndTime:   results.EndTime,
	}
	if err := writer.WriteSetup(setup); err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}

	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(results.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return nil
}

// runGame executes a single game between the agents of a matchup
func runGame(ctx context.Context, matchUp []metrics.AgentConfig, round int, turnLimit int) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	players := make([]player.Player, len(matchUp))
	for i, config := range matchUp {
		strategy, err := CreateStrategy(config, uint64(round))
		if err != nil {
			return game.Outcome{}, metrics.GameMetric{}, nil, err
		}
		players[i] = player.NewComputer(game.Colours[i], strategy)
	}

	e, err := engine.LocalEngine(players, gamemaster.WithTurnLimit(turnLimit))
	if err != nil {
		return game.Outcome{}, metrics.GameMetric{}, nil, err
	}
	return e.Run(ctx)
}

// CreateStrategy builds the strategy of an agent. The round offsets the seed
// so repeated games differ while staying reproducible.
func CreateStrategy(config metrics.AgentConfig, round uint64) (searcher.Strategy, error) {
	options := []searcher.Option{
		searcher.WithSeed(config.Seed + round),
		searcher.WithMetrics(),
	}

	if config.Strategy == searcher.MinimaxName {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.MoveBudget > 0 {
		options = append(options, searcher.WithMoveBudget(config.MoveBudget))
	}

	return searcher.New(config.Strategy, options...)
}
