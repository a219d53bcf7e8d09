package main

import (
	"abalone/config"
	"abalone/engine"
	"abalone/experiments"
	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/gamemaster"
	"abalone/player"
	"abalone/searcher"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play, experiment, throughput or coords")
	envFile := flag.String("env", ".env", "optional file with ABALONE_* variables")
	players := flag.Int("players", 0, "number of players (2-4)")
	strategies := flag.String("strategies", "", "comma separated strategy per seat: naive, heuristic or minimax")
	depth := flag.Int("depth", -1, "minimax depth below each candidate move")
	budget := flag.Int("budget", 0, "boards a single minimax search may play")
	turnLimit := flag.Int("turns", 0, "moves over all players before the game ends on points")
	seed := flag.Uint64("seed", 0, "seed of the first strategy, following seats add one")
	games := flag.Int("games", 0, "games per matchup in experiment mode")
	logLevel := flag.String("log", "", "log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Flags given on the command line win over the environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "players":
			cfg.Players = *players
		case "strategies":
			cfg.Strategies = config.ParseStrategies(*strategies)
		case "depth":
			cfg.Depth = *depth
		case "budget":
			cfg.MoveBudget = *budget
		case "turns":
			cfg.TurnLimit = *turnLimit
		case "seed":
			cfg.Seed = *seed
		case "games":
			cfg.Games = *games
		case "log":
			if level, err := zerolog.ParseLevel(*logLevel); err == nil {
				cfg.LogLevel = level
			} else {
				log.Fatal().Err(err).Msg("invalid log level")
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "play":
		err = playGame(ctx, cfg)
	case "experiment":
		err = runExperiment(ctx, cfg)
	case "throughput":
		_, err = experiments.Throughput([]int{0, 1, 2, 3}, cfg.MoveBudget, cfg.Seed)
	case "coords":
		layout, lerr := game.NewLayout(game.Colours[:cfg.Players])
		if lerr != nil {
			log.Fatal().Err(lerr).Msg("invalid layout")
		}
		fmt.Println(game.NewBoard(layout).CoordHelp())
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

// playGame runs a single game and prints the board after every move.
func playGame(ctx context.Context, cfg config.Config) error {
	players := make([]player.Player, cfg.Players)
	for seat := range players {
		strategy, err := experiments.CreateStrategy(metrics.AgentConfig{
			ID:         seat,
			Strategy:   cfg.StrategyFor(seat),
			Depth:      cfg.Depth,
			MoveBudget: cfg.MoveBudget,
			Seed:       cfg.Seed + uint64(seat),
		}, 0)
		if err != nil {
			return err
		}
		players[seat] = player.NewComputer(game.Colours[seat], strategy)
	}

	e, err := engine.LocalEngine(players, gamemaster.WithTurnLimit(cfg.TurnLimit))
	if err != nil {
		return err
	}
	fmt.Println(e.Game.Board())

	updates := e.Game.Watch(cfg.TurnLimit)
	done := make(chan error, 1)
	go func() {
		outcome, _, _, err := e.Run(ctx)
		if err == nil {
			log.Info().Msgf("outcome: %s", outcome)
		}
		done <- err
	}()

	for {
		u, ok, closed := updates()
		if ok {
			fmt.Printf("\n%d. %s plays %s\n%s\n", u.Result.TurnCount, u.Colour, u.Move, u.Board)
			continue
		}
		if closed {
			return <-done
		}
		select {
		case err := <-done:
			if err != nil {
				return err
			}
			// Drain what is left of the feed
			for u, ok, _ := updates(); ok; u, ok, _ = updates() {
				fmt.Printf("\n%d. %s plays %s\n%s\n", u.Result.TurnCount, u.Colour, u.Move, u.Board)
			}
			return nil
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// runExperiment plays every configured strategy against every other one and
// stores the records under the output directory.
func runExperiment(ctx context.Context, cfg config.Config) error {
	configs := make([]metrics.AgentConfig, 0, len(cfg.Strategies))
	for i, name := range cfg.Strategies {
		if _, err := searcher.New(name); err != nil {
			return err
		}
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Strategy: name, Depth: cfg.Depth, MoveBudget: cfg.MoveBudget, Seed: cfg.Seed + uint64(i)})
	}
	if len(configs) < 2 {
		configs = experiments.StrategyComparison(cfg.Depth, cfg.MoveBudget, cfg.Seed)
	}

	exp := experiments.Experiment{
		Name:       "strategies",
		Configs:    configs,
		MatchUps:   experiments.RoundRobin(configs),
		Games:      cfg.Games,
		TurnLimit:  cfg.TurnLimit,
		Goroutines: cfg.Goroutines,
	}
	results, err := experiments.Run(ctx, exp)
	if err != nil {
		return err
	}

	writer, err := metrics.NewWriter(cfg.OutputDir, exp.Name)
	if err != nil {
		return err
	}
	if err := experiments.Store(writer, exp, results); err != nil {
		return err
	}
	log.Info().Msgf("records written to %s", writer.Dir())
	return nil
}
