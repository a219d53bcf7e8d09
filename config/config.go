package config

import (
	"abalone/meta"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var ErrInvalid = errors.New("invalid configuration")

// Config holds the run settings. Defaults come from meta and are overridden
// by the environment, which may be seeded from a .env file.
type Config struct {
	Players    int
	Strategies []string // one per seat
	Depth      int
	MoveBudget int
	TurnLimit  int
	Seed       uint64
	Games      int
	Goroutines int
	OutputDir  string
	LogLevel   zerolog.Level
}

func Default() Config {
	return Config{
		Players:    2,
		Strategies: []string{"minimax", "heuristic"},
		Depth:      meta.MINIMAX_DEPTH,
		MoveBudget: meta.MOVE_BUDGET,
		TurnLimit:  meta.TURN_LIMIT,
		Seed:       1,
		Games:      meta.NUM_GAMES,
		Goroutines: meta.GO_ROUTINES,
		OutputDir:  meta.OUTPUT_DIR,
		LogLevel:   zerolog.InfoLevel,
	}
}

// Load reads path into the environment, when it exists, and builds the
// config from the environment. Variables already set win over the file.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	c := Default()
	var err error

	if c.Players, err = intVar("ABALONE_PLAYERS", c.Players); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv("ABALONE_STRATEGIES"); ok && v != "" {
		c.Strategies = ParseStrategies(v)
	}
	if c.Depth, err = intVar("ABALONE_DEPTH", c.Depth); err != nil {
		return Config{}, err
	}
	if c.MoveBudget, err = intVar("ABALONE_MOVE_BUDGET", c.MoveBudget); err != nil {
		return Config{}, err
	}
	if c.TurnLimit, err = intVar("ABALONE_TURN_LIMIT", c.TurnLimit); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv("ABALONE_SEED"); ok && v != "" {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: ABALONE_SEED=%q", ErrInvalid, v)
		}
	}
	if c.Games, err = intVar("ABALONE_GAMES", c.Games); err != nil {
		return Config{}, err
	}
	if c.Goroutines, err = intVar("ABALONE_GOROUTINES", c.Goroutines); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv("ABALONE_OUTPUT_DIR"); ok && v != "" {
		c.OutputDir = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		if c.LogLevel, err = zerolog.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("%w: LOG_LEVEL=%q", ErrInvalid, v)
		}
	}

	return c, c.Validate()
}

// Validate checks the ranges of every setting.
func (c Config) Validate() error {
	switch {
	case c.Players < 2 || c.Players > 4:
		return fmt.Errorf("%w: players must be between 2 and 4, got %d", ErrInvalid, c.Players)
	case len(c.Strategies) == 0:
		return fmt.Errorf("%w: no strategies", ErrInvalid)
	case c.Depth < 0:
		return fmt.Errorf("%w: negative depth %d", ErrInvalid, c.Depth)
	case c.MoveBudget <= 0:
		return fmt.Errorf("%w: move budget must be positive", ErrInvalid)
	case c.TurnLimit <= 0:
		return fmt.Errorf("%w: turn limit must be positive", ErrInvalid)
	case c.Games <= 0:
		return fmt.Errorf("%w: games must be positive", ErrInvalid)
	case c.Goroutines <= 0:
		return fmt.Errorf("%w: goroutines must be positive", ErrInvalid)
	}
	return nil
}

// StrategyFor returns the strategy name of a seat. Strategies repeat when
// there are fewer than seats.
func (c Config) StrategyFor(seat int) string {
	return c.Strategies[seat%len(c.Strategies)]
}

// ParseStrategies splits a comma separated list of strategy names, dropping
// surrounding spaces and empty entries.
func ParseStrategies(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func intVar(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalid, key, v)
	}
	return n, nil
}
