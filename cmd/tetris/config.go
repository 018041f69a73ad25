package main

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/amalg/go-tetris/internal/game"
)

// settings is the resolved process configuration: environment first, flags
// override.
type settings struct {
	Game     game.Config
	LogFile  string
	LogLevel zerolog.Level
}

// loadSettings reads TETRIS_SEED, TETRIS_TICK, TETRIS_LOG and LOG_LEVEL via
// getenv, then parses args on top of them.
func loadSettings(args []string, getenv func(string) string) (settings, error) {
	s := settings{
		Game:     game.DefaultConfig(),
		LogLevel: zerolog.InfoLevel,
	}

	if v := getenv("TETRIS_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("TETRIS_SEED: %w", err)
		}
		s.Game.Seed = seed
	}
	if v := getenv("TETRIS_TICK"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return s, fmt.Errorf("TETRIS_TICK: %w", err)
		}
		s.Game.TickRate = d
	}
	s.LogFile = getenv("TETRIS_LOG")
	level := "info"
	if v := getenv("LOG_LEVEL"); v != "" {
		level = v
	}

	fs := flag.NewFlagSet("tetris", flag.ContinueOnError)
	fs.Uint64Var(&s.Game.Seed, "seed", s.Game.Seed, "Bag seed (0 = random)")
	fs.DurationVar(&s.Game.TickRate, "tick", s.Game.TickRate, "Gravity interval")
	fs.StringVar(&s.LogFile, "log", s.LogFile, "Log file path (default: discard logs)")
	fs.StringVar(&level, "log-level", level, "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return s, err
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return s, fmt.Errorf("log level: %w", err)
	}
	s.LogLevel = lvl

	if s.Game.TickRate <= 0 {
		return s, fmt.Errorf("tick must be positive, got %s", s.Game.TickRate)
	}
	return s, nil
}
