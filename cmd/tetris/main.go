package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/amalg/go-tetris/internal/game"
	"github.com/amalg/go-tetris/internal/ui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadSettings(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Anything written to stderr corrupts Bubbletea's terminal rendering, so
	// logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger := zerolog.New(out).Level(cfg.LogLevel).With().Timestamp().Logger()

	engine := game.NewEngine(cfg.Game, game.WithLogger(logger.With().Str("component", "engine").Logger()))
	model := ui.NewModel(engine, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("tui exited")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
