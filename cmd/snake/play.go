package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagDifficulty string

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", cfg.Source)

	// Validate the flag before touching the terminal
	var preset *config.Difficulty
	if flagDifficulty != "" {
		d, parseErr := config.ParseDifficulty(flagDifficulty)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", parseErr)
			os.Exit(1)
		}
		preset = &d
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	difficulty := preset
	if difficulty == nil {
		difficulty, err = tui.RunSelector(cfg, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// Quit at the selector
		if difficulty == nil {
			logger.Debug("quit at selector")
			return
		}
	}
	logger.Info("difficulty selected", "difficulty", *difficulty, "tick_rate", cfg.Difficulty.TickRate(*difficulty))

	game := snake.New(cfg, *difficulty)
	if err := tui.Run(game, rc, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns a debug logger writing to path, or a warn-level
// stderr logger when path is empty so the game screen stays clean.
func newLogger(path string) (*log.Logger, func(), error) {
	var (
		w      io.Writer = os.Stderr
		level            = log.WarnLevel
		closer           = func() {}
	)

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		level = log.DebugLevel
		closer = func() { f.Close() } //nolint:errcheck // best-effort close on exit
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closer, nil
}
