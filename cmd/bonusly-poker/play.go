package main

import (
	"fmt"
	"os"

	rand "math/rand/v2"

	"github.com/coder/quartz"

	"github.com/lox/bonusly-poker/cmd/bonusly-poker/shared"
	"github.com/lox/bonusly-poker/internal/app"
	"github.com/lox/bonusly-poker/internal/config"
	"github.com/lox/bonusly-poker/internal/export"
	"github.com/lox/bonusly-poker/internal/prompt"
	"github.com/lox/bonusly-poker/internal/randutil"
)

// PlayCmd runs an interactive table session
type PlayCmd struct {
	Preset  string `kong:"short='c',help='Path to an HCL table preset'"`
	Output  string `kong:"short='o',default='session.json',help='Where to save the session log'"`
	LogFile string `kong:"default='bonusly-poker.log',help='Log file path'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed (optional)'"`
}

func (c *PlayCmd) Run() error {
	// Log to a file so prompts stay readable
	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger := shared.SetupLogger(logFile, c.Debug)

	preset := config.Default()
	if c.Preset != "" {
		preset, err = config.Load(c.Preset)
		if err != nil {
			return err
		}
		logger.Info("Loaded table preset", "preset", c.Preset, "players", len(preset.Players))
	}

	var rng *rand.Rand
	if c.Seed != nil {
		logger.Info("Using deterministic seed", "seed", *c.Seed)
		rng = randutil.New(*c.Seed)
	} else {
		rng = randutil.FromClock(quartz.NewReal())
	}

	term := prompt.NewTerminal(os.Stdin, os.Stdout, rng)
	writer := export.NewWriter(quartz.NewReal())
	a := app.New(term, logger, preset, writer, c.Output)

	ctx := shared.SetupSignalHandlerWithLogger(logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Run()
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}
