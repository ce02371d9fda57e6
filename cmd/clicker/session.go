package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/platform/tui"
	"github.com/vovakirdan/tui-clicker/internal/storage"
)

// gameEnv is everything a local game needs, opened from flags.
type gameEnv struct {
	session tui.SessionConfig
	closers []func()
}

func (e *gameEnv) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

// openGameEnv loads config, storage and logging for play and the menu.
func openGameEnv() (*gameEnv, error) {
	s := loadSettings()
	env := &gameEnv{}

	logger, logCloser, err := newLogger(flagLogFile, s.LogLevel, "clicker")
	if err != nil {
		return nil, err
	}
	env.closers = append(env.closers, func() { logCloser.Close() })

	cfg, catalog, err := loadGame(flagConfig, flagDifficulty)
	if err != nil {
		env.Close()
		return nil, err
	}

	store, err := storage.Open(s.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("could not open database", "path", s.DBPath, "error", err)
		store = nil
	} else {
		env.closers = append(env.closers, func() { store.Close() })
	}

	saves, err := saveManager(s, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: progress will not be saved: %v\n", err)
		saves = nil
	}

	width, height := terminalSize()
	env.session = tui.SessionConfig{
		Game:    cfg,
		Catalog: catalog,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: s.FPS,
			Seed:     s.Seed,
		},
		Saves:      saves,
		Slot:       flagSlot,
		PlayerName: playerName(),
		Logger:     logger,
	}
	if store != nil {
		env.session.Runs = store
	}

	logger.Info("starting", "slot", flagSlot, "difficulty", flagDifficulty, "saves", s.Saves)
	return env, nil
}

func runMenu(_ *cobra.Command, _ []string) error {
	env, err := openGameEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	return tui.RunSession(env.session)
}
