package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/registry"
	"github.com/vovakirdan/tui-clicker/internal/save"
	"github.com/vovakirdan/tui-clicker/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSlot       string
	flagLogFile    string
)

// addGameFlags registers the flags of commands that start a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagSlot, "slot", save.DefaultSlot, "Save slot name")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "~/.clicker/clicker.log", "Log file (the terminal is taken by the game)")
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// loadGame reads the game configuration, applies the difficulty preset and
// builds the upgrade catalog.
func loadGame(path, difficulty string) (config.ClickerConfig, *registry.Catalog, error) {
	cfg, _, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, nil, err
	}
	config.ApplyPreset(&cfg, preset)

	catalog, err := config.BuildCatalog(cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, catalog, nil
}

// saveManager picks the save backend. store may be nil.
func saveManager(s settings, store *storage.Store) (*save.Manager, error) {
	switch s.Saves {
	case "file":
		return save.NewManager(save.NewFileBackend(expandHome(s.SaveDir))), nil
	case "db", "":
		if store == nil {
			return nil, errors.New("database saves need an open database")
		}
		return save.NewManager(store), nil
	default:
		return nil, fmt.Errorf("unknown save backend %q (want db or file)", s.Saves)
	}
}

// newLogger creates a logger writing to path, or to stderr when path is
// empty. The returned closer must be called on exit.
func newLogger(path, level, prefix string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if path != "" {
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
	return logger, closer, nil
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// playerName names the local player on the leaderboard.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "anonymous"
}
