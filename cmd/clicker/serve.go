package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clicker/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the clicker SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game with a start menu. Progress is saved
per SSH user name; all users share the fastest runs leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.clicker/host_key

Examples:
  clicker serve                           # Listen on :23234 with auto-generated key
  clicker serve --ssh :2222               # Listen on port 2222
  clicker serve --host-key ./my_host_key  # Use specific host key
  clicker serve --db ./clicker.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runServe(_ *cobra.Command, _ []string) error {
	s := loadSettings()

	logger, closer, err := newLogger("", s.LogLevel, "clicker-ssh")
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, _, err := loadGame(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      s.DBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    s.FPS,
		Game:        cfg,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting clicker SSH server on %s\n", flagSSHAddr)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
