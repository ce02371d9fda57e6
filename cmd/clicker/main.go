// clicker is an incremental clicker game for the terminal.
//
// Usage:
//
//	clicker                   - Start menu (continue, new run, fastest runs)
//	clicker play              - Play directly, resuming the save slot
//	clicker serve             - Start SSH server for remote play
//	clicker upgrades          - Show the upgrade catalog and its prices
//	clicker scores            - Show the fastest won runs
//	clicker save show|delete  - Inspect or remove saves
//	clicker config            - Print the effective game configuration
//
// Global flags (also read from CLICKER_* environment variables):
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.clicker/clicker.db)
//	--saves <backend>   - Where saves live: db or file
//	--save-dir <path>   - Directory for file saves
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settings are the process-wide options shared by all commands.
type settings struct {
	FPS      int
	Seed     int64
	DBPath   string
	Saves    string
	SaveDir  string
	LogLevel string
}

// v binds persistent flags to CLICKER_ environment variables.
var v = viper.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clicker",
	Short: "Liam Clicker - an incremental clicker in your terminal",
	Long: `Click to earn currency, buy upgrades that click for you, unlock
stage 2 and catch the bonus targets, and race to the win amount.

Without a subcommand the start menu opens.

Examples:
  clicker
  clicker play --slot work
  clicker play --difficulty hard --new
  clicker serve --ssh :2222
  CLICKER_FPS=60 clicker play`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int("fps", 30, "Tick rate (frames per second)")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("db", "~/.clicker/clicker.db", "Path to the saves and runs database")
	flags.String("saves", "db", "Save backend: db or file")
	flags.String("save-dir", "~/.clicker/saves", "Directory for file saves")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")

	v.SetEnvPrefix("CLICKER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	addGameFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(upgradesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings reads the effective settings after flag parsing.
func loadSettings() settings {
	return settings{
		FPS:      v.GetInt("fps"),
		Seed:     v.GetInt64("seed"),
		DBPath:   expandHome(v.GetString("db")),
		Saves:    v.GetString("saves"),
		SaveDir:  expandHome(v.GetString("save-dir")),
		LogLevel: v.GetString("log-level"),
	}
}
