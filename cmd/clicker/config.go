package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clicker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration as YAML, after the difficulty preset is
applied. The output is a valid config file and can be edited and passed back
with --config.

Config search order:
  1. --config path
  2. ~/.clicker/configs/clicker.yaml
  3. ./configs/clicker.yaml
  4. built-in defaults

Examples:
  clicker config > ~/.clicker/configs/clicker.yaml
  clicker config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s, difficulty: %s\n", source, preset)
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
