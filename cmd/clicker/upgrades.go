package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clicker/internal/economy"
)

var flagUpgradeLevels int

var upgradesCmd = &cobra.Command{
	Use:   "upgrades",
	Short: "Show the upgrade catalog and its prices",
	Long: `Print every upgrade with its effect and the price of its first levels,
after the difficulty preset is applied.

Examples:
  clicker upgrades
  clicker upgrades --difficulty easy --levels 10`,
	Args: cobra.NoArgs,
	RunE: runUpgrades,
}

func init() {
	upgradesCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	upgradesCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	upgradesCmd.Flags().IntVar(&flagUpgradeLevels, "levels", 5, "Number of level prices to show")
}

func runUpgrades(cmd *cobra.Command, _ []string) error {
	cfg, catalog, err := loadGame(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	levels := max(flagUpgradeLevels, 1)
	fresh := economy.NewPlayer()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tNAME\tKIND\tMAX\tPRICES\tEFFECT")
	for i, u := range catalog.List() {
		maxLevel := "-"
		if u.MaxLevel() > 0 {
			maxLevel = fmt.Sprint(u.MaxLevel())
		}

		shown := levels
		if u.MaxLevel() > 0 {
			shown = min(shown, u.MaxLevel())
		}
		prices := make([]string, 0, shown)
		for lvl := 0; lvl < shown; lvl++ {
			prices = append(prices, economy.Format(u.Cost(lvl), true))
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, u.ID(), u.Name(), u.Kind(), maxLevel,
			strings.Join(prices, " "),
			u.NextLevelDescription(fresh, cfg.Game.CurrencyName))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cfg.Game.WinAmount > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nWin at %s %s\n", economy.FormatInt(cfg.Game.WinAmount), cfg.Game.CurrencyName)
	}
	return nil
}
