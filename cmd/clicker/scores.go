package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-clicker/internal/economy"
	"github.com/vovakirdan/tui-clicker/internal/platform/tui"
	"github.com/vovakirdan/tui-clicker/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the fastest won runs",
	Long: `Show the fastest runs that reached the win amount.

In a terminal an interactive table opens; otherwise a plain list is printed.

Examples:
  clicker scores
  clicker scores --plain --limit 5
  clicker scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain list instead of the table")
}

func runScores(cmd *cobra.Command, _ []string) error {
	s := loadSettings()

	store, err := storage.Open(s.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()

	if flagScoresClear {
		if err := store.ClearRuns(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All runs cleared.")
		return nil
	}

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		w, h := terminalSize()
		return tui.RunScoreboard(store, w, h)
	}

	runs, err := store.FastestRuns(ctx, flagScoresLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs yet. Reach the win amount to get on the board!")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tPLAYER\tTIME\tCLICKS\tWHEN")
	for i, r := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1, r.Player, economy.FormatClock(r.Elapsed),
			humanize.Comma(r.Clicks), humanize.Time(r.CreatedAt))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if stats, err := store.Stats(ctx); err == nil && stats.Count > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d runs, average %s, %s clicks in total\n",
			stats.Count, economy.FormatClock(stats.AvgElapsed), humanize.Comma(stats.TotalClicks))
	}
	return nil
}
