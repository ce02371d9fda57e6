package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clicker/internal/games/clicker"
	"github.com/vovakirdan/tui-clicker/internal/platform/tui"
)

var flagNew bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the clicker",
	Long: `Start playing, resuming the save in the chosen slot.

Controls:
  Space / mouse  - Click
  Up/Down, j/k   - Move the shop cursor
  Enter          - Buy the selected upgrade
  1-9 / mouse    - Buy an upgrade by number
  C / mouse      - Catch a bonus target
  P              - Pause
  Ctrl+S         - Save now
  R / Esc        - New run / keep playing after a win
  Q/Ctrl+C       - Save and quit

Difficulty options:
  easy   - Upgrades cost half as much
  normal - Prices as configured
  hard   - Prices grow 25% faster

Examples:
  clicker play
  clicker play --slot speedrun --new
  clicker play --difficulty hard
  clicker play --config ./my-clicker.yaml --saves file`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Start a new run instead of resuming the save")
}

func runPlay(_ *cobra.Command, _ []string) error {
	env, err := openGameEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	sc := env.session
	opts := tui.Options{
		Runtime:    sc.Runtime,
		Saves:      sc.Saves,
		Slot:       sc.Slot,
		PlayerName: sc.PlayerName,
		Fresh:      flagNew,
		Logger:     sc.Logger,
	}
	if sc.Runs != nil {
		opts.Runs = sc.Runs
	}

	return tui.Run(clicker.New(sc.Game, sc.Catalog), opts)
}
