package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clicker/internal/economy"
	"github.com/vovakirdan/tui-clicker/internal/save"
	"github.com/vovakirdan/tui-clicker/internal/storage"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Inspect or remove saves",
}

var saveShowCmd = &cobra.Command{
	Use:   "show [slot]",
	Short: "List saves, or show one slot",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSaveShow,
}

var saveDeleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete the save in a slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSaveDelete,
}

func init() {
	saveCmd.AddCommand(saveShowCmd)
	saveCmd.AddCommand(saveDeleteCmd)
}

// openSaves opens the configured save backend. The returned function
// releases the database, if one was opened.
func openSaves() (*save.Manager, func(), error) {
	s := loadSettings()

	var store *storage.Store
	if s.Saves != "file" {
		var err error
		store, err = storage.Open(s.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
	}
	release := func() {
		if store != nil {
			store.Close()
		}
	}

	m, err := saveManager(s, store)
	if err != nil {
		release()
		return nil, nil, err
	}
	return m, release, nil
}

func runSaveShow(cmd *cobra.Command, args []string) error {
	m, release, err := openSaves()
	if err != nil {
		return err
	}
	defer release()

	ctx := cmd.Context()
	var saves []save.SaveData
	if len(args) == 1 {
		data, err := m.Load(ctx, args[0])
		if errors.Is(err, save.ErrNoSave) {
			return fmt.Errorf("no save in slot %q", args[0])
		}
		if err != nil {
			return err
		}
		saves = append(saves, *data)
	} else {
		saves, err = m.List(ctx)
		if err != nil {
			return err
		}
	}

	if len(saves) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saves.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tCURRENCY\tSTAGE\tCLICKS\tPLAYED\tSTATUS\tSAVED")
	for _, d := range saves {
		status := "in progress"
		if d.Stats.Won {
			status = "won in " + economy.FormatClock(d.Stats.WonAt)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			d.Slot,
			economy.Format(d.Player.Currency, true),
			d.Player.Stage,
			humanize.Comma(d.Stats.Clicks),
			economy.FormatClock(d.Stats.Elapsed),
			status,
			humanize.Time(d.SavedAt))
	}
	return w.Flush()
}

func runSaveDelete(cmd *cobra.Command, args []string) error {
	m, release, err := openSaves()
	if err != nil {
		return err
	}
	defer release()

	if err := m.Delete(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, save.ErrNoSave) {
			return fmt.Errorf("no save in slot %q", args[0])
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted save %q.\n", args[0])
	return nil
}
