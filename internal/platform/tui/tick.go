// Package tui provides the Bubble Tea integration for the clicker.
// It handles the terminal UI loop, input mapping, persistence hooks and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-clicker/internal/core"
)

// maxTickSeconds caps the simulated time of one tick, so a suspended
// terminal does not produce a huge jump on resume.
const maxTickSeconds = 0.25

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Duration(core.RuntimeConfig{TickRate: tickRate}.TickSeconds() * float64(time.Second))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickSeconds returns the seconds between two ticks, clamped to
// [0, maxTickSeconds]. A zero previous time yields the nominal interval.
func tickSeconds(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		return core.RuntimeConfig{TickRate: tickRate}.TickSeconds()
	}
	dt := now.Sub(prev).Seconds()
	switch {
	case dt < 0:
		return 0
	case dt > maxTickSeconds:
		return maxTickSeconds
	}
	return dt
}
