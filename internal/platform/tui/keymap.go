package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-clicker/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Click   key.Binding
	Up      key.Binding
	Down    key.Binding
	Buy     key.Binding
	Select  key.Binding
	Catch   key.Binding
	Pause   key.Binding
	Save    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Up, k.Down, k.Buy, k.Select, k.Catch, k.Pause, k.Save, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Click, k.Catch},
		{k.Up, k.Down, k.Buy, k.Select},
		{k.Pause, k.Save, k.Confirm, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Click: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "click"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Buy: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "buy"),
		),
		Select: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "buy #"),
		),
		Catch: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "catch"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "save"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new run"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "continue"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "save & quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Click):
		return core.ActionClick, false
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Buy):
		return core.ActionBuy, false
	case key.Matches(msg, k.Catch):
		return core.ActionCatch, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Save):
		return core.ActionSave, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapSelect returns the shop row number for digit keys, or 0.
func (km *KeyMapper) MapSelect(msg tea.KeyMsg) int {
	if !key.Matches(msg, km.keys.Select) {
		return 0
	}
	s := msg.String()
	return int(s[0] - '0')
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if n := km.MapSelect(msg); n > 0 {
		frame.Select = n
		return false
	}
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records left button presses. Returns true if the message
// was a press.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if !isPress(msg) {
		return false
	}
	frame.Press(msg.X, msg.Y)
	return true
}

func isPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
