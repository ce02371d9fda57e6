package core

// Action is a semantic player intent, decoupled from physical keys and
// mouse buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionClick          // Space, mouse press on the click area
	ActionUp             // K, Up arrow - previous shop row
	ActionDown           // J, Down arrow - next shop row
	ActionBuy            // Enter - buy the selected upgrade
	ActionCatch          // C - catch the bonus target
	ActionPause          // P - pause/unpause
	ActionSave           // Ctrl+S - save now
	ActionConfirm        // R - start a new run from the win screen
	ActionBack           // Esc - dismiss an overlay
	ActionQuit           // Q, Ctrl+C - save and exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionClick:
		return "Click"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionBuy:
		return "Buy"
	case ActionCatch:
		return "Catch"
	case ActionPause:
		return "Pause"
	case ActionSave:
		return "Save"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a screen cell coordinate.
type Point struct {
	X, Y int
}

// InputFrame collects everything the player did between two ticks.
// Repeated key presses are counted so fast clicking is not lost when
// several presses land inside one tick.
type InputFrame struct {
	// Actions counts how many times each action was triggered.
	Actions map[Action]int
	// Presses holds mouse presses in screen coordinates, in arrival order.
	Presses []Point
	// Select, when positive, picks a shop row by its 1-based number. The
	// game moves the cursor there and tries to buy it.
	Select int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one occurrence of an action.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Press records a mouse press at (x, y).
func (f *InputFrame) Press(x, y int) {
	f.Presses = append(f.Presses, Point{X: x, Y: y})
}

// Has returns true if the action was triggered at least once.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was triggered.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Presses) == 0 && f.Select == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Presses = f.Presses[:0]
	f.Select = 0
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Presses = append([]Point(nil), f.Presses...)
	clone.Select = f.Select
	return clone
}
