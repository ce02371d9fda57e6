package core

// RuntimeConfig contains the settings a game session is started with.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// TickSeconds is the nominal duration of one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 30
	}
	return 1 / float64(c.TickRate)
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Won     bool    // The win amount has been reached at least once
	Paused  bool    // Simulation is frozen, by the player or an overlay
	Elapsed float64 // Seconds of unpaused play since the first click
	Clicks  int64   // Manual clicks this run
}

// Event is something noteworthy that happened during a tick. The platform
// uses events for side effects the engine does not own, such as persistence.
type Event int

const (
	EventNone        Event = iota
	EventPurchase          // An upgrade was bought
	EventBonusCaught       // A bonus target was caught
	EventWon               // The win amount was reached for the first time
	EventSaveRequest       // The player asked to save
	EventRestart           // The player started a new run after winning
)

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
