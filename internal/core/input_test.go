package core

import "testing"

func TestInputFrameCounts(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionClick)
	f.Set(ActionClick)
	f.Set(ActionClick)
	f.Set(ActionBuy)
	f.Press(4, 5)

	if f.Count(ActionClick) != 3 {
		t.Errorf("Count(Click) = %d, expected 3", f.Count(ActionClick))
	}
	if !f.Has(ActionBuy) || f.Has(ActionPause) {
		t.Error("Has reports wrong actions")
	}
	if len(f.Presses) != 1 || f.Presses[0] != (Point{X: 4, Y: 5}) {
		t.Errorf("Presses = %v", f.Presses)
	}

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if clone.Count(ActionClick) != 3 || len(clone.Presses) != 1 {
		t.Error("Clone must not share state with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionClick: "Click",
		ActionBuy:   "Buy",
		ActionCatch: "Catch",
		ActionQuit:  "Quit",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventPurchase, EventWon}}
	if !r.Has(EventWon) || r.Has(EventBonusCaught) {
		t.Error("Has reports wrong events")
	}
}

func TestTickSeconds(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 20}).TickSeconds(); got != 0.05 {
		t.Errorf("TickSeconds() = %v, expected 0.05", got)
	}
	if got := (RuntimeConfig{}).TickSeconds(); got <= 0 {
		t.Errorf("zero tick rate should fall back to a positive duration, got %v", got)
	}
}
