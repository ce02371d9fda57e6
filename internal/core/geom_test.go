package core

import "testing"

func TestRectIntersects(t *testing.T) {
	clickArea := NewRect(0, 3, 40, 15)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"overlapping shop column", NewRect(30, 0, 40, 20), true},
		{"touching right edge", NewRect(40, 3, 10, 10), false},
		{"touching bottom edge", NewRect(0, 18, 40, 2), false},
		{"above the area", NewRect(0, 0, 40, 3), false},
		{"fully inside", NewRect(10, 5, 2, 2), true},
		{"single cell overlap", NewRect(39, 17, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := clickArea.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects(%+v) = %v, expected %v", tc.other, got, tc.expected)
			}
			if got := tc.other.Intersects(clickArea); got != tc.expected {
				t.Errorf("Intersects is not symmetric for %+v", tc.other)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 1, 3, 2)

	inside := []Point{{2, 1}, {4, 1}, {2, 2}, {4, 2}}
	outside := []Point{{1, 1}, {5, 1}, {2, 0}, {2, 3}, {-1, -1}}

	for _, p := range inside {
		if !r.ContainsPoint(p) {
			t.Errorf("%+v should contain %+v", r, p)
		}
	}
	for _, p := range outside {
		if r.Contains(p.X, p.Y) {
			t.Errorf("%+v should not contain %+v", r, p)
		}
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(10, 4, 20, 9)

	if r.Right() != 30 || r.Bottom() != 13 {
		t.Errorf("Right/Bottom = %d/%d, expected 30/13", r.Right(), r.Bottom())
	}
	if x, y := r.Center(); x != 20 || y != 8 {
		t.Errorf("Center() = (%d, %d), expected (20, 8)", x, y)
	}
	if r.Empty() {
		t.Error("non-zero rect reported empty")
	}
	if !NewRect(0, 0, 0, 5).Empty() || !NewRect(0, 0, 5, -1).Empty() {
		t.Error("zero or negative size should be empty")
	}
}

func TestRectInset(t *testing.T) {
	got := NewRect(0, 0, 10, 6).Inset(1)
	if got != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v", got)
	}

	tiny := NewRect(3, 3, 2, 2).Inset(2)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("over-inset rect should collapse to zero size, got %+v", tiny)
	}
}

func TestRectSplit(t *testing.T) {
	screen := NewRect(0, 0, 80, 23)

	header, body := screen.SplitTop(3)
	if header != NewRect(0, 0, 80, 3) || body != NewRect(0, 3, 80, 20) {
		t.Errorf("SplitTop(3) = %+v, %+v", header, body)
	}

	left, shop := body.SplitLeft(48)
	if left != NewRect(0, 3, 48, 20) || shop != NewRect(48, 3, 32, 20) {
		t.Errorf("SplitLeft(48) = %+v, %+v", left, shop)
	}

	all, rest := body.SplitLeft(500)
	if all != body || !rest.Empty() {
		t.Errorf("oversized split should take everything, got %+v, %+v", all, rest)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ val, want int }{{-5, 0}, {0, 0}, {7, 7}, {10, 10}, {99, 10}}
	for _, c := range cases {
		if got := Clamp(c.val, 0, 10); got != c.want {
			t.Errorf("Clamp(%d, 0, 10) = %d, expected %d", c.val, got, c.want)
		}
	}

	if got := ClampF(0.3, 0, 0.25); got != 0.25 {
		t.Errorf("ClampF(0.3, 0, 0.25) = %v", got)
	}
	if got := ClampF(-1, 0, 1); got != 0 {
		t.Errorf("ClampF(-1, 0, 1) = %v", got)
	}
}
