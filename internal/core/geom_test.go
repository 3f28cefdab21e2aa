package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "obstacle fully left of the playfield",
			a:        NewRect(0, 0, 80, 24),
			b:        NewRect(-24, 4, 24, 4),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectSurrounds(t *testing.T) {
	// A 24x4 log on row 4 starting at column 10.
	log := NewRect(10, 4, 24, 4)

	tests := []struct {
		name     string
		inner    Rect
		expected bool
	}{
		{"player in the middle of the log", NewRect(20, 5, 2, 2), true},
		{"touching left edge", NewRect(10, 5, 2, 2), false},
		{"one past left edge", NewRect(11, 5, 2, 2), true},
		{"touching right edge", NewRect(32, 5, 2, 2), false},
		{"one before right edge", NewRect(31, 5, 2, 2), true},
		{"overlapping but hanging off", NewRect(33, 5, 2, 2), false},
		{"wrong row", NewRect(20, 9, 2, 2), false},
		{"same top row as log", NewRect(20, 4, 2, 2), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := log.Surrounds(tc.inner); got != tc.expected {
				t.Errorf("Surrounds(%+v) = %v, expected %v", tc.inner, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestActionIsMove(t *testing.T) {
	moves := []Action{ActionUp, ActionDown, ActionLeft, ActionRight}
	for _, a := range moves {
		if !a.IsMove() {
			t.Errorf("%v should be a move", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionQuit, ActionAnyKey} {
		if a.IsMove() {
			t.Errorf("%v should not be a move", a)
		}
	}
}
