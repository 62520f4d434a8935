package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"last cell", 29, 24, true},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectOnEdge(t *testing.T) {
	r := NewRect(0, 0, 5, 4)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 0, 0, true},
		{"top edge", 2, 0, true},
		{"right edge", 4, 2, true},
		{"bottom edge", 1, 3, true},
		{"left edge", 0, 2, true},
		{"interior", 2, 2, false},
		{"interior near corner", 1, 1, false},
		{"outside", 5, 0, false},
		{"negative", -1, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.OnEdge(tc.x, tc.y); got != tc.expected {
				t.Errorf("OnEdge(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 60, 22).Inset(2)
	if r.X != 2 || r.Y != 2 || r.W != 56 || r.H != 18 {
		t.Errorf("Inset(2) = %+v, expected {2 2 56 18}", r)
	}
	if r.Right() != 58 || r.Bottom() != 20 {
		t.Errorf("Inset bounds = (%d, %d), expected (58, 20)", r.Right(), r.Bottom())
	}

	tiny := NewRect(0, 0, 3, 3).Inset(2)
	if !tiny.Empty() {
		t.Errorf("Inset(2) of 3x3 should be empty, got %+v", tiny)
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

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}
