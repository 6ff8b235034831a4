package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},  // Inside
		{10, 10, true},  // Top-left corner (inclusive)
		{29, 29, true},  // Bottom-right inside
		{30, 30, false}, // Bottom-right edge (exclusive)
		{5, 15, false},  // Left of rect
		{35, 15, false}, // Right of rect
		{15, 5, false},  // Above rect
		{15, 35, false}, // Below rect
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
		if got := r.ContainsPoint(Point{tc.x, tc.y}); got != tc.expected {
			t.Errorf("ContainsPoint(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 30)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 40 {
		t.Errorf("Bottom() = %d, expected 40", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 25 {
		t.Errorf("Center() = (%d, %d), expected (15, 25)", cx, cy)
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		n        int
		expected Rect
	}{
		{"one cell", NewRect(0, 0, 10, 6), 1, NewRect(1, 1, 8, 4)},
		{"zero", NewRect(2, 3, 4, 5), 0, NewRect(2, 3, 4, 5)},
		{"collapses", NewRect(0, 0, 3, 3), 2, NewRect(2, 2, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inset(tc.n); got != tc.expected {
				t.Errorf("Inset(%d) = %+v, expected %+v", tc.n, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // Within range
		{-5, 0, 10, 0},  // Below min
		{15, 0, 10, 10}, // Above max
		{0, 0, 10, 0},   // At min
		{10, 0, 10, 10}, // At max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
