package core

import "testing"

func TestRectEdges(t *testing.T) {
	tests := []struct {
		r             Rect
		right, bottom int
	}{
		{Rect{X: 5, Y: 10, W: 20, H: 15}, 25, 25},
		{Rect{X: 0, Y: 0, W: 6, H: 2}, 6, 2}, // one board cell
		{Rect{X: 3, Y: 4, W: 0, H: 0}, 3, 4},
	}

	for _, tc := range tests {
		if got := tc.r.Right(); got != tc.right {
			t.Errorf("%+v.Right() = %d, expected %d", tc.r, got, tc.right)
		}
		if got := tc.r.Bottom(); got != tc.bottom {
			t.Errorf("%+v.Bottom() = %d, expected %d", tc.r, got, tc.bottom)
		}
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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, expected float64
	}{
		{0, 10, 0, 0},
		{0, 10, 0.5, 5},
		{-3, -1, 1, -1},
		{0, 10, 2, 10}, // clamped
		{0, 10, -1, 0}, // clamped
	}

	for _, tc := range tests {
		if got := Lerp(tc.a, tc.b, tc.t); got != tc.expected {
			t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tc.a, tc.b, tc.t, got, tc.expected)
		}
	}
}

func TestEaseOutQuad(t *testing.T) {
	if EaseOutQuad(0) != 0 || EaseOutQuad(1) != 1 {
		t.Error("EaseOutQuad should map 0->0 and 1->1")
	}
	if got := EaseOutQuad(0.5); got != 0.75 {
		t.Errorf("EaseOutQuad(0.5) = %v, expected 0.75", got)
	}
}
