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

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
		empty    bool
	}{
		{
			name:     "overlapping",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: NewRect(5, 5, 5, 5),
		},
		{
			name:     "contained",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: NewRect(5, 5, 5, 5),
		},
		{
			name:  "adjacent",
			a:     NewRect(0, 0, 10, 10),
			b:     NewRect(10, 0, 10, 10),
			empty: true,
		},
		{
			name:  "disjoint",
			a:     NewRect(0, 0, 10, 10),
			b:     NewRect(0, 15, 10, 10),
			empty: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Intersect(tc.b)
			if got.Empty() != tc.empty {
				t.Fatalf("Intersect() empty = %v, expected %v (%+v)", got.Empty(), tc.empty, got)
			}
			if !tc.empty && got != tc.expected {
				t.Errorf("Intersect() = %+v, expected %+v", got, tc.expected)
			}
			if back := tc.b.Intersect(tc.a); back.Empty() != tc.empty {
				t.Errorf("Intersect() (reversed) empty = %v, expected %v", back.Empty(), tc.empty)
			}
		})
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, 2)

	if got := a.Add(b); got != V(4, 6) {
		t.Errorf("Add() = %v, expected (4,6)", got)
	}
	if got := a.Sub(b); got != V(2, 2) {
		t.Errorf("Sub() = %v, expected (2,2)", got)
	}
	if got := a.Mul(b); got != V(3, 8) {
		t.Errorf("Mul() = %v, expected (3,8)", got)
	}
	if got := a.Div(b); got != V(3, 2) {
		t.Errorf("Div() = %v, expected (3,2)", got)
	}
	if got := V(1.5, -0.5).Floor(); got != V(1, -1) {
		t.Errorf("Floor() = %v, expected (1,-1)", got)
	}
	if got := a.MinElem(); got != 3 {
		t.Errorf("MinElem() = %v, expected 3", got)
	}
	if got := Splat(2).Scale(1.5); got != V(3, 3) {
		t.Errorf("Scale() = %v, expected (3,3)", got)
	}
}

func TestRectFRoundAndContains(t *testing.T) {
	r := RF(V(1.5, 2.25), V(10, 4))

	if got := r.Round(); got != NewRect(1, 2, 10, 4) {
		t.Errorf("Round() = %+v, expected {1 2 10 4}", got)
	}
	if !r.Contains(V(1.5, 2.25)) {
		t.Error("Contains() should include the min corner")
	}
	if r.Contains(r.Max()) {
		t.Error("Contains() should exclude the max corner")
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

	if got := Clamp(2.5, 0.0, 1.0); got != 1.0 {
		t.Errorf("Clamp(2.5, 0, 1) = %v, expected 1", got)
	}
	if got := ClampPoint(Pt(-3, 40), Pt(0, 0), Pt(10, 10)); got != Pt(0, 10) {
		t.Errorf("ClampPoint() = %v, expected (0,10)", got)
	}
}

func TestAbs(t *testing.T) {
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs(int) failed")
	}
	if Abs(-1.25) != 1.25 {
		t.Error("Abs(float64) failed")
	}
}
