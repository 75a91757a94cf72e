package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		n    int
		want Rect
	}{
		{"one cell", NewRect(2, 3, 10, 5), 1, NewRect(3, 4, 8, 3)},
		{"zero", NewRect(2, 3, 10, 5), 0, NewRect(2, 3, 10, 5)},
		{"collapses", NewRect(0, 0, 3, 3), 2, NewRect(2, 2, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inset(tc.n); got != tc.want {
				t.Errorf("Inset(%d) = %+v, expected %+v", tc.n, got, tc.want)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(20, 5, 80, 24)
	if r != NewRect(30, 9, 20, 5) {
		t.Errorf("CenteredRect = %+v", r)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	// Basket range on the default 480 wide field.
	if got := Clamp(385.0, 0, 380); got != 380 {
		t.Errorf("Clamp(385, 0, 380) = %v, expected 380", got)
	}
	if got := Clamp(-0.5, 0, 380); got != 0 {
		t.Errorf("Clamp(-0.5, 0, 380) = %v, expected 0", got)
	}
}

func TestScaleToCell(t *testing.T) {
	tests := []struct {
		v, span float64
		cells   int
		want    int
	}{
		{0, 480, 80, 0},
		{240, 480, 80, 40},
		{479.9, 480, 80, 79},
		{480, 480, 80, 79},
		{-10, 480, 80, 0},
		{700, 640, 23, 22},
		{100, 0, 80, 0},
		{100, 480, 0, 0},
	}

	for _, tc := range tests {
		if got := ScaleToCell(tc.v, tc.span, tc.cells); got != tc.want {
			t.Errorf("ScaleToCell(%v, %v, %d) = %d, expected %d", tc.v, tc.span, tc.cells, got, tc.want)
		}
	}
}
