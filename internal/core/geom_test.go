package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(0.5); got != V(1.5, 2) {
		t.Errorf("Scale() = %v, expected (1.5, 2)", got)
	}
	if got := a.Len(); math.Abs(got-5) > eps {
		t.Errorf("Len() = %f, expected 5", got)
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{"same point", V(2, 2), V(2, 2), 0},
		{"horizontal", V(0, 0), V(10, 0), 10},
		{"3-4-5", V(1, 1), V(4, 5), 5},
		{"negative coords", V(-3, 0), V(0, -4), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Dist(tc.a, tc.b); math.Abs(got-tc.expected) > eps {
				t.Errorf("Dist() = %f, expected %f", got, tc.expected)
			}
			if got := Dist(tc.b, tc.a); math.Abs(got-tc.expected) > eps {
				t.Errorf("Dist() (reversed) = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		angle, length float64
		expected      Vec
	}{
		{0, 10, V(10, 0)},
		{math.Pi / 2, 5, V(0, 5)},
		{math.Pi, 2, V(-2, 0)},
	}

	for _, tc := range tests {
		got := FromAngle(tc.angle, tc.length)
		if math.Abs(got.X-tc.expected.X) > eps || math.Abs(got.Y-tc.expected.Y) > eps {
			t.Errorf("FromAngle(%f, %f) = %v, expected %v", tc.angle, tc.length, got, tc.expected)
		}
		if math.Abs(got.Len()-tc.length) > eps {
			t.Errorf("FromAngle length = %f, expected %f", got.Len(), tc.length)
		}
	}

	if got := V(0, 3).Angle(); math.Abs(got-math.Pi/2) > eps {
		t.Errorf("Angle() = %f, expected pi/2", got)
	}
}

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

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
