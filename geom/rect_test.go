package geom

import (
	"math"
	"testing"
)

func TestRectFromPoints(t *testing.T) {
	r, ok := RectFromPoints([]Point{{10, 20}, {-5, 40}, {30, 0}})
	if !ok {
		t.Fatal("RectFromPoints() ok = false")
	}
	if want := NewRect(-5, 0, 35, 40); r != want {
		t.Errorf("RectFromPoints() = %v, want %v", r, want)
	}
	if _, ok := RectFromPoints(nil); ok {
		t.Error("RectFromPoints(nil) ok = true")
	}
}

func TestRectAdd(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, -5, 5, 5)
	if got, want := a.Add(b), NewRect(0, -5, 25, 15); got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
}

func TestRectGrow(t *testing.T) {
	if got, want := NewRect(10, 10, 20, 20).Grow(1.5), NewRect(8.5, 8.5, 23, 23); got != want {
		t.Errorf("Grow() = %v, want %v", got, want)
	}
}

func TestRectRotate90(t *testing.T) {
	r := NewRect(0, 0, 100, 40)
	got := r.Rotate90()
	if want := NewRect(30, -30, 40, 100); got != want {
		t.Errorf("Rotate90() = %v, want %v", got, want)
	}
	if got.Center() != r.Center() {
		t.Errorf("Rotate90 moved center from %v to %v", r.Center(), got.Center())
	}
}

func TestRectValid(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"normal", NewRect(0, 0, 1, 1), true},
		{"zero width", NewRect(0, 0, 0, 1), false},
		{"negative height", NewRect(0, 0, 1, -1), false},
		{"nan x", NewRect(math.NaN(), 0, 1, 1), false},
		{"inf width", NewRect(0, 0, math.Inf(1), 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContainsIntersects(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !r.Contains(Pt(10, 10)) {
		t.Error("Contains(corner) = false")
	}
	if r.Contains(Pt(11, 5)) {
		t.Error("Contains(outside) = true")
	}
	if !r.Intersects(NewRect(5, 5, 10, 10)) {
		t.Error("Intersects(overlap) = false")
	}
	if r.Intersects(NewRect(10, 0, 5, 5)) {
		t.Error("Intersects(touching) = true")
	}
}
