package path

import (
	"math"
	"testing"
)

func TestFlattenLines(t *testing.T) {
	pts := Flatten([]Element{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
		LineTo{Point{10, 10}},
		Close{},
	}, Tolerance)

	want := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 0}}
	if len(pts) != len(want) {
		t.Fatalf("Flatten() returned %d points, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("Flatten()[%d] = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestFlattenCubicEndsOnEndPoint(t *testing.T) {
	pts := Flatten([]Element{
		MoveTo{Point{0, 0}},
		CubicTo{Point{0, 50}, Point{100, 50}, Point{100, 0}},
	}, Tolerance)

	if len(pts) < 3 {
		t.Fatalf("Flatten() returned %d points, want a subdivided curve", len(pts))
	}
	if last := pts[len(pts)-1]; last != (Point{100, 0}) {
		t.Errorf("last point = %v, want {100 0}", last)
	}
}

func TestBoundsQuadBulge(t *testing.T) {
	minX, minY, maxX, maxY, ok := Bounds([]Element{
		MoveTo{Point{0, 0}},
		QuadTo{Point{50, 100}, Point{100, 0}},
	})
	if !ok {
		t.Fatal("Bounds() ok = false, want true")
	}
	if minX != 0 || minY != 0 || maxX != 100 {
		t.Errorf("Bounds() = (%v, %v, %v), want (0, 0, 100)", minX, minY, maxX)
	}
	// The apex of the curve sits at half the control point height.
	if math.Abs(maxY-50) > 0.5 {
		t.Errorf("Bounds() maxY = %v, want ~50", maxY)
	}
}

func TestBoundsRejectsNaN(t *testing.T) {
	_, _, _, _, ok := Bounds([]Element{
		MoveTo{Point{0, 0}},
		CubicTo{Point{math.NaN(), 0}, Point{1, 1}, Point{2, 2}},
	})
	if ok {
		t.Error("Bounds() ok = true for NaN control point, want false")
	}
}

func TestBoundsEmpty(t *testing.T) {
	if _, _, _, _, ok := Bounds(nil); ok {
		t.Error("Bounds(nil) ok = true, want false")
	}
}
