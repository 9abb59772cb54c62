package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestRotatePoint(t *testing.T) {
	tests := []struct {
		name string
		p, c Point
		deg  float64
		want Point
	}{
		{"quarter turn about origin", Pt(1, 0), Pt(0, 0), 90, Pt(0, 1)},
		{"half turn about origin", Pt(1, 0), Pt(0, 0), 180, Pt(-1, 0)},
		{"quarter turn about center", Pt(20, 10), Pt(10, 10), 90, Pt(10, 20)},
		{"zero turn", Pt(3, 4), Pt(1, 1), 0, Pt(3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sin, cos := math.Sincos(ToRadians(tt.deg))
			got := RotatePoint(tt.p, cos, sin, tt.c)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("RotatePoint(%v, %v°, %v) = %v, want %v", tt.p, tt.deg, tt.c, got, tt.want)
			}
		})
	}
}

func TestRotatedBoundingBoxZeroIsIdentity(t *testing.T) {
	r := NewRect(3, 4, 50, 20)
	if got := RotatedBoundingBox(r, 0, nil); got != r {
		t.Errorf("RotatedBoundingBox(r, 0) = %v, want %v", got, r)
	}
}

func TestRotatedBoundingBoxMinimal(t *testing.T) {
	rects := []Rect{
		NewRect(0, 0, 100, 40),
		NewRect(-20, 5, 7, 90),
		NewRect(10, 10, 1, 1),
	}
	for _, r := range rects {
		for deg := -360.0; deg <= 360; deg += 15 {
			box := RotatedBoundingBox(r, deg, nil)
			sin, cos := math.Sincos(ToRadians(deg))
			c := r.Center()
			corners := []Point{
				RotatePoint(Pt(r.X, r.Y), cos, sin, c),
				RotatePoint(Pt(r.Right(), r.Y), cos, sin, c),
				RotatePoint(Pt(r.Right(), r.Bottom()), cos, sin, c),
				RotatePoint(Pt(r.X, r.Bottom()), cos, sin, c),
			}
			var touchL, touchT, touchR, touchB bool
			for _, p := range corners {
				if p.X < box.X-eps || p.X > box.Right()+eps || p.Y < box.Y-eps || p.Y > box.Bottom()+eps {
					t.Fatalf("RotatedBoundingBox(%v, %v) = %v does not contain corner %v", r, deg, box, p)
				}
				touchL = touchL || near(p.X, box.X)
				touchR = touchR || near(p.X, box.Right())
				touchT = touchT || near(p.Y, box.Y)
				touchB = touchB || near(p.Y, box.Bottom())
			}
			if !touchL || !touchT || !touchR || !touchB {
				t.Errorf("RotatedBoundingBox(%v, %v) = %v is not minimal", r, deg, box)
			}
		}
	}
}

func TestRotatedBoundingBoxQuarterTurn(t *testing.T) {
	got := RotatedBoundingBox(NewRect(0, 0, 100, 40), 90, nil)
	want := NewRect(30, -30, 40, 100)
	if !near(got.X, want.X) || !near(got.Y, want.Y) || !near(got.Width, want.Width) || !near(got.Height, want.Height) {
		t.Errorf("RotatedBoundingBox(90) = %v, want %v", got, want)
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		n, m, want float64
	}{
		{3, 2, 1},
		{4, 2, 0},
		{-1, 4, 3},
		{-5, 4, 3},
		{0, 2, 0},
	}
	for _, tt := range tests {
		if got := Mod(tt.n, tt.m); got != tt.want {
			t.Errorf("Mod(%v, %v) = %v, want %v", tt.n, tt.m, got, tt.want)
		}
	}
}
