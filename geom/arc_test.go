package geom

import (
	"math"
	"testing"
)

func TestArcToCurvesEndpoints(t *testing.T) {
	tests := []struct {
		name             string
		x0, y0, rx, ry   float64
		angle            float64
		largeArc, sweep  bool
		x, y             float64
		minSegs, maxSegs int
	}{
		{"quarter circle", 0, 0, 10, 10, 0, false, true, 10, 10, 1, 1},
		{"half circle", 0, 0, 10, 10, 0, false, true, 20, 0, 2, 2},
		{"large arc", 0, 0, 10, 10, 0, true, false, 10, 10, 3, 3},
		{"rotated ellipse", 5, 5, 30, 10, 30, false, false, 40, 20, 1, 4},
		{"radii too small", 0, 0, 1, 1, 0, false, true, 100, 0, 2, 2},
		{"negative radii", 0, 0, -10, -10, 0, false, true, 10, 10, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ArcToCurves(tt.x0, tt.y0, tt.rx, tt.ry, tt.angle, tt.largeArc, tt.sweep, tt.x, tt.y)
			if len(got)%6 != 0 {
				t.Fatalf("ArcToCurves() returned %d values, want a multiple of 6", len(got))
			}
			segs := len(got) / 6
			if segs < tt.minSegs || segs > tt.maxSegs {
				t.Errorf("ArcToCurves() returned %d segments, want %d..%d", segs, tt.minSegs, tt.maxSegs)
			}
			for i, v := range got {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("ArcToCurves()[%d] = %v", i, v)
				}
			}
			ex, ey := got[len(got)-2], got[len(got)-1]
			if !near(ex, tt.x) || !near(ey, tt.y) {
				t.Errorf("arc ends at (%v, %v), want (%v, %v)", ex, ey, tt.x, tt.y)
			}
		})
	}
}

func TestArcToCurvesStartsTangentAtStart(t *testing.T) {
	// The first control point of a quarter circle from (0,0) to (10,10)
	// with positive sweep leaves the start point horizontally.
	got := ArcToCurves(0, 0, 10, 10, 0, false, true, 10, 10)
	if len(got) != 6 {
		t.Fatalf("ArcToCurves() returned %d values, want 6", len(got))
	}
	if !near(got[1], 0) {
		t.Errorf("first control point y = %v, want 0", got[1])
	}
	want := 10 * 4.0 / 3.0 * math.Tan(math.Pi/8)
	if !near(got[0], want) {
		t.Errorf("first control point x = %v, want %v", got[0], want)
	}
}

func TestArcToCurvesDegenerate(t *testing.T) {
	tests := []struct {
		name           string
		rx, ry, x, y   float64
	}{
		{"zero rx", 0, 10, 10, 10},
		{"zero ry", 10, 0, 10, 10},
		{"same end point", 10, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArcToCurves(0, 0, tt.rx, tt.ry, 0, false, true, tt.x, tt.y); len(got) != 0 {
				t.Errorf("ArcToCurves() = %v, want empty", got)
			}
		})
	}
}
