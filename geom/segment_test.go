package geom

import "testing"

func TestPtSegDistSq(t *testing.T) {
	tests := []struct {
		name                   string
		x1, y1, x2, y2, px, py float64
		want                   float64
	}{
		{"above middle", 0, 0, 10, 0, 5, 3, 9},
		{"before start", 0, 0, 10, 0, -3, 4, 25},
		{"past end", 0, 0, 10, 0, 13, 4, 25},
		{"on segment", 0, 0, 10, 10, 5, 5, 0},
		{"degenerate segment", 2, 2, 2, 2, 5, 6, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PtSegDistSq(tt.x1, tt.y1, tt.x2, tt.y2, tt.px, tt.py)
			if !near(got, tt.want) {
				t.Errorf("PtSegDistSq() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPtLineDist(t *testing.T) {
	tests := []struct {
		name                   string
		x1, y1, x2, y2, px, py float64
		want                   float64
	}{
		{"beyond the segment", 0, 0, 10, 0, 50, 7, 7},
		{"on the line", 0, 0, 10, 10, -3, -3, 0},
		{"zero length", 2, 2, 2, 2, 5, 6, 5},
		{"zero length at point", 2, 2, 2, 2, 2, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PtLineDist(tt.x1, tt.y1, tt.x2, tt.y2, tt.px, tt.py)
			if !near(got, tt.want) {
				t.Errorf("PtLineDist() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRelativeCCW(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   int
	}{
		{"positive y", 5, 5, -1},
		{"negative y", 5, -5, 1},
		{"on segment", 5, 0, 0},
		{"collinear before", -5, 0, -1},
		{"collinear after", 15, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeCCW(0, 0, 10, 0, tt.px, tt.py); got != tt.want {
				t.Errorf("RelativeCCW(%v, %v) = %d, want %d", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestIntersection(t *testing.T) {
	p, ok := Intersection(0, 0, 10, 10, 0, 10, 10, 0)
	if !ok || !near(p.X, 5) || !near(p.Y, 5) {
		t.Errorf("Intersection(crossing) = %v, %v; want (5,5), true", p, ok)
	}
	if _, ok := Intersection(0, 0, 10, 0, 0, 5, 10, 5); ok {
		t.Error("Intersection(parallel) ok = true, want false")
	}
	if _, ok := Intersection(0, 0, 1, 1, 5, 0, 6, -10); ok {
		t.Error("Intersection(disjoint) ok = true, want false")
	}
}

func TestFindNearestSegment(t *testing.T) {
	pts := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	tests := []struct {
		x, y float64
		want int
	}{
		{50, -3, 0},
		{104, 50, 1},
		{50, 98, 2},
	}
	for _, tt := range tests {
		if got := FindNearestSegment(pts, tt.x, tt.y); got != tt.want {
			t.Errorf("FindNearestSegment(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
	if got := FindNearestSegment(pts[:1], 0, 0); got != -1 {
		t.Errorf("FindNearestSegment(single point) = %d, want -1", got)
	}
}

func TestPerimeterPoint(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	p, ok := PerimeterPoint(square, Pt(5, 5), Pt(20, 5))
	if !ok || !near(p.X, 10) || !near(p.Y, 5) {
		t.Errorf("PerimeterPoint() = %v, %v; want (10,5), true", p, ok)
	}
}

func TestRectangleIntersectsSegment(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	tests := []struct {
		name   string
		p1, p2 Point
		want   bool
	}{
		{"through", Pt(-5, 5), Pt(15, 5), true},
		{"diagonal", Pt(-5, -5), Pt(15, 15), true},
		{"vertical inside", Pt(5, -5), Pt(5, 20), true},
		{"left of rect", Pt(-10, 0), Pt(-1, 10), false},
		{"above rect", Pt(-5, -5), Pt(15, -1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectangleIntersectsSegment(r, tt.p1, tt.p2); got != tt.want {
				t.Errorf("RectangleIntersectsSegment() = %v, want %v", got, tt.want)
			}
		})
	}
}
