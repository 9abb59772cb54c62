package geom

// PtSegDistSq returns the squared distance from (px, py) to the segment
// (x1, y1)-(x2, y2).
func PtSegDistSq(x1, y1, x2, y2, px, py float64) float64 {
	x2 -= x1
	y2 -= y1
	px -= x1
	py -= y1

	dot := px*x2 + py*y2
	var projLenSq float64
	if dot > 0 {
		px = x2 - px
		py = y2 - py
		dot = px*x2 + py*y2
		if dot > 0 {
			projLenSq = dot * dot / (x2*x2 + y2*y2)
		}
	}

	lenSq := px*px + py*py - projLenSq
	if lenSq < 0 {
		return 0
	}
	return lenSq
}

// PtLineDist returns the distance from (px, py) to the infinite line
// through (x1, y1) and (x2, y2). When the two points coincide it is the
// distance to that point.
func PtLineDist(x1, y1, x2, y2, px, py float64) float64 {
	l := Pt(x2-x1, y2-y1).Length()
	if l == 0 {
		return Pt(px-x1, py-y1).Length()
	}
	num := (y2-y1)*px - (x2-x1)*py + x2*y1 - y2*x1
	if num < 0 {
		num = -num
	}
	return num / l
}

// RelativeCCW reports on which side of the segment (x1, y1)-(x2, y2) the
// point (px, py) lies: 1 for one side, -1 for the other and 0 when the point
// is on the segment. Collinear points beyond either end report the side of
// the nearer end.
func RelativeCCW(x1, y1, x2, y2, px, py float64) int {
	x2 -= x1
	y2 -= y1
	px -= x1
	py -= y1

	ccw := px*y2 - py*x2
	if ccw == 0 {
		ccw = px*x2 + py*y2
		if ccw > 0 {
			px -= x2
			py -= y2
			ccw = px*x2 + py*y2
			if ccw < 0 {
				ccw = 0
			}
		}
	}

	switch {
	case ccw < 0:
		return -1
	case ccw > 0:
		return 1
	}
	return 0
}

// Intersection returns the point where the segments (x0, y0)-(x1, y1) and
// (x2, y2)-(x3, y3) cross. The second result is false for parallel or
// disjoint segments.
func Intersection(x0, y0, x1, y1, x2, y2, x3, y3 float64) (Point, bool) {
	denom := (y3-y2)*(x1-x0) - (x3-x2)*(y1-y0)
	if denom == 0 {
		return Point{}, false
	}
	ua := ((x3-x2)*(y0-y2) - (y3-y2)*(x0-x2)) / denom
	ub := ((x1-x0)*(y0-y2) - (y1-y0)*(x0-x2)) / denom

	if ua < 0 || ua > 1 || ub < 0 || ub > 1 {
		return Point{}, false
	}
	return Point{X: x0 + ua*(x1-x0), Y: y0 + ua*(y1-y0)}, true
}

// FindNearestSegment returns the index of the segment of the polyline pts
// closest to (x, y), or -1 when pts has fewer than two points.
func FindNearestSegment(pts []Point, x, y float64) int {
	index := -1
	if len(pts) < 2 {
		return index
	}

	var best float64
	last := pts[0]
	for i := 1; i < len(pts); i++ {
		cur := pts[i]
		d := PtSegDistSq(last.X, last.Y, cur.X, cur.Y, x, y)
		if index < 0 || d < best {
			best = d
			index = i - 1
		}
		last = cur
	}
	return index
}

// PerimeterPoint returns the intersection of the ray from center to point
// with the polygon pts that lies nearest to point.
func PerimeterPoint(pts []Point, center, point Point) (Point, bool) {
	var (
		found  bool
		best   Point
		bestSq float64
	)
	for i := 0; i < len(pts)-1; i++ {
		ip, ok := Intersection(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y,
			center.X, center.Y, point.X, point.Y)
		if !ok {
			continue
		}
		dx := point.X - ip.X
		dy := point.Y - ip.Y
		d := dx*dx + dy*dy
		if !found || d < bestSq {
			found = true
			best = ip
			bestSq = d
		}
	}
	return best, found
}

// RectangleIntersectsSegment reports whether the segment p1-p2 touches r.
func RectangleIntersectsSegment(r Rect, p1, p2 Point) bool {
	minX, maxX := p1.X, p2.X
	if p1.X > p2.X {
		minX, maxX = p2.X, p1.X
	}
	maxX = min(maxX, r.Right())
	minX = max(minX, r.X)
	if minX > maxX {
		return false
	}

	minY, maxY := p1.Y, p2.Y
	if dx := p2.X - p1.X; dx > 1e-7 || dx < -1e-7 {
		a := (p2.Y - p1.Y) / dx
		b := p1.Y - a*p1.X
		minY = a*minX + b
		maxY = a*maxX + b
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	maxY = min(maxY, r.Bottom())
	minY = max(minY, r.Y)
	return minY <= maxY
}
