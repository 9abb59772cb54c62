// Package path flattens curved path outlines into polylines.
//
// It has its own point and element types so that the geometry package can
// depend on it without an import cycle.
package path

import "math"

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// Tolerance is the default maximum distance between a curve and its
// flattened polyline.
const Tolerance = 0.1

// maxDepth bounds curve subdivision. Non-finite control points would
// otherwise never satisfy the flatness test.
const maxDepth = 16

// Element is one segment of an outline.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

// LineTo adds a straight segment.
type LineTo struct{ Point Point }

// QuadTo adds a quadratic Bezier segment.
type QuadTo struct{ Control, Point Point }

// CubicTo adds a cubic Bezier segment.
type CubicTo struct{ Control1, Control2, Point Point }

// Close returns to the start of the current subpath.
type Close struct{}

func (MoveTo) isElement()  {}
func (LineTo) isElement()  {}
func (QuadTo) isElement()  {}
func (CubicTo) isElement() {}
func (Close) isElement()   {}

// Flatten returns the vertices of the polyline approximating elements.
// Subpaths are concatenated; Close repeats the start of its subpath.
func Flatten(elements []Element, tolerance float64) []Point {
	if tolerance <= 0 {
		tolerance = Tolerance
	}
	var (
		points        []Point
		current, head Point
	)
	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			current, head = e.Point, e.Point
			points = append(points, current)
		case LineTo:
			current = e.Point
			points = append(points, current)
		case QuadTo:
			points = flattenQuad(points, current, e.Control, e.Point, tolerance, 0)
			current = e.Point
		case CubicTo:
			points = flattenCubic(points, current, e.Control1, e.Control2, e.Point, tolerance, 0)
			current = e.Point
		case Close:
			current = head
			points = append(points, head)
		}
	}
	return points
}

// Bounds returns the extent of the flattened outline. ok is false when
// elements contain no vertices or any vertex is not finite.
func Bounds(elements []Element) (minX, minY, maxX, maxY float64, ok bool) {
	pts := Flatten(elements, Tolerance)
	if len(pts) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return 0, 0, 0, 0, false
		}
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY, true
}

func flattenQuad(dst []Point, p0, p1, p2 Point, tol float64, depth int) []Point {
	if depth >= maxDepth || distToSegment(p1, p0, p2) < tol {
		return append(dst, p2)
	}
	q0 := lerp(p0, p1)
	q1 := lerp(p1, p2)
	m := lerp(q0, q1)
	dst = flattenQuad(dst, p0, q0, m, tol, depth+1)
	return flattenQuad(dst, m, q1, p2, tol, depth+1)
}

func flattenCubic(dst []Point, p0, p1, p2, p3 Point, tol float64, depth int) []Point {
	if depth >= maxDepth || math.Max(distToSegment(p1, p0, p3), distToSegment(p2, p0, p3)) < tol {
		return append(dst, p3)
	}
	q0 := lerp(p0, p1)
	q1 := lerp(p1, p2)
	q2 := lerp(p2, p3)
	r0 := lerp(q0, q1)
	r1 := lerp(q1, q2)
	m := lerp(r0, r1)
	dst = flattenCubic(dst, p0, q0, r0, m, tol, depth+1)
	return flattenCubic(dst, m, r1, q2, p3, tol, depth+1)
}

func lerp(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// distToSegment returns the distance from p to the segment a-b.
func distToSegment(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	l2 := abx*abx + aby*aby
	if l2 < 1e-20 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*abx), p.Y-(a.Y+t*aby))
}
