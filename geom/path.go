package geom

import ipath "github.com/gogpu/shape/internal/path"

// Verb identifies the kind of a path segment.
type Verb uint8

// Path verbs.
const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

// Segment is one element of a Path. Pts holds the points the verb uses:
// one for MoveTo and LineTo, two for QuadTo, three for CubicTo and none
// for Close.
type Segment struct {
	Verb Verb
	Pts  [3]Point
}

// End returns the point the pen rests on after the segment.
func (s Segment) End() Point {
	switch s.Verb {
	case VerbQuadTo:
		return s.Pts[1]
	case VerbCubicTo:
		return s.Pts[2]
	}
	return s.Pts[0]
}

// Path is an outline built from move, line, curve and close segments.
// The zero value is an empty path ready to use.
type Path struct {
	segs    []Segment
	start   Point
	current Point
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{segs: make([]Segment, 0, 16)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Verb: VerbMoveTo, Pts: [3]Point{pt}})
	p.start, p.current = pt, pt
}

// LineTo adds a straight line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Verb: VerbLineTo, Pts: [3]Point{pt}})
	p.current = pt
}

// QuadTo adds a quadratic Bezier through control (cx, cy) to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Verb: VerbQuadTo, Pts: [3]Point{Pt(cx, cy), pt}})
	p.current = pt
}

// CubicTo adds a cubic Bezier with controls (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.segs = append(p.segs, Segment{Verb: VerbCubicTo, Pts: [3]Point{Pt(c1x, c1y), Pt(c2x, c2y), pt}})
	p.current = pt
}

// Close ends the current subpath with a line back to its start.
func (p *Path) Close() {
	p.segs = append(p.segs, Segment{Verb: VerbClose})
	p.current = p.start
}

// Segments returns the segments of p. The slice must not be modified.
func (p *Path) Segments() []Segment {
	return p.segs
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segs)
}

// IsEmpty reports whether p has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.segs) == 0
}

// CurrentPoint returns the pen position.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Reset removes all segments, keeping the allocated storage.
func (p *Path) Reset() {
	p.segs = p.segs[:0]
	p.start, p.current = Point{}, Point{}
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	c := *p
	c.segs = append([]Segment(nil), p.segs...)
	return &c
}

// Transform returns a copy of p with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{segs: make([]Segment, len(p.segs))}
	for i, s := range p.segs {
		for j := range s.Pts {
			s.Pts[j] = m.TransformPoint(s.Pts[j])
		}
		out.segs[i] = s
	}
	out.start = m.TransformPoint(p.start)
	out.current = m.TransformPoint(p.current)
	return out
}

// Flatten returns the vertices of a polyline approximating p.
func (p *Path) Flatten() []Point {
	pts := ipath.Flatten(p.elements(), ipath.Tolerance)
	out := make([]Point, len(pts))
	for i, q := range pts {
		out[i] = Point(q)
	}
	return out
}

// Bounds returns the extent of p including curve bulges. The second result
// is false for an empty path or one with non-finite coordinates.
func (p *Path) Bounds() (Rect, bool) {
	minX, minY, maxX, maxY, ok := ipath.Bounds(p.elements())
	if !ok {
		return Rect{}, false
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

func (p *Path) elements() []ipath.Element {
	els := make([]ipath.Element, 0, len(p.segs))
	for _, s := range p.segs {
		a, b, c := ipath.Point(s.Pts[0]), ipath.Point(s.Pts[1]), ipath.Point(s.Pts[2])
		switch s.Verb {
		case VerbMoveTo:
			els = append(els, ipath.MoveTo{Point: a})
		case VerbLineTo:
			els = append(els, ipath.LineTo{Point: a})
		case VerbQuadTo:
			els = append(els, ipath.QuadTo{Control: a, Point: b})
		case VerbCubicTo:
			els = append(els, ipath.CubicTo{Control1: a, Control2: b, Point: c})
		case VerbClose:
			els = append(els, ipath.Close{})
		}
	}
	return els
}
