package shape

import (
	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

// Polyline strokes the line through its points, with rounded corners or
// as a smooth curve when the style asks.
type Polyline struct {
	Base
}

// NewPolyline returns a polyline configured by opts.
func NewPolyline(opts ...Option) *Polyline {
	p := &Polyline{}
	Setup(p, opts...)
	return p
}

// Rotation returns 0; edges are never rotated.
func (p *Polyline) Rotation() float64 { return 0 }

// ShapeRotation returns 0.
func (p *Polyline) ShapeRotation() float64 { return 0 }

// IsPaintBoundsInverted returns false.
func (p *Polyline) IsPaintBoundsInverted() bool { return false }

// PaintEdgeShape strokes the line.
func (p *Polyline) PaintEdgeShape(c canvas.Canvas, pts []geom.Point) {
	if p.style.Bool(style.KeyCurved, false) {
		p.paintCurvedLine(c, pts)
		return
	}
	p.paintLine(c, pts, p.IsRounded)
}

func (p *Polyline) paintLine(c canvas.Canvas, pts []geom.Point, rounded bool) {
	arc := p.style.Number(style.KeyArcSize, style.LineArcSize) / 2
	c.Begin()
	AddPoints(c, pts, rounded, arc, false, nil, true)
	c.Stroke()
}

// paintCurvedLine joins the midpoints of the inner segments with quadratic
// curves that use the points as control points.
func (p *Polyline) paintCurvedLine(c canvas.Canvas, pts []geom.Point) {
	n := len(pts)
	if n < 2 {
		return
	}
	c.Begin()
	c.MoveTo(pts[0].X, pts[0].Y)

	for i := 1; i < n-2; i++ {
		p0, p1 := pts[i], pts[i+1]
		c.QuadTo(p0.X, p0.Y, (p0.X+p1.X)/2, (p0.Y+p1.Y)/2)
	}

	p0, p1 := pts[n-2], pts[n-1]
	c.QuadTo(p0.X, p0.Y, p1.X, p1.Y)
	c.Stroke()
}
