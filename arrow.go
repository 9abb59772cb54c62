package shape

import (
	"math"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

// Arrow is a block arrow from the first to the last point of an edge.
type Arrow struct {
	Base

	// ArrowWidth is the width of the arrow head, used for the bounding box.
	ArrowWidth float64
}

// NewArrow returns an arrow configured by opts.
func NewArrow(opts ...Option) *Arrow {
	a := &Arrow{}
	Setup(a, opts...)
	return a
}

// ResetStyles resets the base styles and the arrow geometry.
func (a *Arrow) ResetStyles() {
	a.Base.ResetStyles()
	a.ArrowWidth = style.ArrowWidth
	a.EndSize = style.ArrowSize
}

// AugmentBoundingBox adds half the arrow head width and the stroke width.
func (a *Arrow) AugmentBoundingBox(bbox geom.Rect) geom.Rect {
	bbox = a.Base.AugmentBoundingBox(bbox)
	w := math.Max(a.ArrowWidth, a.EndSize)
	return bbox.Grow((w/2 + a.StrokeWidth) * a.Scale)
}

// PaintEdgeShape fills and strokes the arrow outline. Edges whose end
// points coincide paint nothing.
func (a *Arrow) PaintEdgeShape(c canvas.Canvas, pts []geom.Point) {
	if len(pts) < 2 {
		return
	}
	const (
		spacing = style.ArrowSpacing
		width   = style.ArrowWidth
		head    = style.ArrowSize
	)

	p0, pe := pts[0], pts[len(pts)-1]
	dx, dy := pe.X-p0.X, pe.Y-p0.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	length := dist - 2*spacing - head

	nx, ny := dx/dist, dy/dist
	basex, basey := length*nx, length*ny
	floorx, floory := width*ny/3, -width*nx/3

	p0x := p0.X - floorx/2 + spacing*nx
	p0y := p0.Y - floory/2 + spacing*ny
	p1x, p1y := p0x+floorx, p0y+floory
	p2x, p2y := p1x+basex, p1y+basey
	p3x, p3y := p2x+floorx, p2y+floory
	p5x, p5y := p3x-3*floorx, p3y-3*floory

	c.Begin()
	c.MoveTo(p0x, p0y)
	c.LineTo(p1x, p1y)
	c.LineTo(p2x, p2y)
	c.LineTo(p3x, p3y)
	c.LineTo(pe.X-spacing*nx, pe.Y-spacing*ny)
	c.LineTo(p5x, p5y)
	c.LineTo(p5x+floorx, p5y+floory)
	c.Close()
	c.FillAndStroke()
}
