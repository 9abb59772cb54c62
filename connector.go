package shape

import (
	"math"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

// Connector is a polyline with optional markers at either end.
type Connector struct {
	Polyline
}

// NewConnector returns a connector configured by opts.
func NewConnector(opts ...Option) *Connector {
	cn := &Connector{}
	Setup(cn, opts...)
	return cn
}

// UpdateBoundingBox uses the surface bounds for curved connectors, whose
// extent the points alone do not give.
func (cn *Connector) UpdateBoundingBox() {
	cn.UseSurfaceBoundingBox = cn.style.Bool(style.KeyCurved, false)
	cn.Polyline.UpdateBoundingBox()
}

// PaintEdgeShape strokes the line and draws the markers. The markers are
// prepared first so the line can stop short of them.
func (cn *Connector) PaintEdgeShape(c canvas.Canvas, pts []geom.Point) {
	start := cn.createMarker(c, pts, true)
	end := cn.createMarker(c, pts, false)

	cn.Polyline.PaintEdgeShape(c, pts)

	c.SetFillColor(cn.Stroke)
	c.SetShadow(false)
	c.SetDashed(false, false)

	if start != nil {
		start()
	}
	if end != nil {
		end()
	}
}

// createMarker prepares the marker at the start or end of pts, moving that
// end point back along the line, and returns the function that draws it.
func (cn *Connector) createMarker(c canvas.Canvas, pts []geom.Point, source bool) func() {
	kind, sizeKey, fillKey := cn.EndArrow, style.KeyEndSize, style.KeyEndFill
	if source {
		kind, sizeKey, fillKey = cn.StartArrow, style.KeyStartSize, style.KeyStartFill
	}
	n := len(pts)
	if kind == "" || n < 2 {
		return nil
	}

	next := func(i int) int { return n - 2 - i }
	tip := n - 1
	if source {
		next = func(i int) int { return 1 + i }
		tip = 0
	}
	pe := &pts[tip]
	p0 := pts[next(0)]

	// Skip points lying on the tip.
	for count := 1; count < n-1 && geom.Round(p0.X-pe.X) == 0 && geom.Round(p0.Y-pe.Y) == 0; count++ {
		p0 = pts[next(count)]
	}

	dx, dy := pe.X-p0.X, pe.Y-p0.Y
	dist := math.Max(1, math.Hypot(dx, dy))

	m := Marker{
		Kind:        kind,
		Tip:         pe,
		Unit:        geom.Pt(dx/dist, dy/dist),
		Size:        cn.style.Number(sizeKey, style.DefaultMarkerSize),
		StrokeWidth: cn.StrokeWidth,
		Source:      source,
		Filled:      cn.style.Bool(fillKey, true),
	}
	return CreateMarker(c, cn, m)
}

// AugmentBoundingBox adds room for the markers.
func (cn *Connector) AugmentBoundingBox(bbox geom.Rect) geom.Rect {
	bbox = cn.Polyline.AugmentBoundingBox(bbox)

	var size float64
	if cn.StartArrow != "" {
		size = cn.style.Number(style.KeyStartSize, style.DefaultMarkerSize) + 1
	}
	if cn.EndArrow != "" {
		size = math.Max(size, cn.style.Number(style.KeyEndSize, style.DefaultMarkerSize)) + 1
	}
	return bbox.Grow(size * cn.Scale)
}
