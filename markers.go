package shape

import (
	"sort"
	"sync"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

// Marker describes an edge end decoration to be prepared by a
// MarkerFactory.
type Marker struct {
	// Kind is the marker name, such as classic or oval.
	Kind string

	// Tip is the end point of the edge. Factories move it back so the
	// line stops where the marker begins.
	Tip *geom.Point

	// Unit is the unit vector pointing along the edge towards Tip.
	Unit geom.Point

	Size        float64
	StrokeWidth float64
	Source      bool
	Filled      bool
}

// MarkerFactory prepares a marker and returns the function that draws it
// on c once the line has been painted.
type MarkerFactory func(c canvas.Canvas, s Shape, m Marker) func()

var (
	markerMu sync.RWMutex
	markers  = make(map[string]MarkerFactory)
)

func init() {
	RegisterMarker(style.ArrowClassic, arrowMarker(2))
	RegisterMarker(style.ArrowClassicThin, arrowMarker(3))
	RegisterMarker(style.ArrowBlock, arrowMarker(2))
	RegisterMarker(style.ArrowBlockThin, arrowMarker(3))
	RegisterMarker(style.ArrowOpen, openArrowMarker(2))
	RegisterMarker(style.ArrowOpenThin, openArrowMarker(3))
	RegisterMarker(style.ArrowOval, ovalMarker)
	RegisterMarker(style.ArrowDiamond, diamondMarker)
	RegisterMarker(style.ArrowDiamondThin, diamondMarker)
}

// RegisterMarker makes a marker available to connectors under name,
// replacing any marker already registered there.
func RegisterMarker(name string, f MarkerFactory) {
	markerMu.Lock()
	defer markerMu.Unlock()
	markers[name] = f
}

// Markers returns the registered marker names in sorted order.
func Markers() []string {
	markerMu.RLock()
	defer markerMu.RUnlock()

	names := make([]string, 0, len(markers))
	for name := range markers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateMarker prepares the marker m.Kind for s. It returns nil, leaving
// m.Tip unchanged, when no such marker is registered.
func CreateMarker(c canvas.Canvas, s Shape, m Marker) func() {
	markerMu.RLock()
	f, ok := markers[m.Kind]
	markerMu.RUnlock()
	if !ok {
		Logger().Debug("shape: unknown marker", "kind", m.Kind)
		return nil
	}
	return f(c, s, m)
}

func paintMarker(c canvas.Canvas, filled bool) {
	if filled {
		c.FillAndStroke()
	} else {
		c.Stroke()
	}
}

// arrowMarker draws a triangular head; classic heads have a notch at the
// back. widthFactor divides the half width.
func arrowMarker(widthFactor float64) MarkerFactory {
	return func(c canvas.Canvas, _ Shape, m Marker) func() {
		sw := m.StrokeWidth
		off := m.Unit.Mul(sw * 1.118)
		u := m.Unit.Mul(m.Size + sw)
		pt := m.Tip.Sub(off)

		classic := m.Kind == style.ArrowClassic || m.Kind == style.ArrowClassicThin
		f := 1.0
		if classic {
			f = 3.0 / 4
		}
		m.Tip.X += -u.X*f - off.X
		m.Tip.Y += -u.Y*f - off.Y

		return func() {
			c.Begin()
			c.MoveTo(pt.X, pt.Y)
			c.LineTo(pt.X-u.X-u.Y/widthFactor, pt.Y-u.Y+u.X/widthFactor)
			if classic {
				c.LineTo(pt.X-u.X*3/4, pt.Y-u.Y*3/4)
			}
			c.LineTo(pt.X+u.Y/widthFactor-u.X, pt.Y-u.Y-u.X/widthFactor)
			c.Close()
			paintMarker(c, m.Filled)
		}
	}
}

// openArrowMarker draws the two wings of an arrow head without a base.
func openArrowMarker(widthFactor float64) MarkerFactory {
	return func(c canvas.Canvas, _ Shape, m Marker) func() {
		sw := m.StrokeWidth
		off := m.Unit.Mul(sw * 1.118)
		u := m.Unit.Mul(m.Size + sw)
		pt := m.Tip.Sub(off)

		m.Tip.X -= off.X * 2
		m.Tip.Y -= off.Y * 2

		return func() {
			c.Begin()
			c.MoveTo(pt.X-u.X-u.Y/widthFactor, pt.Y-u.Y+u.X/widthFactor)
			c.LineTo(pt.X, pt.Y)
			c.LineTo(pt.X+u.Y/widthFactor-u.X, pt.Y-u.Y-u.X/widthFactor)
			c.Stroke()
		}
	}
}

// ovalMarker draws a circle of diameter m.Size centred on the tip.
func ovalMarker(c canvas.Canvas, _ Shape, m Marker) func() {
	a := m.Size / 2
	pt := *m.Tip
	m.Tip.X -= m.Unit.X * a
	m.Tip.Y -= m.Unit.Y * a

	return func() {
		c.Ellipse(pt.X-a, pt.Y-a, m.Size, m.Size)
		paintMarker(c, m.Filled)
	}
}

// diamondMarker draws a diamond with its far corner on the tip.
func diamondMarker(c canvas.Canvas, _ Shape, m Marker) func() {
	swFactor, tk := 0.7071, 2.0
	if m.Kind == style.ArrowDiamondThin {
		swFactor, tk = 0.9862, 3.4
	}
	sw := m.StrokeWidth
	off := m.Unit.Mul(sw * swFactor)
	u := m.Unit.Mul(m.Size + sw)
	pt := m.Tip.Sub(off)

	m.Tip.X += -u.X - off.X
	m.Tip.Y += -u.Y - off.Y

	return func() {
		c.Begin()
		c.MoveTo(pt.X, pt.Y)
		c.LineTo(pt.X-u.X/2-u.Y/tk, pt.Y+u.X/tk-u.Y/2)
		c.LineTo(pt.X-u.X, pt.Y-u.Y)
		c.LineTo(pt.X-u.X/2+u.Y/tk, pt.Y-u.Y/2-u.X/tk)
		c.Close()
		paintMarker(c, m.Filled)
	}
}
