package shape

import (
	"math"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

// ArcSize returns the corner radius of a rounded w x h shape. With
// absoluteArcSize the arcSize style value is a diameter in canvas units,
// limited to half the shape. Otherwise it is a percentage of the smaller
// side.
func (b *Base) ArcSize(w, h float64) float64 {
	if b.style.Bool(style.KeyAbsoluteArcSize, false) {
		d := b.style.Number(style.KeyArcSize, style.LineArcSize)
		return math.Min(w/2, math.Min(h/2, d/2))
	}
	f := b.style.Number(style.KeyArcSize, style.RectangleRoundingFactor*100) / 100
	return math.Min(w*f, h*f)
}

// Glass highlight geometry.
const (
	glassSize       = 0.4
	glassStartAlpha = 0.9
	glassEndAlpha   = 0.1
)

// PaintGlassEffect fills a white highlight over the upper part of the
// shape, fading downwards. arc is the corner radius of rounded shapes.
func (b *Base) PaintGlassEffect(c canvas.Canvas, x, y, w, h, arc float64) {
	sw := math.Ceil(b.StrokeWidth / 2)

	c.SetGradient("#ffffff", "#ffffff", x, y, w, h*0.6, geom.DirectionSouth, glassStartAlpha, glassEndAlpha)
	c.Begin()
	arc += 2 * sw

	if b.IsRounded {
		c.MoveTo(x-sw+arc, y-sw)
		c.QuadTo(x-sw, y-sw, x-sw, y-sw+arc)
		c.LineTo(x-sw, y+h*glassSize)
		c.QuadTo(x+w*0.5, y+h*0.7, x+w+sw, y+h*glassSize)
		c.LineTo(x+w+sw, y-sw+arc)
		c.QuadTo(x+w+sw, y-sw, x+w+sw-arc, y-sw)
	} else {
		c.MoveTo(x-sw, y-sw)
		c.LineTo(x-sw, y+h*glassSize)
		c.QuadTo(x+w*0.5, y+h*0.7, x+w+sw, y+h*glassSize)
		c.LineTo(x+w+sw, y-sw)
	}

	c.Close()
	c.Fill()
}
