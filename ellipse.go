package shape

import (
	"math"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

// Ellipse fills the ellipse inscribed in its bounds.
type Ellipse struct {
	Base
}

// NewEllipse returns an ellipse configured by opts.
func NewEllipse(opts ...Option) *Ellipse {
	e := &Ellipse{}
	Setup(e, opts...)
	return e
}

// PaintVertexShape fills and strokes the ellipse.
func (e *Ellipse) PaintVertexShape(c canvas.Canvas, x, y, w, h float64) {
	c.Ellipse(x, y, w, h)
	c.FillAndStroke()
}

// DoubleEllipse is an ellipse with a second, inset outline.
type DoubleEllipse struct {
	Base
}

// NewDoubleEllipse returns a double ellipse configured by opts.
func NewDoubleEllipse(opts ...Option) *DoubleEllipse {
	e := &DoubleEllipse{}
	Setup(e, opts...)
	return e
}

// PaintBackground fills and strokes the outer ellipse.
func (e *DoubleEllipse) PaintBackground(c canvas.Canvas, x, y, w, h float64) {
	c.Ellipse(x, y, w, h)
	c.FillAndStroke()
}

// PaintForeground strokes the inner ellipse.
func (e *DoubleEllipse) PaintForeground(c canvas.Canvas, x, y, w, h float64) {
	if e.Outline {
		return
	}
	m := e.margin(w, h)
	x += m
	y += m
	w -= 2 * m
	h -= 2 * m
	if w > 0 && h > 0 {
		c.Ellipse(x, y, w, h)
	}
	c.Stroke()
}

// margin is the gap between the two outlines: the margin style value, or
// the stroke width plus 3 limited to a fifth of the smaller side.
func (e *DoubleEllipse) margin(w, h float64) float64 {
	def := math.Min(3+e.StrokeWidth, math.Min(w/5, h/5))
	return e.style.Number(style.KeyMargin, def)
}

// LabelBounds keeps the label inside the inner ellipse.
func (e *DoubleEllipse) LabelBounds(rect geom.Rect) geom.Rect {
	s := e.Scale
	m := e.margin(rect.Width/s, rect.Height/s) * s
	return geom.NewRect(rect.X+m, rect.Y+m, rect.Width-2*m, rect.Height-2*m)
}
