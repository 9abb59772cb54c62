package shape

import "github.com/gogpu/shape/canvas"

// Line is a straight line through the middle of its bounds.
type Line struct {
	Base

	// Vertical draws the line top to bottom instead of left to right.
	Vertical bool
}

// NewLine returns a horizontal or vertical line configured by opts.
func NewLine(vertical bool, opts ...Option) *Line {
	l := &Line{Vertical: vertical}
	Setup(l, opts...)
	return l
}

// PaintVertexShape strokes the line.
func (l *Line) PaintVertexShape(c canvas.Canvas, x, y, w, h float64) {
	c.Begin()
	if l.Vertical {
		mid := x + w/2
		c.MoveTo(mid, y)
		c.LineTo(mid, y+h)
	} else {
		mid := y + h/2
		c.MoveTo(x, mid)
		c.LineTo(x+w, mid)
	}
	c.Stroke()
}
