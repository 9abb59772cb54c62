package shape

import "github.com/gogpu/shape/canvas"

// Rectangle is a box, optionally with rounded corners and a glass
// highlight.
type Rectangle struct {
	Base
}

// NewRectangle returns a rectangle configured by opts.
func NewRectangle(opts ...Option) *Rectangle {
	r := &Rectangle{}
	Setup(r, opts...)
	return r
}

// PaintBackground fills and strokes the box.
func (r *Rectangle) PaintBackground(c canvas.Canvas, x, y, w, h float64) {
	if r.IsRounded {
		a := r.ArcSize(w, h)
		c.RoundRect(x, y, w, h, a, a)
	} else {
		c.Rect(x, y, w, h)
	}
	c.FillAndStroke()
}

// IsRoundable reports true.
func (r *Rectangle) IsRoundable(canvas.Canvas, float64, float64, float64, float64) bool {
	return true
}

// PaintForeground adds the glass highlight to filled rectangles.
func (r *Rectangle) PaintForeground(c canvas.Canvas, x, y, w, h float64) {
	if r.Glass && !r.Outline && r.Fill != "" {
		r.PaintGlassEffect(c, x, y, w, h, r.ArcSize(w+r.StrokeWidth, h+r.StrokeWidth))
	}
}
