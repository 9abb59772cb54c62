package shape

import (
	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

// Rhombus is a diamond touching the middle of each side of its bounds.
type Rhombus struct {
	Base
}

// NewRhombus returns a rhombus configured by opts.
func NewRhombus(opts ...Option) *Rhombus {
	r := &Rhombus{}
	Setup(r, opts...)
	return r
}

// IsRoundable reports true.
func (r *Rhombus) IsRoundable(canvas.Canvas, float64, float64, float64, float64) bool {
	return true
}

// PaintVertexShape fills and strokes the diamond.
func (r *Rhombus) PaintVertexShape(c canvas.Canvas, x, y, w, h float64) {
	hw, hh := w/2, h/2
	arc := r.style.Number(style.KeyArcSize, style.LineArcSize) / 2

	c.Begin()
	AddPoints(c, []geom.Point{
		{X: x + hw, Y: y},
		{X: x + w, Y: y + hh},
		{X: x + hw, Y: y + h},
		{X: x, Y: y + hh},
	}, r.IsRounded, arc, true, nil, true)
	c.FillAndStroke()
}
