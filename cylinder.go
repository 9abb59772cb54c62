package shape

import (
	"math"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

// cylinderMaxHeight caps the depth of the top and bottom caps.
const cylinderMaxHeight = 40

// Cylinder is an upright cylinder seen slightly from above.
type Cylinder struct {
	Base
}

// NewCylinder returns a cylinder configured by opts.
func NewCylinder(opts ...Option) *Cylinder {
	cy := &Cylinder{}
	Setup(cy, opts...)
	return cy
}

// PaintVertexShape fills and strokes the body, then strokes the front
// edge of the top cap.
func (cy *Cylinder) PaintVertexShape(c canvas.Canvas, x, y, w, h float64) {
	c.Translate(x, y)
	c.Begin()
	cy.redrawPath(c, w, h, false)
	c.FillAndStroke()

	if !cy.Outline || !cy.style.Bool(style.KeyBackgroundOutline, false) {
		c.SetShadow(false)
		c.Begin()
		cy.redrawPath(c, w, h, true)
		c.Stroke()
	}
}

func (cy *Cylinder) redrawPath(c canvas.Canvas, w, h float64, front bool) {
	dy := math.Min(cylinderMaxHeight, geom.Round(h/5))

	if (front && cy.Fill != "") || (!front && cy.Fill == "") {
		c.MoveTo(0, dy)
		c.CurveTo(0, 2*dy, w, 2*dy, w, dy)
		if !front {
			c.Stroke()
			c.Begin()
		}
	}

	if !front {
		c.MoveTo(0, dy)
		c.CurveTo(0, -dy/3, w, -dy/3, w, dy)
		c.LineTo(w, h-dy)
		c.CurveTo(w, h+dy/3, 0, h+dy/3, 0, h-dy)
		c.Close()
	}
}
