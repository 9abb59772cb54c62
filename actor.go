package shape

import (
	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

// outlinePather draws the closed outline of an actor-like shape in a
// w x h box at the origin.
type outlinePather interface {
	RedrawPath(c canvas.Canvas, x, y, w, h float64)
}

// Actor is a stick figure. It is also the base of shapes that are a
// single filled outline: Triangle and Cloud replace RedrawPath.
type Actor struct {
	Base
}

// NewActor returns an actor configured by opts.
func NewActor(opts ...Option) *Actor {
	a := &Actor{}
	Setup(a, opts...)
	return a
}

// PaintVertexShape fills and strokes the outline drawn by RedrawPath,
// translated to (x, y).
func (a *Actor) PaintVertexShape(c canvas.Canvas, x, y, w, h float64) {
	c.Translate(x, y)
	c.Begin()
	if p, ok := a.This.(outlinePather); ok {
		p.RedrawPath(c, x, y, w, h)
	}
	c.FillAndStroke()
}

// RedrawPath draws the head and shoulders.
func (a *Actor) RedrawPath(c canvas.Canvas, _, _, w, h float64) {
	width := w / 3
	c.MoveTo(0, h)
	c.CurveTo(0, 3*h/5, 0, 2*h/5, w/2, 2*h/5)
	c.CurveTo(w/2-width, 2*h/5, w/2-width, 0, w/2, 0)
	c.CurveTo(w/2+width, 0, w/2+width, 2*h/5, w/2, 2*h/5)
	c.CurveTo(w, 2*h/5, w, 3*h/5, w, h)
	c.Close()
}

// Triangle points east, or wherever its direction turns it.
type Triangle struct {
	Actor
}

// NewTriangle returns a triangle configured by opts.
func NewTriangle(opts ...Option) *Triangle {
	t := &Triangle{}
	Setup(t, opts...)
	return t
}

// IsRoundable reports true.
func (t *Triangle) IsRoundable(canvas.Canvas, float64, float64, float64, float64) bool {
	return true
}

// RedrawPath draws the three corners, rounded when the style asks.
func (t *Triangle) RedrawPath(c canvas.Canvas, _, _, w, h float64) {
	arc := t.style.Number(style.KeyArcSize, style.LineArcSize) / 2
	pts := []geom.Point{{X: 0, Y: 0}, {X: w, Y: 0.5 * h}, {X: 0, Y: h}}
	AddPoints(c, pts, t.IsRounded, arc, true, nil, true)
}

// Cloud is a cloud outline.
type Cloud struct {
	Actor
}

// NewCloud returns a cloud configured by opts.
func NewCloud(opts ...Option) *Cloud {
	cl := &Cloud{}
	Setup(cl, opts...)
	return cl
}

// RedrawPath draws the cloud from six cubic curves.
func (cl *Cloud) RedrawPath(c canvas.Canvas, _, _, w, h float64) {
	c.MoveTo(0.25*w, 0.25*h)
	c.CurveTo(0.05*w, 0.25*h, 0, 0.5*h, 0.16*w, 0.55*h)
	c.CurveTo(0, 0.66*h, 0.18*w, 0.9*h, 0.31*w, 0.8*h)
	c.CurveTo(0.4*w, h, 0.7*w, h, 0.8*w, 0.8*h)
	c.CurveTo(w, 0.8*h, w, 0.6*h, 0.875*w, 0.5*h)
	c.CurveTo(w, 0.3*h, 0.8*w, 0.1*h, 0.625*w, 0.2*h)
	c.CurveTo(0.5*w, 0.05*h, 0.3*w, 0.05*h, 0.25*w, 0.25*h)
	c.Close()
}
