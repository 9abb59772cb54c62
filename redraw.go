package shape

import (
	"fmt"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

// Init implements Shape. It creates the shape's node under parent the
// first time it is called; later calls do nothing.
func (b *Base) Init(surface canvas.Surface, parent canvas.NodeRef) error {
	if b.destroyed {
		return fmt.Errorf("shape: init after destroy")
	}
	if b.node != canvas.NoNode {
		return nil
	}
	n, err := surface.CreateNode(parent)
	if err != nil {
		return fmt.Errorf("shape: init: %w", err)
	}
	b.surface = surface
	b.node = n
	surface.SetVisible(n, false)
	return nil
}

// Redraw implements Shape. It repaints the shape from scratch, or hides
// it when its geometry cannot be painted.
func (b *Base) Redraw() {
	if b.node == canvas.NoNode {
		Logger().Debug("shape: redraw before init")
		b.setBoundingBox(geom.Rect{}, false)
		return
	}
	b.updateBoundsFromPoints()

	if b.Visible && b.This.CheckBounds() {
		b.surface.SetVisible(b.node, true)
		b.surface.ClearNode(b.node)
		b.redrawShape()
		b.This.UpdateBoundingBox()
		return
	}
	Logger().Debug("shape: hidden", "node", b.node, "bounds", b.bounds, "scale", b.Scale)
	b.surface.SetVisible(b.node, false)
	b.setBoundingBox(geom.Rect{}, false)
}

func (b *Base) redrawShape() {
	c := b.createCanvas()
	b.This.Paint(c)
	b.destroyCanvas(c)
}

// createCanvas returns a canvas for the shape's node. The node's screen
// offset is updated first. In outline mode the stroke is fixed here and
// the returned canvas ignores paint changes.
func (b *Base) createCanvas() canvas.Canvas {
	off := b.This.ScreenOffset()
	b.surface.SetOffset(b.node, off, off)

	c := b.surface.NewCanvas(b.node)
	if !b.Outline {
		return c
	}
	c.SetStrokeWidth(b.StrokeWidth)
	c.SetStrokeColor(b.Stroke)
	if b.IsDashed {
		c.SetDashed(true, false)
	}
	return &outlineCanvas{Canvas: c}
}

// destroyCanvas hands the gradients the canvas used to the cache.
func (b *Base) destroyCanvas(c canvas.Canvas) {
	b.gradients.update(b.surface.Gradients(), c.UsedGradients())
}

// Destroy implements Shape. It removes the node and releases the
// gradients of the last paint. Repeated calls do nothing.
func (b *Base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	if b.surface != nil {
		b.gradients.release(b.surface.Gradients())
		if b.node != canvas.NoNode {
			b.surface.RemoveNode(b.node)
		}
	}
	b.node = canvas.NoNode
	b.surface = nil
	b.setBoundingBox(geom.Rect{}, false)
}

// Paint implements Shape. It maps the bounds into canvas units, sets up
// the transform and paint attributes, and dispatches to the edge or
// vertex painting hook. In outline mode a rectangle is stroked over the
// bounds when the hooks stroked nothing.
func (b *Base) Paint(c canvas.Canvas) {
	if !b.hasBounds {
		return
	}
	s := b.Scale
	x, y := b.bounds.X/s, b.bounds.Y/s
	w, h := b.bounds.Width/s, b.bounds.Height/s

	if b.This.IsPaintBoundsInverted() {
		t := (w - h) / 2
		x += t
		y -= t
		w, h = h, w
	}

	b.This.UpdateTransform(c, x, y, w, h)
	b.This.ConfigureCanvas(c, x, y, w, h)
	c.SetStrokeWidth(b.StrokeWidth)

	if len(b.points) > 0 {
		pts := make([]geom.Point, len(b.points))
		for i, p := range b.points {
			pts[i] = geom.Pt(p.X/s, p.Y/s)
		}
		b.This.PaintEdgeShape(c, pts)
	} else {
		b.This.PaintVertexShape(c, x, y, w, h)
	}

	if b.Outline {
		if oc, ok := c.(*outlineCanvas); ok && !oc.stroked {
			c.Rect(x, y, w, h)
			c.Stroke()
		}
	}
}

// UpdateTransform implements Shape.
func (b *Base) UpdateTransform(c canvas.Canvas, x, y, w, h float64) {
	c.Scale(b.Scale)
	c.Rotate(b.This.ShapeRotation(), b.FlipH, b.FlipV, x+w/2, y+h/2)
}

// ConfigureCanvas implements Shape. It transfers opacity, shadow, dash
// and colours to c.
func (b *Base) ConfigureCanvas(c canvas.Canvas, x, y, w, h float64) {
	c.SetAlpha(b.Opacity / 100)
	c.SetFillAlpha(b.FillOpacity / 100)
	c.SetStrokeAlpha(b.StrokeOpacity / 100)

	if b.IsShadow {
		c.SetShadow(true)
	}
	if b.IsDashed {
		c.SetDashed(true, b.style.Bool(style.KeyFixDash, false))
	}
	if dash := b.style.String(style.KeyDashPattern, ""); dash != "" {
		c.SetDashPattern(dash)
	}

	if b.Fill != "" && b.Gradient != "" {
		r := b.This.GradientBounds(c, x, y, w, h)
		c.SetGradient(b.Fill, b.Gradient, r.X, r.Y, r.Width, r.Height, b.GradientDirection, 1, 1)
	} else {
		c.SetFillColor(b.Fill)
	}
	c.SetStrokeColor(b.Stroke)
}

// GradientBounds implements Shape. The gradient spans the whole shape.
func (b *Base) GradientBounds(_ canvas.Canvas, x, y, w, h float64) geom.Rect {
	return geom.NewRect(x, y, w, h)
}

// PaintVertexShape implements Shape. It paints the background and, unless
// an outline preview asks for the background only, the foreground without
// shadow.
func (b *Base) PaintVertexShape(c canvas.Canvas, x, y, w, h float64) {
	b.This.PaintBackground(c, x, y, w, h)

	if !b.Outline || !b.style.Bool(style.KeyBackgroundOutline, false) {
		c.SetShadow(false)
		b.This.PaintForeground(c, x, y, w, h)
	}
}

// PaintBackground implements Shape. Base paints nothing.
func (b *Base) PaintBackground(canvas.Canvas, float64, float64, float64, float64) {}

// PaintForeground implements Shape. Base paints nothing.
func (b *Base) PaintForeground(canvas.Canvas, float64, float64, float64, float64) {}

// PaintEdgeShape implements Shape. Base paints nothing.
func (b *Base) PaintEdgeShape(canvas.Canvas, []geom.Point) {}
