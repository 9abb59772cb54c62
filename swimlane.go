package shape

import (
	"math"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

const swimlaneImageSize = 16

// Swimlane is a container with a title bar along its top edge, or its
// left edge when the style is not horizontal.
type Swimlane struct {
	Base

	// Image is drawn in the corner of the title bar.
	Image string
}

// NewSwimlane returns a swimlane configured by opts.
func NewSwimlane(opts ...Option) *Swimlane {
	s := &Swimlane{}
	Setup(s, opts...)
	return s
}

// Apply reads the image on top of the base style.
func (s *Swimlane) Apply(st style.Style) {
	s.Base.Apply(st)
	s.Image = st.String(style.KeyImage, s.Image)
}

// IsRoundable reports true.
func (s *Swimlane) IsRoundable(canvas.Canvas, float64, float64, float64, float64) bool {
	return true
}

// TitleSize returns the size of the title bar in canvas units.
func (s *Swimlane) TitleSize() float64 {
	return math.Max(0, s.style.Number(style.KeyStartSize, style.DefaultStartSize))
}

func (s *Swimlane) isHorizontal() bool {
	return s.style.Bool(style.KeyHorizontal, true)
}

// LabelBounds limits the label to the title bar.
func (s *Swimlane) LabelBounds(rect geom.Rect) geom.Rect {
	start := s.TitleSize()
	bounds := rect
	horizontal := s.isHorizontal()
	flipH := s.style.Bool(style.KeyFlipH, false)
	flipV := s.style.Bool(style.KeyFlipV, false)

	shapeVertical := s.Direction.IsVertical()
	realHorizontal := horizontal == !shapeVertical
	reversed := s.Direction == geom.DirectionSouth || s.Direction == geom.DirectionWest
	realFlipH := !realHorizontal && flipH != reversed
	realFlipV := realHorizontal && flipV != reversed

	if !shapeVertical {
		tmp := math.Min(bounds.Height, start*s.Scale)
		if realFlipH || realFlipV {
			bounds.Y += bounds.Height - tmp
		}
		bounds.Height = tmp
	} else {
		tmp := math.Min(bounds.Width, start*s.Scale)
		if realFlipH || realFlipV {
			bounds.X += bounds.Width - tmp
		}
		bounds.Width = tmp
	}
	return bounds
}

// GradientBounds limits the gradient to the title bar.
func (s *Swimlane) GradientBounds(_ canvas.Canvas, x, y, w, h float64) geom.Rect {
	start := s.TitleSize()
	if s.isHorizontal() {
		return geom.NewRect(x, y, w, math.Min(start, h))
	}
	return geom.NewRect(x, y, math.Min(start, w), h)
}

// arcSize returns the corner radius for a title bar of size start.
func (s *Swimlane) arcSize(w, h, start float64) float64 {
	if s.style.Bool(style.KeyAbsoluteArcSize, false) {
		d := s.style.Number(style.KeyArcSize, style.LineArcSize)
		return math.Min(w/2, math.Min(h/2, d/2))
	}
	f := s.style.Number(style.KeyArcSize, style.RectangleRoundingFactor*100) / 100
	return start * f * 3
}

// PaintVertexShape draws the title bar, the body, the separator, the
// image and the glass highlight.
func (s *Swimlane) PaintVertexShape(c canvas.Canvas, x, y, w, h float64) {
	start := s.TitleSize()
	fill := s.style.Color(style.KeySwimlaneFillColor, "")
	line := s.style.Bool(style.KeySwimlaneLine, true)
	var r float64

	if s.isHorizontal() {
		start = math.Min(start, h)
	} else {
		start = math.Min(start, w)
	}

	c.Translate(x, y)

	if !s.IsRounded {
		s.paintSwimlane(c, w, h, start, fill, line)
	} else {
		r = s.arcSize(w, h, start)
		side := w
		if s.isHorizontal() {
			side = h
		}
		r = math.Min(side-start, math.Min(start, r))
		s.paintRoundedSwimlane(c, w, h, start, r, fill, line)
	}

	s.paintSeparator(c, w, h, start, s.style.Color(style.KeySeparatorColor, ""))

	if s.Image != "" {
		b := s.imageBounds(x, y, w)
		c.Image(b.X-x, b.Y-y, b.Width, b.Height, s.Image, false, false, false)
	}

	if s.Glass {
		c.SetShadow(false)
		s.PaintGlassEffect(c, 0, 0, w, start, r)
	}
}

func (s *Swimlane) paintSwimlane(c canvas.Canvas, w, h, start float64, fill string, line bool) {
	c.Begin()
	if s.isHorizontal() {
		c.MoveTo(0, start)
		c.LineTo(0, 0)
		c.LineTo(w, 0)
		c.LineTo(w, start)
		c.FillAndStroke()

		if start < h {
			if fill != "" {
				c.SetFillColor(fill)
			}
			c.Begin()
			c.MoveTo(0, start)
			c.LineTo(0, h)
			c.LineTo(w, h)
			c.LineTo(w, start)
			s.paintBody(c, fill)
		}
	} else {
		c.MoveTo(start, 0)
		c.LineTo(0, 0)
		c.LineTo(0, h)
		c.LineTo(start, h)
		c.FillAndStroke()

		if start < w {
			if fill != "" {
				c.SetFillColor(fill)
			}
			c.Begin()
			c.MoveTo(start, 0)
			c.LineTo(w, 0)
			c.LineTo(w, h)
			c.LineTo(start, h)
			s.paintBody(c, fill)
		}
	}

	if line {
		s.paintDivider(c, w, h, start, fill == "")
	}
}

func (s *Swimlane) paintRoundedSwimlane(c canvas.Canvas, w, h, start, r float64, fill string, line bool) {
	c.Begin()
	if s.isHorizontal() {
		c.MoveTo(w, start)
		c.LineTo(w, r)
		c.QuadTo(w, 0, w-math.Min(w/2, r), 0)
		c.LineTo(math.Min(w/2, r), 0)
		c.QuadTo(0, 0, 0, r)
		c.LineTo(0, start)
		c.FillAndStroke()

		if start < h {
			if fill != "" {
				c.SetFillColor(fill)
			}
			c.Begin()
			c.MoveTo(0, start)
			c.LineTo(0, h-r)
			c.QuadTo(0, h, math.Min(w/2, r), h)
			c.LineTo(w-math.Min(w/2, r), h)
			c.QuadTo(w, h, w, h-r)
			c.LineTo(w, start)
			s.paintBody(c, fill)
		}
	} else {
		c.MoveTo(start, 0)
		c.LineTo(r, 0)
		c.QuadTo(0, 0, 0, math.Min(h/2, r))
		c.LineTo(0, h-math.Min(h/2, r))
		c.QuadTo(0, h, r, h)
		c.LineTo(start, h)
		c.FillAndStroke()

		if start < w {
			if fill != "" {
				c.SetFillColor(fill)
			}
			c.Begin()
			c.MoveTo(start, h)
			c.LineTo(w-r, h)
			c.QuadTo(w, h, w, h-math.Min(h/2, r))
			c.LineTo(w, math.Min(h/2, r))
			c.QuadTo(w, 0, w-r, 0)
			c.LineTo(start, 0)
			s.paintBody(c, fill)
		}
	}

	if line {
		s.paintDivider(c, w, h, start, fill == "")
	}
}

// paintBody strokes the open body outline, filling it when the body has
// its own colour.
func (s *Swimlane) paintBody(c canvas.Canvas, fill string) {
	if fill == "" {
		c.Stroke()
	} else {
		c.FillAndStroke()
	}
}

func (s *Swimlane) paintDivider(c canvas.Canvas, w, h, start float64, shadow bool) {
	if !shadow {
		c.SetShadow(false)
	}
	c.Begin()
	if s.isHorizontal() {
		c.MoveTo(0, start)
		c.LineTo(w, start)
	} else {
		c.MoveTo(start, 0)
		c.LineTo(start, h)
	}
	c.Stroke()
}

func (s *Swimlane) paintSeparator(c canvas.Canvas, w, h, start float64, color string) {
	if color == "" {
		return
	}
	c.SetStrokeColor(color)
	c.SetDashed(true, false)
	c.Begin()
	if s.isHorizontal() {
		c.MoveTo(w, start)
		c.LineTo(w, h)
	} else {
		c.MoveTo(start, 0)
		c.LineTo(w, 0)
	}
	c.Stroke()
	c.SetDashed(false, false)
}

func (s *Swimlane) imageBounds(x, y, w float64) geom.Rect {
	if s.isHorizontal() {
		return geom.NewRect(x+w-swimlaneImageSize, y, swimlaneImageSize, swimlaneImageSize)
	}
	return geom.NewRect(x, y, swimlaneImageSize, swimlaneImageSize)
}
