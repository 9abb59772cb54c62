package canvas

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/shape/geom"
)

// minDeviceStrokeWidth keeps hairlines from vanishing at small scales.
const minDeviceStrokeWidth = 0.01

// Base carries the state shared by all canvases: the state stack, the
// current path in device space and the gradients used so far. It
// implements every Canvas method except Image, Text and the painting
// calls Fill, Stroke and FillAndStroke.
type Base struct {
	state  State
	states []State

	path         *geom.Path
	lastX, lastY float64

	gradients *GradientTable
	used      []GradientKey
	usedSet   map[GradientKey]struct{}

	minStrokeWidth float64
}

// NewBase returns a Base in the default state that defines gradients in
// table. A nil table disables gradients.
func NewBase(table *GradientTable) Base {
	return Base{
		state:     DefaultState(),
		path:      geom.NewPath(),
		gradients: table,
		usedSet:   make(map[GradientKey]struct{}),
	}
}

// SetMinStrokeWidth sets the smallest device stroke width painted.
func (b *Base) SetMinStrokeWidth(w float64) { b.minStrokeWidth = w }

// State returns the current state. Callers must not keep the pointer past
// the next Save or Restore.
func (b *Base) State() *State { return &b.state }

// Path returns the path built since the last Begin, in device space.
func (b *Base) Path() *geom.Path { return b.path }

// Save pushes a copy of the current state.
func (b *Base) Save() {
	b.states = append(b.states, b.state)
}

// Restore pops the most recently saved state. Unbalanced calls are
// ignored.
func (b *Base) Restore() {
	if n := len(b.states); n > 0 {
		b.state = b.states[n-1]
		b.states = b.states[:n-1]
	}
}

// Scale multiplies the current scale by s.
func (b *Base) Scale(s float64) { b.state.Scale *= s }

// Translate moves the origin by (dx, dy) in user units.
func (b *Base) Translate(dx, dy float64) {
	b.state.DX += dx
	b.state.DY += dy
}

// Rotate implements Canvas.
func (b *Base) Rotate(theta float64, flipH, flipV bool, cx, cy float64) {
	if theta == 0 && !flipH && !flipV {
		return
	}
	s := &b.state
	cx = (cx + s.DX) * s.Scale
	cy = (cy + s.DY) * s.Scale

	if flipH && flipV {
		theta += 180
	} else if flipH != flipV {
		sx, sy := 1.0, 1.0
		var tx, ty float64
		if flipH {
			sx, tx = -1, cx
		}
		if flipV {
			sy, ty = -1, cy
		}
		flip := geom.Translate(tx, ty).Multiply(geom.Scale(sx, sy)).Multiply(geom.Translate(-tx, -ty))
		s.Transform = s.Transform.Multiply(flip)
	}
	if flipH != flipV {
		theta = -theta
	}
	if theta != 0 {
		s.Transform = s.Transform.Multiply(geom.RotateAbout(theta, cx, cy))
	}
	s.Rotation += theta
}

func (b *Base) SetAlpha(a float64)       { b.state.Alpha = a }
func (b *Base) SetFillAlpha(a float64)   { b.state.FillAlpha = a }
func (b *Base) SetStrokeAlpha(a float64) { b.state.StrokeAlpha = a }

// SetFillColor sets a solid fill and clears any gradient.
func (b *Base) SetFillColor(color string) {
	b.state.FillColor = color
	b.state.GradientColor = ""
}

// SetGradient sets a two-colour linear gradient fill. The rectangle is
// accepted for interface compatibility; gradients always span the
// bounding box of the filled path.
func (b *Base) SetGradient(c1, c2 string, _, _, _, _ float64, dir geom.Direction, alpha1, alpha2 float64) {
	s := &b.state
	s.FillColor = c1
	s.GradientColor = c2
	s.GradientFillAlpha = alpha1
	s.GradientAlpha = alpha2
	s.GradientDirection = dir
}

func (b *Base) SetStrokeColor(color string) { b.state.StrokeColor = color }
func (b *Base) SetStrokeWidth(w float64)    { b.state.StrokeWidth = w }

// SetDashed enables dashing. With fixDash the pattern is not multiplied by
// the stroke width.
func (b *Base) SetDashed(dashed, fixDash bool) {
	b.state.Dashed = dashed
	b.state.FixDash = fixDash
}

func (b *Base) SetDashPattern(pattern string)   { b.state.DashPattern = pattern }
func (b *Base) SetLineCap(lineCap string)       { b.state.LineCap = lineCap }
func (b *Base) SetLineJoin(lineJoin string)     { b.state.LineJoin = lineJoin }
func (b *Base) SetMiterLimit(limit float64)     { b.state.MiterLimit = limit }
func (b *Base) SetFontColor(color string)       { b.state.FontColor = color }
func (b *Base) SetFontBackgroundColor(c string) { b.state.FontBackgroundColor = c }
func (b *Base) SetFontBorderColor(c string)     { b.state.FontBorderColor = c }
func (b *Base) SetFontFamily(family string)     { b.state.FontFamily = family }
func (b *Base) SetFontSize(size float64)        { b.state.FontSize = size }
func (b *Base) SetFontStyle(style int)          { b.state.FontStyle = style }
func (b *Base) SetShadow(enabled bool)          { b.state.Shadow = enabled }
func (b *Base) SetShadowColor(color string)     { b.state.ShadowColor = color }
func (b *Base) SetShadowAlpha(a float64)        { b.state.ShadowAlpha = a }

func (b *Base) SetShadowOffset(dx, dy float64) {
	b.state.ShadowDX = dx
	b.state.ShadowDY = dy
}

// DevicePoint maps a user-space point to device space.
func (b *Base) DevicePoint(x, y float64) geom.Point {
	s := &b.state
	return s.Transform.TransformPoint(geom.Pt((x+s.DX)*s.Scale, (y+s.DY)*s.Scale))
}

// Begin starts a new, empty path.
func (b *Base) Begin() {
	b.path = geom.NewPath()
	b.lastX, b.lastY = 0, 0
}

func (b *Base) MoveTo(x, y float64) {
	p := b.DevicePoint(x, y)
	b.path.MoveTo(p.X, p.Y)
	b.lastX, b.lastY = x, y
}

func (b *Base) LineTo(x, y float64) {
	p := b.DevicePoint(x, y)
	b.path.LineTo(p.X, p.Y)
	b.lastX, b.lastY = x, y
}

func (b *Base) QuadTo(x1, y1, x2, y2 float64) {
	c := b.DevicePoint(x1, y1)
	p := b.DevicePoint(x2, y2)
	b.path.QuadTo(c.X, c.Y, p.X, p.Y)
	b.lastX, b.lastY = x2, y2
}

func (b *Base) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	c1 := b.DevicePoint(x1, y1)
	c2 := b.DevicePoint(x2, y2)
	p := b.DevicePoint(x3, y3)
	b.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
	b.lastX, b.lastY = x3, y3
}

// ArcTo adds an elliptical arc from the last point to (x, y) using SVG
// arc semantics. A degenerate arc adds nothing.
func (b *Base) ArcTo(rx, ry, angle float64, largeArc, sweep bool, x, y float64) {
	curves := geom.ArcToCurves(b.lastX, b.lastY, rx, ry, angle, largeArc, sweep, x, y)
	for i := 0; i+5 < len(curves); i += 6 {
		b.CurveTo(curves[i], curves[i+1], curves[i+2], curves[i+3], curves[i+4], curves[i+5])
	}
}

func (b *Base) Close() { b.path.Close() }

// Rect replaces the current path with a rectangle.
func (b *Base) Rect(x, y, w, h float64) {
	b.Begin()
	b.MoveTo(x, y)
	b.LineTo(x+w, y)
	b.LineTo(x+w, y+h)
	b.LineTo(x, y+h)
	b.Close()
}

// RoundRect replaces the current path with a rectangle whose corners are
// elliptical arcs with radii dx and dy.
func (b *Base) RoundRect(x, y, w, h, dx, dy float64) {
	dx = math.Min(dx, w/2)
	dy = math.Min(dy, h/2)
	if dx <= 0 || dy <= 0 {
		b.Rect(x, y, w, h)
		return
	}
	b.Begin()
	b.MoveTo(x+dx, y)
	b.LineTo(x+w-dx, y)
	b.ArcTo(dx, dy, 0, false, true, x+w, y+dy)
	b.LineTo(x+w, y+h-dy)
	b.ArcTo(dx, dy, 0, false, true, x+w-dx, y+h)
	b.LineTo(x+dx, y+h)
	b.ArcTo(dx, dy, 0, false, true, x, y+h-dy)
	b.LineTo(x, y+dy)
	b.ArcTo(dx, dy, 0, false, true, x+dx, y)
	b.Close()
}

// Ellipse replaces the current path with the ellipse inscribed in the
// given rectangle.
func (b *Base) Ellipse(x, y, w, h float64) {
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	b.Begin()
	b.MoveTo(x, cy)
	b.ArcTo(rx, ry, 0, false, true, cx, y)
	b.ArcTo(rx, ry, 0, false, true, x+w, cy)
	b.ArcTo(rx, ry, 0, false, true, cx, y+h)
	b.ArcTo(rx, ry, 0, false, true, x, cy)
	b.Close()
}

// DeviceStrokeWidth returns the stroke width in device units.
func (b *Base) DeviceStrokeWidth() float64 {
	w := b.state.StrokeWidth * b.state.Scale
	return math.Max(b.minStrokeWidth, math.Max(minDeviceStrokeWidth, w))
}

// DashArray returns the dash lengths in device units, or nil when the
// stroke is solid. Each pattern entry is multiplied by the scale and,
// unless FixDash is set, by the stroke width.
func (b *Base) DashArray() []float64 {
	s := &b.state
	if !s.Dashed {
		return nil
	}
	unit := s.Scale
	if !s.FixDash {
		unit *= s.StrokeWidth
	}
	var out []float64
	for _, f := range strings.Fields(s.DashPattern) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		out = append(out, v*unit)
	}
	return out
}

// FillGradient returns the key of the current gradient fill, defining it
// in the gradient table and recording it as used. It reports false when
// the fill is solid or gradients are disabled.
func (b *Base) FillGradient() (GradientKey, bool) {
	s := &b.state
	if b.gradients == nil || s.FillColor == "" || s.GradientColor == "" {
		return "", false
	}
	key := b.gradients.Define(GradientDef{
		Start:      s.FillColor,
		End:        s.GradientColor,
		StartAlpha: s.GradientFillAlpha,
		EndAlpha:   s.GradientAlpha,
		Direction:  s.GradientDirection,
	})
	if _, ok := b.usedSet[key]; !ok {
		b.usedSet[key] = struct{}{}
		b.used = append(b.used, key)
	}
	return key, true
}

// UsedGradients implements Canvas.
func (b *Base) UsedGradients() []GradientKey {
	return append([]GradientKey(nil), b.used...)
}
