package shape

import (
	"math"
	"slices"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

// Shape is a paintable diagram element. Base implements every method;
// variants embed Base (or another variant) and override the hooks that
// differ. Base always dispatches through Shape, so an override is seen
// by the whole pipeline.
type Shape interface {
	// AsBase returns the embedded Base.
	AsBase() *Base

	// Lifecycle, called by the owner.
	Init(surface canvas.Surface, parent canvas.NodeRef) error
	ResetStyles()
	Apply(s style.Style)
	Redraw()
	Destroy()

	// Pipeline steps.
	CheckBounds() bool
	ScreenOffset() float64
	Paint(c canvas.Canvas)
	UpdateTransform(c canvas.Canvas, x, y, w, h float64)
	ConfigureCanvas(c canvas.Canvas, x, y, w, h float64)
	UpdateBoundingBox()

	// Painting hooks.
	PaintVertexShape(c canvas.Canvas, x, y, w, h float64)
	PaintBackground(c canvas.Canvas, x, y, w, h float64)
	PaintForeground(c canvas.Canvas, x, y, w, h float64)
	PaintEdgeShape(c canvas.Canvas, pts []geom.Point)

	// Geometry hooks.
	IsRoundable(c canvas.Canvas, x, y, w, h float64) bool
	LabelMargins(rect geom.Rect) (geom.Rect, bool)
	LabelBounds(rect geom.Rect) geom.Rect
	GradientBounds(c canvas.Canvas, x, y, w, h float64) geom.Rect
	Rotation() float64
	ShapeRotation() float64
	TextRotation() float64
	IsPaintBoundsInverted() bool
	CreateBoundingBox() (geom.Rect, bool)
	AugmentBoundingBox(bbox geom.Rect) geom.Rect
}

// Base holds the state common to all shapes and implements the paint
// pipeline. Its paint attributes are plain fields; Apply fills them from a
// style and options set them at construction.
//
// Base is not safe for concurrent use. The owner serializes Apply, Redraw
// and Destroy for a shape and for all shapes sharing a surface.
type Base struct {
	// This is the shape embedding the Base, used for hook dispatch.
	This Shape

	Fill              string
	Gradient          string
	GradientDirection geom.Direction
	Stroke            string
	StrokeWidth       float64

	// Opacities on a 0 to 100 scale.
	Opacity       float64
	FillOpacity   float64
	StrokeOpacity float64

	// Angle is the rotation in degrees read from the style.
	Angle     float64
	Direction geom.Direction
	FlipH     bool
	FlipV     bool

	Spacing    float64
	StartSize  float64
	EndSize    float64
	StartArrow string
	EndArrow   string

	IsShadow  bool
	IsDashed  bool
	IsRounded bool
	Glass     bool

	Scale   float64
	Visible bool
	Outline bool

	// UseSurfaceBoundingBox prefers the surface's exact bounds. Setup
	// turns it on; straight connectors turn it off.
	UseSurfaceBoundingBox bool

	// VerticalTextRotation is added to the text rotation of shapes whose
	// style is not horizontal. Nil selects -90.
	VerticalTextRotation *float64

	bounds    geom.Rect
	hasBounds bool
	points    []geom.Point

	style style.Style

	surface   canvas.Surface
	node      canvas.NodeRef
	bbox      geom.Rect
	hasBBox   bool
	gradients gradientCache
	destroyed bool
}

// Setup binds b to the shape embedding it, resets the styles to their
// defaults and applies opts. Every constructor calls it; custom shapes
// defined outside this package must too.
func Setup(s Shape, opts ...Option) {
	b := s.AsBase()
	b.This = s
	b.Scale = 1
	b.Visible = true
	b.UseSurfaceBoundingBox = true
	s.ResetStyles()
	for _, opt := range opts {
		opt(b)
	}
}

// AsBase implements Shape.
func (b *Base) AsBase() *Base { return b }

// SetBounds sets the bounds in owner-scale units.
func (b *Base) SetBounds(r geom.Rect) {
	b.bounds = r
	b.hasBounds = true
}

// ClearBounds removes the bounds.
func (b *Base) ClearBounds() {
	b.bounds = geom.Rect{}
	b.hasBounds = false
}

// Bounds returns the bounds and whether they are set.
func (b *Base) Bounds() (geom.Rect, bool) {
	return b.bounds, b.hasBounds
}

// SetPoints sets the points of an edge shape. The slice is copied.
func (b *Base) SetPoints(pts []geom.Point) {
	b.points = slices.Clone(pts)
}

// Points returns the points of an edge shape.
func (b *Base) Points() []geom.Point {
	return b.points
}

// Style returns the style last passed to Apply. The map is owned by the
// shape and must not be modified.
func (b *Base) Style() style.Style {
	return b.style
}

// Node returns the surface node of the shape, or canvas.NoNode before
// Init and after Destroy.
func (b *Base) Node() canvas.NodeRef { return b.node }

// Surface returns the surface the shape is attached to.
func (b *Base) Surface() canvas.Surface { return b.surface }

// BoundingBox returns the box enclosing everything the last redraw
// painted. It reports false while the shape is hidden or unpainted.
func (b *Base) BoundingBox() (geom.Rect, bool) {
	return b.bbox, b.hasBBox
}

func (b *Base) setBoundingBox(r geom.Rect, ok bool) {
	if !ok {
		r = geom.Rect{}
	}
	b.bbox, b.hasBBox = r, ok
}

// ResetStyles implements Shape. It restores every style-derived field to
// its default.
func (b *Base) ResetStyles() {
	b.StrokeWidth = 1
	b.Angle = 0
	b.Opacity = 100
	b.FillOpacity = 100
	b.StrokeOpacity = 100
	b.FlipH = false
	b.FlipV = false

	b.Spacing = 0
	b.Fill = ""
	b.Gradient = ""
	b.GradientDirection = geom.DirectionEast
	b.Stroke = ""
	b.StartSize = 1
	b.EndSize = 1
	b.StartArrow = ""
	b.EndArrow = ""
	b.Direction = geom.DirectionEast

	b.IsShadow = false
	b.IsDashed = false
	b.IsRounded = false
	b.Glass = false
	b.style = nil
}

// Apply implements Shape. It copies the paint attributes out of s, keeping
// the current value for keys s does not set, and keeps a private copy of s
// for the hooks that read further keys. The colour value none disables
// fill, stroke and gradient. For north and south directions the flips are
// swapped so they act in the shape's own frame.
func (b *Base) Apply(s style.Style) {
	b.style = s.Clone()
	if s == nil {
		return
	}
	b.Fill = s.Color(style.KeyFillColor, b.Fill)
	b.Gradient = s.Color(style.KeyGradientColor, b.Gradient)
	b.GradientDirection = s.Direction(style.KeyGradientDirection, b.GradientDirection)
	b.Opacity = s.Number(style.KeyOpacity, b.Opacity)
	b.FillOpacity = s.Number(style.KeyFillOpacity, b.FillOpacity)
	b.StrokeOpacity = s.Number(style.KeyStrokeOpacity, b.StrokeOpacity)
	b.Stroke = s.Color(style.KeyStrokeColor, b.Stroke)
	b.StrokeWidth = s.Number(style.KeyStrokeWidth, b.StrokeWidth)
	b.Spacing = s.Number(style.KeySpacing, b.Spacing)
	b.StartSize = s.Number(style.KeyStartSize, b.StartSize)
	b.EndSize = s.Number(style.KeyEndSize, b.EndSize)
	b.StartArrow = s.Color(style.KeyStartArrow, b.StartArrow)
	b.EndArrow = s.Color(style.KeyEndArrow, b.EndArrow)
	b.Angle = s.Number(style.KeyRotation, b.Angle)
	b.Direction = s.Direction(style.KeyDirection, b.Direction)
	b.FlipH = s.Bool(style.KeyFlipH, false)
	b.FlipV = s.Bool(style.KeyFlipV, false)

	if b.Direction.IsVertical() {
		b.FlipH, b.FlipV = b.FlipV, b.FlipH
	}

	b.IsShadow = s.Bool(style.KeyShadow, b.IsShadow)
	b.IsDashed = s.Bool(style.KeyDashed, b.IsDashed)
	b.IsRounded = s.Bool(style.KeyRounded, b.IsRounded)
	b.Glass = s.Bool(style.KeyGlass, b.Glass)
}

// CheckBounds implements Shape. It reports whether the scale is a positive
// finite number and the bounds are finite with positive size.
func (b *Base) CheckBounds() bool {
	return !math.IsNaN(b.Scale) && !math.IsInf(b.Scale, 0) && b.Scale > 0 &&
		b.hasBounds && b.bounds.Valid()
}

// updateBoundsFromPoints sets the bounds to the box around the rounded
// points, each counted as a 1x1 cell.
func (b *Base) updateBoundsFromPoints() {
	if len(b.points) == 0 {
		return
	}
	cell := func(p geom.Point) geom.Rect {
		return geom.NewRect(geom.Round(p.X), geom.Round(p.Y), 1, 1)
	}
	r := cell(b.points[0])
	for _, p := range b.points[1:] {
		r = r.Add(cell(p))
	}
	b.SetBounds(r)
}
