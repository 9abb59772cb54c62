package shape

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

const textSpacing = 2

// Text is a label. Its bounds hold the anchor point in X and Y and the
// size of the label box; the alignment decides where the anchor lies in
// the box.
type Text struct {
	Base

	Value         string
	Align         string
	VerticalAlign string
	Color         string
	Family        string
	Size          float64
	FontStyle     int

	// Per-side spacing, each including Spacing.
	SpacingTop    float64
	SpacingRight  float64
	SpacingBottom float64
	SpacingLeft   float64

	Horizontal    bool
	Background    string
	Border        string
	TextDirection string
	Wrap          bool
	Clipped       bool

	// Owner is the shape the label belongs to. It supplies the text
	// rotation and the label bounds.
	Owner Shape
}

// NewText returns a label showing value, configured by opts.
func NewText(value string, opts ...Option) *Text {
	t := &Text{Value: value}
	Setup(t, opts...)
	return t
}

// ResetStyles resets the base styles and the text attributes.
func (t *Text) ResetStyles() {
	t.Base.ResetStyles()
	t.Color = "black"
	t.Align = geom.AlignCenter
	t.VerticalAlign = geom.AlignMiddle
	t.Family = style.DefaultFontFamily
	t.Size = style.DefaultFontSize
	t.FontStyle = 0
	t.Spacing = textSpacing
	t.SpacingTop = textSpacing
	t.SpacingRight = textSpacing
	t.SpacingBottom = textSpacing
	t.SpacingLeft = textSpacing
	t.Horizontal = true
	t.Background = ""
	t.Border = ""
	t.TextDirection = style.DefaultTextDirection
}

// Apply reads the font and label keys. Labels are never flipped, and their
// opacity comes from textOpacity.
func (t *Text) Apply(s style.Style) {
	old := t.Spacing
	t.Base.Apply(s)

	if s != nil {
		t.FontStyle = s.Int(style.KeyFontStyle, t.FontStyle)
		t.Family = s.String(style.KeyFontFamily, t.Family)
		t.Size = s.Number(style.KeyFontSize, t.Size)
		t.Color = s.Color(style.KeyFontColor, t.Color)
		t.Align = s.String(style.KeyAlign, t.Align)
		t.VerticalAlign = s.String(style.KeyVerticalAlign, t.VerticalAlign)

		t.Spacing = math.Trunc(s.Number(style.KeySpacing, old))
		t.SpacingTop = math.Trunc(s.Number(style.KeySpacingTop, t.SpacingTop-old)) + t.Spacing
		t.SpacingRight = math.Trunc(s.Number(style.KeySpacingRight, t.SpacingRight-old)) + t.Spacing
		t.SpacingBottom = math.Trunc(s.Number(style.KeySpacingBottom, t.SpacingBottom-old)) + t.Spacing
		t.SpacingLeft = math.Trunc(s.Number(style.KeySpacingLeft, t.SpacingLeft-old)) + t.Spacing

		t.Horizontal = s.Bool(style.KeyHorizontal, t.Horizontal)
		t.Background = s.Color(style.KeyLabelBackgroundColor, t.Background)
		t.Border = s.Color(style.KeyLabelBorderColor, t.Border)
		t.TextDirection = s.String(style.KeyTextDirection, style.DefaultTextDirection)
		t.Opacity = s.Number(style.KeyTextOpacity, 100)
		t.Wrap = s.String(style.KeyWhiteSpace, "") == "wrap"
		t.Clipped = s.String(style.KeyOverflow, "") == "hidden"
	}

	t.FlipH = false
	t.FlipV = false
}

// ScreenOffset returns 0.
func (t *Text) ScreenOffset() float64 { return 0 }

// CheckBounds reports whether the scale is positive and the bounds are
// finite. Empty label boxes are allowed.
func (t *Text) CheckBounds() bool {
	if math.IsNaN(t.Scale) || math.IsInf(t.Scale, 0) || t.Scale <= 0 || !t.hasBounds {
		return false
	}
	b := t.bounds
	return geom.Pt(b.X, b.Y).IsFinite() && geom.Pt(b.Width, b.Height).IsFinite()
}

// ShapeRotation returns 0; the rotation is passed to the canvas with the
// text instead.
func (t *Text) ShapeRotation() float64 { return 0 }

// TextRotation returns the owner's text rotation.
func (t *Text) TextRotation() float64 {
	if t.Owner == nil {
		return 0
	}
	return t.Owner.TextRotation()
}

// IsPaintBoundsInverted reports whether the label of a vertex is vertical.
func (t *Text) IsPaintBoundsInverted() bool {
	return !t.Horizontal && t.Owner != nil && len(t.Owner.AsBase().Points()) == 0
}

// ConfigureCanvas adds the font attributes.
func (t *Text) ConfigureCanvas(c canvas.Canvas, x, y, w, h float64) {
	t.Base.ConfigureCanvas(c, x, y, w, h)
	c.SetFontColor(t.Color)
	c.SetFontBackgroundColor(t.Background)
	c.SetFontBorderColor(t.Border)
	c.SetFontFamily(t.Family)
	c.SetFontSize(t.Size)
	c.SetFontStyle(t.FontStyle)
}

// Paint draws the value at the anchor point.
func (t *Text) Paint(c canvas.Canvas) {
	if !t.hasBounds {
		return
	}
	s := t.Scale
	x, y := t.bounds.X/s, t.bounds.Y/s
	w, h := t.bounds.Width/s, t.bounds.Height/s

	t.This.UpdateTransform(c, x, y, w, h)
	t.This.ConfigureCanvas(c, x, y, w, h)

	c.Text(x, y, w, h, t.Value, canvas.TextOptions{
		Align:         t.Align,
		VerticalAlign: t.VerticalAlign,
		Wrap:          t.Wrap,
		Clip:          t.Clipped,
		Rotation:      t.This.TextRotation(),
		Direction:     t.WritingDirection(),
	})
}

// WritingDirection returns the direction passed to the canvas: ltr, rtl
// or "" for the canvas default. The auto setting picks the direction of
// the first strongly directional character.
func (t *Text) WritingDirection() string {
	dir := t.TextDirection
	if dir == style.TextDirectionAuto {
		dir = autoDirection(t.Value)
	}
	if dir != style.TextDirectionLTR && dir != style.TextDirectionRTL {
		return ""
	}
	return dir
}

func autoDirection(s string) string {
	for _, r := range s {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.R, bidi.AL:
			return style.TextDirectionRTL
		case bidi.L:
			return style.TextDirectionLTR
		}
	}
	return style.TextDirectionLTR
}

// margin is the offset of the label box from the anchor, as a fraction of
// the box size.
func (t *Text) margin() geom.Point {
	return geom.AlignmentAsPoint(t.Align, t.VerticalAlign)
}

// SpacingOffset returns how far the anchor moves for the spacing on the
// aligned sides.
func (t *Text) SpacingOffset() geom.Point {
	var d geom.Point
	switch t.Align {
	case geom.AlignCenter:
		d.X = (t.SpacingLeft - t.SpacingRight) / 2
	case geom.AlignRight:
		d.X = -t.SpacingRight
	default:
		d.X = t.SpacingLeft
	}
	switch t.VerticalAlign {
	case geom.AlignMiddle:
		d.Y = (t.SpacingTop - t.SpacingBottom) / 2
	case geom.AlignBottom:
		d.Y = -t.SpacingBottom
	default:
		d.Y = t.SpacingTop
	}
	return d
}

// Place sets the bounds for a label of the cell occupying rect. The box
// is the owner's label bounds. The anchor sits on the aligned side, moved
// in by the spacing; it turns about the cell centre with the owner.
func (t *Text) Place(rect geom.Rect) {
	box := rect
	if t.Owner != nil {
		box = t.Owner.LabelBounds(rect)
	}
	m := t.margin()
	sp := t.SpacingOffset()
	anchor := geom.Pt(
		box.X-m.X*box.Width+sp.X*t.Scale,
		box.Y-m.Y*box.Height+sp.Y*t.Scale,
	)

	if rot := t.TextRotation(); rot != 0 {
		sin, cos := math.Sincos(geom.ToRadians(rot))
		anchor = geom.RotatePoint(anchor, cos, sin, rect.Center())
	}
	t.SetBounds(geom.NewRect(anchor.X, anchor.Y, box.Width, box.Height))
}

// UpdateBoundingBox uses the surface bounds when available. Otherwise the
// label box is moved from the anchor by the alignment and turned by the
// text rotation about the anchor. Blank labels have no bounding box.
func (t *Text) UpdateBoundingBox() {
	if strings.TrimSpace(t.Value) == "" || !t.hasBounds {
		t.setBoundingBox(geom.Rect{}, false)
		return
	}
	if r, ok := t.surfaceBounds(); ok {
		t.setBoundingBox(r, true)
		return
	}

	bb := t.bounds
	m := t.margin()
	box := geom.NewRect(m.X*bb.Width, m.Y*bb.Height, bb.Width, bb.Height)
	if rot := t.This.TextRotation(); rot != 0 {
		box = geom.RotatedBoundingBox(box, rot, &geom.Point{})
	}
	t.setBoundingBox(box.Translate(bb.X, bb.Y), true)
}
