package canvas

import "github.com/gogpu/shape/geom"

// NodeRef identifies a node of a Surface. The zero value is no node.
type NodeRef uint32

// NoNode is the zero NodeRef.
const NoNode NodeRef = 0

// Line caps.
const (
	CapFlat   = "flat"
	CapRound  = "round"
	CapSquare = "square"
)

// Line joins.
const (
	JoinMiter = "miter"
	JoinRound = "round"
	JoinBevel = "bevel"
)

// TextOptions controls how Text places a string in its box.
type TextOptions struct {
	Align         string // left, center or right
	VerticalAlign string // top, middle or bottom
	Wrap          bool
	Clip          bool
	Rotation      float64 // degrees about the anchor point
	Direction     string  // "", "ltr" or "rtl"
}

// Canvas is the primitive drawing interface shapes paint with. Colours are
// CSS colour strings; an empty string means no colour.
type Canvas interface {
	Save()
	Restore()
	Scale(s float64)
	Translate(dx, dy float64)
	// Rotate turns subsequent drawing by theta degrees about (cx, cy),
	// mirroring first when flipH or flipV is set. Rotations do not
	// accumulate across calls within one state.
	Rotate(theta float64, flipH, flipV bool, cx, cy float64)

	SetAlpha(a float64)
	SetFillAlpha(a float64)
	SetStrokeAlpha(a float64)
	SetFillColor(color string)
	SetGradient(c1, c2 string, x, y, w, h float64, dir geom.Direction, alpha1, alpha2 float64)
	SetStrokeColor(color string)
	SetStrokeWidth(w float64)
	SetDashed(dashed, fixDash bool)
	SetDashPattern(pattern string)
	SetLineCap(lineCap string)
	SetLineJoin(lineJoin string)
	SetMiterLimit(limit float64)

	SetFontColor(color string)
	SetFontBackgroundColor(color string)
	SetFontBorderColor(color string)
	SetFontFamily(family string)
	SetFontSize(size float64)
	SetFontStyle(style int)

	SetShadow(enabled bool)
	SetShadowColor(color string)
	SetShadowAlpha(a float64)
	SetShadowOffset(dx, dy float64)

	Begin()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(x1, y1, x2, y2 float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ArcTo(rx, ry, angle float64, largeArc, sweep bool, x, y float64)
	Close()

	Rect(x, y, w, h float64)
	RoundRect(x, y, w, h, dx, dy float64)
	Ellipse(x, y, w, h float64)
	Image(x, y, w, h float64, src string, aspect, flipH, flipV bool)
	Text(x, y, w, h float64, str string, opts TextOptions)

	Fill()
	Stroke()
	FillAndStroke()

	// UsedGradients returns the keys of the gradients this canvas has
	// filled with so far, in first-use order.
	UsedGradients() []GradientKey
}

// Surface is a tree of drawing nodes with a shared gradient table.
type Surface interface {
	Root() NodeRef
	CreateNode(parent NodeRef) (NodeRef, error)
	RemoveNode(n NodeRef)
	ClearNode(n NodeRef)
	SetVisible(n NodeRef, visible bool)
	// SetOffset sets a screen-space translation applied to everything
	// drawn into n.
	SetOffset(n NodeRef, dx, dy float64)
	NewCanvas(n NodeRef) Canvas
	Gradients() *GradientTable
}

// BoundsQuerier is implemented by surfaces that can report the exact
// extent of what was drawn into a node. The bounds exclude the node's
// screen offset.
type BoundsQuerier interface {
	NodeBounds(n NodeRef) (geom.Rect, error)
}
