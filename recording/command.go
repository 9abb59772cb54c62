package recording

import (
	"math"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdFillPath   CommandType = iota // Fill a path
	CmdStrokePath                    // Stroke a path
	CmdDrawImage                     // Draw an image
	CmdDrawText                      // Draw text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
	CmdDrawImage:  "DrawImage",
	CmdDrawText:   "DrawText",
}

// String returns the name of the command type.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Coordinates stored in commands are device coordinates relative to the
// node the command was recorded into.
type Command interface {
	Type() CommandType

	// Bounds returns the geometric extent of the command, ignoring stroke
	// width. It reports false when the command covers nothing.
	Bounds() (geom.Rect, bool)
}

// FillRule selects how the interior of a path is determined.
type FillRule uint8

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// String returns the SVG name of the fill rule.
func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Paint is either a solid colour or a reference to a gradient definition.
// Alpha multiplies the colour's own alpha.
type Paint struct {
	Color    string
	Gradient canvas.GradientKey
	Alpha    float64
}

// IsGradient reports whether the paint refers to a gradient.
func (p Paint) IsGradient() bool { return p.Gradient != "" }

// Stroke holds the stroke parameters of a StrokePathCommand. Width and
// Dash are in device units.
type Stroke struct {
	Width      float64
	Cap        string
	Join       string
	MiterLimit float64
	Dash       []float64
}

// FillPathCommand fills a path.
type FillPathCommand struct {
	Path  *geom.Path
	Paint Paint
	Rule  FillRule
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// Bounds implements Command.
func (c FillPathCommand) Bounds() (geom.Rect, bool) { return c.Path.Bounds() }

// StrokePathCommand strokes a path.
type StrokePathCommand struct {
	Path   *geom.Path
	Paint  Paint
	Stroke Stroke
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// Bounds implements Command.
func (c StrokePathCommand) Bounds() (geom.Rect, bool) { return c.Path.Bounds() }

// DrawImageCommand draws the image at Src into Dst. Dst is in device
// units before Transform is applied.
type DrawImageCommand struct {
	Src       string
	Dst       geom.Rect
	Transform geom.Matrix
	Alpha     float64
	// Aspect preserves the image's aspect ratio inside Dst.
	Aspect bool
	FlipH  bool
	FlipV  bool
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// Bounds implements Command.
func (c DrawImageCommand) Bounds() (geom.Rect, bool) {
	if c.Dst.Width <= 0 || c.Dst.Height <= 0 {
		return geom.Rect{}, false
	}
	return transformRect(c.Transform, c.Dst), true
}

// TextLine is one line of a DrawTextCommand, placed at its baseline
// anchor in device units.
type TextLine struct {
	Text string
	X, Y float64
}

// DrawTextCommand draws lines of text. Anchor is "start", "middle" or
// "end". Box is the estimated extent of the text in device units before
// Transform is applied and is used for the background, the border and
// bounds.
type DrawTextCommand struct {
	Lines      []TextLine
	Anchor     string
	FontFamily string
	FontSize   float64
	FontStyle  int
	Color      string
	Alpha      float64
	Background string
	Border     string
	Box        geom.Rect
	Transform  geom.Matrix
	Direction  string
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// Bounds implements Command.
func (c DrawTextCommand) Bounds() (geom.Rect, bool) {
	if len(c.Lines) == 0 {
		return geom.Rect{}, false
	}
	return transformRect(c.Transform, c.Box), true
}

// transformRect returns the bounding box of r after applying m.
func transformRect(m geom.Matrix, r geom.Rect) geom.Rect {
	if m.IsIdentity() {
		return r
	}
	corners := [4]geom.Point{
		m.TransformPoint(geom.Pt(r.X, r.Y)),
		m.TransformPoint(geom.Pt(r.Right(), r.Y)),
		m.TransformPoint(geom.Pt(r.Right(), r.Bottom())),
		m.TransformPoint(geom.Pt(r.X, r.Bottom())),
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return geom.NewRect(minX, minY, maxX-minX, maxY-minY)
}
