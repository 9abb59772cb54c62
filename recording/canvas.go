package recording

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

// glyphWidthFactor estimates the advance of an average glyph as a fraction
// of the font size. Text boxes are estimates; nothing here measures text.
const glyphWidthFactor = 0.6

// Canvas records the drawing calls made on it as commands of one
// Document node.
type Canvas struct {
	canvas.Base
	doc  *Document
	node canvas.NodeRef
}

var _ canvas.Canvas = (*Canvas)(nil)

func newCanvas(d *Document, n canvas.NodeRef) *Canvas {
	c := &Canvas{
		Base: canvas.NewBase(d.gradients),
		doc:  d,
		node: n,
	}
	if d.opts.minStrokeWidth > 0 {
		c.SetMinStrokeWidth(d.opts.minStrokeWidth)
	}
	return c
}

// Node returns the node the canvas records into.
func (c *Canvas) Node() canvas.NodeRef { return c.node }

// Fill fills the current path.
func (c *Canvas) Fill() { c.paint(true, false) }

// Stroke strokes the current path.
func (c *Canvas) Stroke() { c.paint(false, true) }

// FillAndStroke fills and then strokes the current path.
func (c *Canvas) FillAndStroke() { c.paint(true, true) }

func (c *Canvas) paint(fill, stroke bool) {
	path := c.Path()
	if path.IsEmpty() {
		return
	}
	s := c.State()

	var fillPaint Paint
	doFill := fill && s.FillColor != ""
	if doFill {
		fillPaint = Paint{Color: s.FillColor, Alpha: s.Alpha * s.FillAlpha}
		if key, ok := c.FillGradient(); ok {
			fillPaint = Paint{Gradient: key, Alpha: s.Alpha * s.FillAlpha}
		}
	}
	doStroke := stroke && s.StrokeColor != ""
	if !doFill && !doStroke {
		return
	}

	st := Stroke{
		Width:      c.DeviceStrokeWidth(),
		Cap:        s.LineCap,
		Join:       s.LineJoin,
		MiterLimit: s.MiterLimit,
		Dash:       c.DashArray(),
	}

	if s.Shadow && s.ShadowColor != "" {
		shadow := path.Transform(geom.Translate(s.ShadowDX*s.Scale, s.ShadowDY*s.Scale))
		if doFill {
			c.doc.record(c.node, FillPathCommand{
				Path:  shadow,
				Paint: Paint{Color: s.ShadowColor, Alpha: s.ShadowAlpha * fillPaint.Alpha},
			})
		}
		if doStroke {
			c.doc.record(c.node, StrokePathCommand{
				Path:   shadow,
				Paint:  Paint{Color: s.ShadowColor, Alpha: s.ShadowAlpha * s.Alpha * s.StrokeAlpha},
				Stroke: st,
			})
		}
	}

	if doFill {
		c.doc.record(c.node, FillPathCommand{Path: path.Clone(), Paint: fillPaint})
	}
	if doStroke {
		c.doc.record(c.node, StrokePathCommand{
			Path:   path.Clone(),
			Paint:  Paint{Color: s.StrokeColor, Alpha: s.Alpha * s.StrokeAlpha},
			Stroke: st,
		})
	}
}

// Image records an image drawn into the given rectangle.
func (c *Canvas) Image(x, y, w, h float64, src string, aspect, flipH, flipV bool) {
	if src == "" {
		return
	}
	s := c.State()
	c.doc.record(c.node, DrawImageCommand{
		Src:       src,
		Dst:       geom.NewRect((x+s.DX)*s.Scale, (y+s.DY)*s.Scale, w*s.Scale, h*s.Scale),
		Transform: s.Transform,
		Alpha:     s.Alpha * s.FillAlpha,
		Aspect:    aspect,
		FlipH:     flipH,
		FlipV:     flipV,
	})
}

// Text records str anchored at (x, y). The anchor is the left, centre or
// right end of the first baseline depending on the horizontal alignment
// and is shifted vertically by the vertical alignment. Lines are separated
// by newlines; blank lines take space but draw nothing. The w and h
// arguments are accepted for interface compatibility.
func (c *Canvas) Text(x, y, _, _ float64, str string, opts canvas.TextOptions) {
	s := c.State()
	if str == "" || s.FontColor == "" {
		return
	}
	scale := s.Scale
	x += s.DX
	y += s.DY

	size := s.FontSize
	lines := strings.Split(str, "\n")
	lh := math.Round(size * style.LineHeight)
	textHeight := size + float64(len(lines)-1)*lh

	top := y
	cy := y + size - 1
	switch opts.VerticalAlign {
	case geom.AlignMiddle:
		cy -= textHeight / 2
		top -= textHeight / 2
	case geom.AlignBottom:
		cy -= textHeight + 1
		top -= textHeight + 1
	}

	anchor := "start"
	switch opts.Align {
	case geom.AlignRight:
		anchor = "end"
	case geom.AlignCenter:
		anchor = "middle"
	}

	cmd := DrawTextCommand{
		Anchor:     anchor,
		FontFamily: s.FontFamily,
		FontSize:   size * scale,
		FontStyle:  s.FontStyle,
		Color:      s.FontColor,
		Alpha:      s.Alpha,
		Background: s.FontBackgroundColor,
		Border:     s.FontBorderColor,
		Transform:  s.Transform,
		Direction:  opts.Direction,
	}
	if opts.Rotation != 0 {
		cmd.Transform = s.Transform.Multiply(geom.RotateAbout(opts.Rotation, x*scale, y*scale))
	}

	maxRunes := 0
	for _, line := range lines {
		maxRunes = max(maxRunes, utf8.RuneCountInString(line))
		if strings.TrimSpace(line) != "" {
			cmd.Lines = append(cmd.Lines, TextLine{Text: line, X: x * scale, Y: cy * scale})
		}
		cy += lh
	}

	tw := float64(maxRunes) * size * glyphWidthFactor
	left := x
	rtl := opts.Direction == style.TextDirectionRTL
	switch {
	case anchor == "middle":
		left -= tw / 2
	case (anchor == "end") != rtl:
		// Right-to-left lines run leftwards from their start anchor.
		left -= tw
	}
	cmd.Box = geom.NewRect(left*scale, top*scale, tw*scale, textHeight*scale)

	c.doc.record(c.node, cmd)
}
