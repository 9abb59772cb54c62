// Package svg provides an SVG backend for recording documents.
//
// Importing the package registers the "svg" format for .svg files:
//
//	import _ "github.com/gogpu/shape/recording/backends/svg"
//
//	err := recording.RenderFile(doc, "diagram.svg", "")
package svg

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/recording"
	"github.com/gogpu/shape/style"
)

func init() {
	recording.RegisterFormat(recording.Format{
		Name:       "svg",
		Extensions: []string{".svg"},
		New:        func() recording.WriterBackend { return NewBackend() },
	})
}

// Backend writes an SVG document. Every node becomes a group, paths keep
// their curves and gradients become linearGradient definitions.
type Backend struct {
	buf    bytes.Buffer
	canvas *svgo.SVG
	depth  int
	done   bool
}

var _ recording.WriterBackend = (*Backend)(nil)

// NewBackend creates an SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin implements recording.Backend.
func (b *Backend) Begin(width, height int, background string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid size %dx%d", width, height)
	}
	b.buf.Reset()
	b.depth = 0
	b.done = false
	b.canvas = svgo.New(&b.buf)
	b.canvas.Start(width, height)
	if background != "" {
		b.canvas.Rect(0, 0, width, height, "fill:"+background+";stroke:none")
	}
	return nil
}

// End implements recording.Backend.
func (b *Backend) End() error {
	if b.canvas == nil {
		return fmt.Errorf("svg: End called before Begin")
	}
	for b.depth > 0 {
		recording.Logger().Warn("svg: closing unbalanced node")
		b.EndNode()
	}
	b.canvas.End()
	b.done = true
	return nil
}

// WriteTo implements recording.WriterBackend.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, fmt.Errorf("svg: WriteTo called before End")
	}
	return bytes.NewReader(b.buf.Bytes()).WriteTo(w)
}

// Bytes returns the document written so far.
func (b *Backend) Bytes() []byte { return b.buf.Bytes() }

// DefineGradient implements recording.Backend.
func (b *Backend) DefineGradient(key canvas.GradientKey, def canvas.GradientDef) {
	def = def.Normalize()
	var x2, y2 uint8
	if def.Direction == geom.DirectionEast {
		x2 = 100
	} else {
		y2 = 100
	}
	b.canvas.Def()
	b.canvas.LinearGradient(string(key), 0, 0, x2, y2, []svgo.Offcolor{
		{Offset: 0, Color: def.Start, Opacity: def.StartAlpha},
		{Offset: 100, Color: def.End, Opacity: def.EndAlpha},
	})
	b.canvas.DefEnd()
}

// BeginNode implements recording.Backend.
func (b *Backend) BeginNode(offset geom.Point) {
	b.depth++
	if offset.X == 0 && offset.Y == 0 {
		b.canvas.Group()
		return
	}
	b.canvas.Gtransform("translate(" + num(offset.X) + "," + num(offset.Y) + ")")
}

// EndNode implements recording.Backend.
func (b *Backend) EndNode() {
	if b.depth == 0 {
		return
	}
	b.depth--
	b.canvas.Gend()
}

// FillPath implements recording.Backend.
func (b *Backend) FillPath(path *geom.Path, paint recording.Paint, rule recording.FillRule) {
	d := pathData(path)
	if d == "" {
		return
	}
	var sb strings.Builder
	if paint.IsGradient() {
		sb.WriteString("fill:url(#" + string(paint.Gradient) + ")")
	} else {
		sb.WriteString("fill:" + paint.Color)
	}
	if paint.Alpha < 1 {
		sb.WriteString(";fill-opacity:" + num(paint.Alpha))
	}
	if rule == recording.FillRuleEvenOdd {
		sb.WriteString(";fill-rule:evenodd")
	}
	sb.WriteString(";stroke:none")
	b.canvas.Path(d, sb.String())
}

// StrokePath implements recording.Backend.
func (b *Backend) StrokePath(path *geom.Path, paint recording.Paint, stroke recording.Stroke) {
	d := pathData(path)
	if d == "" {
		return
	}
	b.canvas.Path(d, strokeStyle(paint, stroke))
}

func strokeStyle(paint recording.Paint, stroke recording.Stroke) string {
	var sb strings.Builder
	sb.WriteString("fill:none;stroke:" + paint.Color)
	if paint.Alpha < 1 {
		sb.WriteString(";stroke-opacity:" + num(paint.Alpha))
	}
	sb.WriteString(";stroke-width:" + num(stroke.Width))
	switch stroke.Cap {
	case canvas.CapRound, canvas.CapSquare:
		sb.WriteString(";stroke-linecap:" + stroke.Cap)
	}
	switch stroke.Join {
	case canvas.JoinRound, canvas.JoinBevel:
		sb.WriteString(";stroke-linejoin:" + stroke.Join)
	default:
		if stroke.MiterLimit != 4 {
			sb.WriteString(";stroke-miterlimit:" + num(stroke.MiterLimit))
		}
	}
	if len(stroke.Dash) > 0 {
		parts := make([]string, len(stroke.Dash))
		for i, v := range stroke.Dash {
			parts[i] = num(v)
		}
		sb.WriteString(";stroke-dasharray:" + strings.Join(parts, " "))
	}
	return sb.String()
}

// DrawImage implements recording.Backend.
func (b *Backend) DrawImage(cmd recording.DrawImageCommand) {
	r := cmd.Dst
	transformed := !cmd.Transform.IsIdentity()
	if transformed {
		b.canvas.Gtransform(matrix(cmd.Transform))
	}
	t := "translate(" + num(r.X) + "," + num(r.Y) + ")"
	if cmd.FlipH || cmd.FlipV {
		sx, sy := 1.0, 1.0
		var dx, dy float64
		if cmd.FlipH {
			sx, dx = -1, -r.Width
		}
		if cmd.FlipV {
			sy, dy = -1, -r.Height
		}
		t += " scale(" + num(sx) + "," + num(sy) + ") translate(" + num(dx) + "," + num(dy) + ")"
	}
	b.canvas.Gtransform(t)

	attrs := []string{}
	if !cmd.Aspect {
		attrs = append(attrs, `preserveAspectRatio="none"`)
	}
	if cmd.Alpha < 1 {
		attrs = append(attrs, `opacity="`+num(cmd.Alpha)+`"`)
	}
	b.canvas.Image(0, 0, int(math.Round(r.Width)), int(math.Round(r.Height)), cmd.Src, attrs...)

	b.canvas.Gend()
	if transformed {
		b.canvas.Gend()
	}
}

// DrawText implements recording.Backend.
func (b *Backend) DrawText(cmd recording.DrawTextCommand) {
	if len(cmd.Lines) == 0 {
		return
	}
	transformed := !cmd.Transform.IsIdentity()
	if transformed {
		b.canvas.Gtransform(matrix(cmd.Transform))
	}

	if cmd.Background != "" || cmd.Border != "" {
		box := cmd.Box.Grow(1)
		fill, stroke := "none", "none"
		if cmd.Background != "" {
			fill = cmd.Background
		}
		if cmd.Border != "" {
			stroke = cmd.Border
		}
		b.canvas.Path(rectData(box), "fill:"+fill+";stroke:"+stroke)
	}

	st := textStyle(cmd)
	for _, line := range cmd.Lines {
		b.canvas.Gtransform("translate(" + num(line.X) + "," + num(line.Y) + ")")
		b.canvas.Text(0, 0, line.Text, st)
		b.canvas.Gend()
	}

	if transformed {
		b.canvas.Gend()
	}
}

func textStyle(cmd recording.DrawTextCommand) string {
	var sb strings.Builder
	sb.WriteString("fill:" + cmd.Color)
	if cmd.Alpha < 1 {
		sb.WriteString(";fill-opacity:" + num(cmd.Alpha))
	}
	sb.WriteString(";font-family:" + cmd.FontFamily)
	sb.WriteString(";font-size:" + num(cmd.FontSize) + "px")
	sb.WriteString(";text-anchor:" + cmd.Anchor)
	if cmd.FontStyle&style.FontBold != 0 {
		sb.WriteString(";font-weight:bold")
	}
	if cmd.FontStyle&style.FontItalic != 0 {
		sb.WriteString(";font-style:italic")
	}
	var deco []string
	if cmd.FontStyle&style.FontUnderline != 0 {
		deco = append(deco, "underline")
	}
	if cmd.FontStyle&style.FontStrikethrough != 0 {
		deco = append(deco, "line-through")
	}
	if len(deco) > 0 {
		sb.WriteString(";text-decoration:" + strings.Join(deco, " "))
	}
	if cmd.Direction == style.TextDirectionRTL {
		sb.WriteString(";direction:rtl")
	}
	return sb.String()
}

// pathData returns the SVG path data of p, or "" when p draws nothing.
func pathData(p *geom.Path) string {
	if p == nil || p.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	for _, s := range p.Segments() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch s.Verb {
		case geom.VerbMoveTo:
			sb.WriteString("M " + pt(s.Pts[0]))
		case geom.VerbLineTo:
			sb.WriteString("L " + pt(s.Pts[0]))
		case geom.VerbQuadTo:
			sb.WriteString("Q " + pt(s.Pts[0]) + " " + pt(s.Pts[1]))
		case geom.VerbCubicTo:
			sb.WriteString("C " + pt(s.Pts[0]) + " " + pt(s.Pts[1]) + " " + pt(s.Pts[2]))
		case geom.VerbClose:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func rectData(r geom.Rect) string {
	return "M " + num(r.X) + " " + num(r.Y) +
		" L " + num(r.Right()) + " " + num(r.Y) +
		" L " + num(r.Right()) + " " + num(r.Bottom()) +
		" L " + num(r.X) + " " + num(r.Bottom()) + " Z"
}

func matrix(m geom.Matrix) string {
	return "matrix(" + num(m.A) + "," + num(m.D) + "," + num(m.B) + "," + num(m.E) + "," + num(m.C) + "," + num(m.F) + ")"
}

func pt(p geom.Point) string { return num(p.X) + " " + num(p.Y) }

// num formats v with at most two decimals.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drops the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
