package scene

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/recording"
	"github.com/gogpu/shape/style"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithScale sets the scale applied to every shape. The document should be
// sized for the scaled diagram.
func WithScale(s float64) Option {
	return func(r *Renderer) {
		r.scale = s
	}
}

// WithOutline paints every shape in outline mode.
func WithOutline(outline bool) Option {
	return func(r *Renderer) {
		r.outline = outline
	}
}

// view is the shape and label painted for one cell.
type view struct {
	name  string
	shape shape.Shape
	label *shape.Text
}

func (v *view) destroy() {
	if v.label != nil {
		v.label.Destroy()
		v.label = nil
	}
	v.shape.Destroy()
}

// Renderer paints a diagram into a recording.Document and keeps the
// shapes in step with later versions of the diagram.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	doc     *recording.Document
	sheet   *style.Stylesheet
	scale   float64
	outline bool
	views   map[string]*view
}

// NewRenderer returns a renderer drawing into doc. A nil stylesheet
// selects the stock one.
func NewRenderer(doc *recording.Document, sheet *style.Stylesheet, opts ...Option) *Renderer {
	if sheet == nil {
		sheet = style.NewStylesheet()
	}
	r := &Renderer{
		doc:   doc,
		sheet: sheet,
		scale: 1,
		views: make(map[string]*view),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetStylesheet replaces the stylesheet used by the next Sync.
func (r *Renderer) SetStylesheet(sheet *style.Stylesheet) {
	if sheet == nil {
		sheet = style.NewStylesheet()
	}
	r.sheet = sheet
}

// Document returns the document the renderer draws into.
func (r *Renderer) Document() *recording.Document { return r.doc }

// Sync repaints every cell of d. Shapes are created for new cells and
// recreated when a cell's shape name changes; the shapes of cells missing
// from d are destroyed. Cells are painted in order, so later cells lie on
// top of the cells created before them.
func (r *Renderer) Sync(d *Diagram) error {
	if err := d.Validate(); err != nil {
		return err
	}
	live := make(map[string]bool, len(d.Cells))
	for i := range d.Cells {
		c := &d.Cells[i]
		live[c.ID] = true
		if err := r.syncCell(d, c); err != nil {
			return err
		}
	}

	removed := 0
	for id, v := range r.views {
		if !live[id] {
			v.destroy()
			delete(r.views, id)
			removed++
		}
	}
	shape.Logger().Debug("scene: synced", "cells", len(d.Cells), "removed", removed)
	return nil
}

func (r *Renderer) syncCell(d *Diagram, c *Cell) error {
	edge := c.IsEdge()
	st := r.sheet.Resolve(c.Style, edge)

	name := c.Shape
	if name == "" {
		def := shape.NameRectangle
		if edge {
			def = shape.NameConnector
		}
		name = st.String(style.KeyShape, def)
	}

	v := r.views[c.ID]
	if v != nil && v.name != name {
		v.destroy()
		v = nil
	}
	if v == nil {
		s, err := shape.New(name)
		if err != nil {
			return fmt.Errorf("scene: cell %q: %w", c.ID, err)
		}
		if err := s.Init(r.doc, r.doc.Root()); err != nil {
			return fmt.Errorf("scene: cell %q: %w", c.ID, err)
		}
		v = &view{name: name, shape: s}
		r.views[c.ID] = v
	}

	s := v.shape
	b := s.AsBase()
	s.ResetStyles()
	b.Scale = r.scale
	b.Outline = r.outline
	s.Apply(st)

	var box geom.Rect
	if edge {
		pts := r.edgePoints(d, c, st)
		for i := range pts {
			pts[i] = pts[i].Mul(r.scale)
		}
		b.SetPoints(pts)
		b.Visible = len(pts) >= 2
		if b.Visible {
			mid := midpoint(pts)
			box = geom.NewRect(mid.X, mid.Y, 0, 0)
		}
	} else {
		b.SetPoints(nil)
		box = scaleRect(d.AbsoluteBounds(c), r.scale)
		b.SetBounds(box)
		b.Visible = true
	}
	s.Redraw()

	r.syncLabel(v, c, st, box)
	return nil
}

func (r *Renderer) syncLabel(v *view, c *Cell, st style.Style, box geom.Rect) {
	if strings.TrimSpace(c.Value) == "" || !v.shape.AsBase().Visible {
		if v.label != nil {
			v.label.Destroy()
			v.label = nil
		}
		return
	}
	if v.label == nil {
		t := shape.NewText("")
		if err := t.Init(r.doc, r.doc.Root()); err != nil {
			shape.Logger().Warn("scene: label init failed", "cell", c.ID, "err", err)
			return
		}
		v.label = t
	}

	t := v.label
	t.Value = c.Value
	t.Owner = v.shape
	t.ResetStyles()
	t.Scale = r.scale
	t.Outline = r.outline
	t.Apply(st)
	t.Place(box)
	t.Redraw()
}

// edgePoints returns the points of an edge in diagram coordinates. The
// ends attached to a terminal are moved onto the terminal's outline, or
// onto the middle of a side when a port constraint names a single side.
func (r *Renderer) edgePoints(d *Diagram, c *Cell, edgeStyle style.Style) []geom.Point {
	o := d.Origin(c)
	pts := make([]geom.Point, 0, len(c.Points)+2)
	for _, p := range c.Points {
		pts = append(pts, geom.Pt(p.X+o.X, p.Y+o.Y))
	}

	src := r.terminal(d, c.Source)
	dst := r.terminal(d, c.Target)

	if src != nil {
		toward, ok := firstOf(pts)
		if !ok && dst != nil {
			toward = d.AbsoluteBounds(dst).Center()
		}
		pts = slices.Insert(pts, 0, r.terminalPoint(d, src, edgeStyle, true, toward))
	}
	if dst != nil {
		toward, ok := lastOf(pts)
		if !ok {
			toward = d.AbsoluteBounds(dst).Center()
		}
		pts = append(pts, r.terminalPoint(d, dst, edgeStyle, false, toward))
	}
	return pts
}

// terminal returns the vertex named by id, or nil.
func (r *Renderer) terminal(d *Diagram, id string) *Cell {
	if id == "" {
		return nil
	}
	c, ok := d.Cell(id)
	if !ok || c.IsEdge() {
		return nil
	}
	return c
}

func (r *Renderer) terminalPoint(d *Diagram, term *Cell, edgeStyle style.Style, source bool, toward geom.Point) geom.Point {
	rect := d.AbsoluteBounds(term)
	center := rect.Center()

	ts := r.sheet.Resolve(term.Style, false)
	switch style.PortConstraints(ts, edgeStyle, source, geom.MaskAll) {
	case geom.MaskNorth:
		return geom.Pt(center.X, rect.Y)
	case geom.MaskSouth:
		return geom.Pt(center.X, rect.Bottom())
	case geom.MaskWest:
		return geom.Pt(rect.X, center.Y)
	case geom.MaskEast:
		return geom.Pt(rect.Right(), center.Y)
	}

	outline := []geom.Point{
		{X: rect.X, Y: rect.Y},
		{X: rect.Right(), Y: rect.Y},
		{X: rect.Right(), Y: rect.Bottom()},
		{X: rect.X, Y: rect.Bottom()},
		{X: rect.X, Y: rect.Y},
	}
	if p, ok := geom.PerimeterPoint(outline, center, toward); ok {
		return p
	}
	return center
}

// Shape returns the shape painted for the cell with the given id.
func (r *Renderer) Shape(id string) (shape.Shape, bool) {
	v, ok := r.views[id]
	if !ok {
		return nil, false
	}
	return v.shape, true
}

// Label returns the label of the cell with the given id.
func (r *Renderer) Label(id string) (*shape.Text, bool) {
	v, ok := r.views[id]
	if !ok || v.label == nil {
		return nil, false
	}
	return v.label, true
}

// Len returns the number of cells with a shape.
func (r *Renderer) Len() int { return len(r.views) }

// Bounds returns the union of the bounding boxes of all painted shapes
// and labels.
func (r *Renderer) Bounds() (geom.Rect, bool) {
	var (
		out   geom.Rect
		found bool
	)
	add := func(s shape.Shape) {
		bb, ok := s.AsBase().BoundingBox()
		if !ok {
			return
		}
		if found {
			out = out.Add(bb)
		} else {
			out, found = bb, true
		}
	}
	for _, v := range r.views {
		add(v.shape)
		if v.label != nil {
			add(v.label)
		}
	}
	return out, found
}

// Close destroys every shape.
func (r *Renderer) Close() {
	for id, v := range r.views {
		v.destroy()
		delete(r.views, id)
	}
}

func firstOf(pts []geom.Point) (geom.Point, bool) {
	if len(pts) == 0 {
		return geom.Point{}, false
	}
	return pts[0], true
}

func lastOf(pts []geom.Point) (geom.Point, bool) {
	if len(pts) == 0 {
		return geom.Point{}, false
	}
	return pts[len(pts)-1], true
}

// midpoint returns the point halfway along the polyline pts.
func midpoint(pts []geom.Point) geom.Point {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Distance(pts[i])
	}
	half := total / 2
	for i := 1; i < len(pts); i++ {
		seg := pts[i-1].Distance(pts[i])
		if seg > 0 && half <= seg {
			return pts[i-1].Lerp(pts[i], half/seg)
		}
		half -= seg
	}
	return pts[len(pts)-1]
}

func scaleRect(r geom.Rect, s float64) geom.Rect {
	return geom.NewRect(r.X*s, r.Y*s, r.Width*s, r.Height*s)
}
