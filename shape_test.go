package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/recording"
	"github.com/gogpu/shape/style"
)

func newTestDoc() *recording.Document {
	return recording.NewDocument(400, 300)
}

func attach(t *testing.T, doc *recording.Document, s Shape) {
	t.Helper()
	require.NoError(t, s.Init(doc, doc.Root()))
}

// countCommands returns the number of fill and stroke commands.
func countCommands(cmds []recording.Command) (fills, strokes int) {
	for _, c := range cmds {
		switch c.(type) {
		case recording.FillPathCommand:
			fills++
		case recording.StrokePathCommand:
			strokes++
		}
	}
	return fills, strokes
}

// fillOnly is a custom shape that fills a rectangle and never strokes.
type fillOnly struct {
	Base
}

func newFillOnly(opts ...Option) *fillOnly {
	f := &fillOnly{}
	Setup(f, opts...)
	return f
}

func (f *fillOnly) PaintVertexShape(c canvas.Canvas, x, y, w, h float64) {
	c.Rect(x, y, w, h)
	c.Fill()
}

func TestRedrawPaintsVisibleShape(t *testing.T) {
	doc := newTestDoc()
	r := NewRectangle(
		WithBounds(geom.NewRect(10, 10, 100, 50)),
		WithFill("#dae8fc"),
		WithStroke("#6c8ebf"),
	)
	attach(t, doc, r)

	assert.False(t, doc.Visible(r.Node()), "node hidden until first redraw")

	r.Redraw()
	assert.True(t, doc.Visible(r.Node()))
	fills, strokes := countCommands(doc.Commands(r.Node()))
	assert.Equal(t, 1, fills)
	assert.Equal(t, 1, strokes)

	r.Redraw()
	fills, strokes = countCommands(doc.Commands(r.Node()))
	assert.Equal(t, 1, fills, "redraw replaces the previous commands")
	assert.Equal(t, 1, strokes)
}

func TestRedrawInvalidBoundsHidesShape(t *testing.T) {
	tests := []struct {
		name   string
		bounds geom.Rect
		scale  float64
	}{
		{"negative width", geom.NewRect(0, 0, -1, 10), 1},
		{"zero height", geom.NewRect(0, 0, 10, 0), 1},
		{"zero scale", geom.NewRect(0, 0, 10, 10), 0},
		{"negative scale", geom.NewRect(0, 0, 10, 10), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := newTestDoc()
			r := NewRectangle(WithBounds(tt.bounds), WithScale(tt.scale), WithStroke("#000000"))
			attach(t, doc, r)

			r.Redraw()

			_, ok := r.BoundingBox()
			assert.False(t, ok)
			assert.Empty(t, doc.Commands(r.Node()))
			assert.False(t, doc.Visible(r.Node()))
		})
	}
}

func TestRedrawHiddenShape(t *testing.T) {
	doc := newTestDoc()
	r := NewRectangle(WithBounds(geom.NewRect(0, 0, 10, 10)), WithStroke("#000000"))
	attach(t, doc, r)
	r.Redraw()
	require.True(t, doc.Visible(r.Node()))

	r.Visible = false
	r.Redraw()
	assert.False(t, doc.Visible(r.Node()))
	_, ok := r.BoundingBox()
	assert.False(t, ok)
}

func TestRedrawBeforeInit(t *testing.T) {
	r := NewRectangle(WithBounds(geom.NewRect(0, 0, 10, 10)))
	assert.NotPanics(t, r.Redraw)
	_, ok := r.BoundingBox()
	assert.False(t, ok)
}

func TestScreenOffset(t *testing.T) {
	tests := []struct {
		sw, scale float64
		want      float64
	}{
		{1, 1, 0.5},
		{3, 1, 0.5},
		{4, 1, 0},
		{2, 1, 0},
		{0.2, 1, 0.5},
		{2, 1.5, 0.5},
		{1, 2, 0},
	}
	for _, tt := range tests {
		r := NewRectangle(WithStrokeWidth(tt.sw), WithScale(tt.scale))
		assert.Equal(t, tt.want, r.ScreenOffset(), "sw=%v scale=%v", tt.sw, tt.scale)
	}
}

func TestRedrawAppliesScreenOffset(t *testing.T) {
	doc := newTestDoc()
	r := NewRectangle(WithBounds(geom.NewRect(0, 0, 10, 10)), WithStrokeWidth(3), WithStroke("#000000"))
	attach(t, doc, r)
	r.Redraw()
	assert.Equal(t, geom.Pt(0.5, 0.5), doc.Offset(r.Node()))

	r.StrokeWidth = 4
	r.Redraw()
	assert.Equal(t, geom.Pt(0, 0), doc.Offset(r.Node()))

	im := NewImage("logo.png", WithBounds(geom.NewRect(0, 0, 10, 10)))
	attach(t, doc, im)
	im.Redraw()
	assert.Equal(t, geom.Pt(0, 0), doc.Offset(im.Node()))
}

func TestOutlineStrokesFallbackRectangle(t *testing.T) {
	doc := newTestDoc()
	f := newFillOnly(
		WithBounds(geom.NewRect(5, 5, 40, 20)),
		WithFill("#ff0000"),
		WithStroke("#000000"),
		WithOutline(true),
	)
	attach(t, doc, f)
	f.Redraw()

	fills, strokes := countCommands(doc.Commands(f.Node()))
	assert.Equal(t, 0, fills)
	assert.Equal(t, 1, strokes)
}

func TestOutlineNoFallbackWhenStroked(t *testing.T) {
	doc := newTestDoc()
	r := NewRectangle(
		WithBounds(geom.NewRect(5, 5, 40, 20)),
		WithFill("#ff0000"),
		WithStroke("#000000"),
		WithOutline(true),
	)
	attach(t, doc, r)
	r.Apply(style.Style{style.KeyFillColor: "#00ff00", style.KeyStrokeColor: "#000000", style.KeyGlass: 1})
	r.Redraw()

	cmds := doc.Commands(r.Node())
	fills, strokes := countCommands(cmds)
	assert.Equal(t, 0, fills, "outline mode never fills")
	assert.Equal(t, 1, strokes)
}

func TestGradientRefCounting(t *testing.T) {
	doc := newTestDoc()
	table := doc.Gradients()
	r := NewRectangle(WithBounds(geom.NewRect(0, 0, 50, 50)))
	attach(t, doc, r)
	r.Apply(style.Style{
		style.KeyFillColor:     "#ffffff",
		style.KeyGradientColor: "#0000ff",
	})

	for range 5 {
		r.Redraw()
	}
	require.Equal(t, 1, table.Len())
	key := table.Keys()[0]
	assert.Equal(t, 1, table.RefCount(key), "repeated redraws hold one reference")

	r.ResetStyles()
	r.Apply(style.Style{style.KeyFillColor: "#ffffff"})
	r.Redraw()
	assert.Equal(t, 0, table.Len(), "unused gradient is removed")
}

func TestGradientSharedBetweenShapes(t *testing.T) {
	doc := newTestDoc()
	table := doc.Gradients()
	st := style.Style{style.KeyFillColor: "#ffffff", style.KeyGradientColor: "#0000ff"}

	a := NewRectangle(WithBounds(geom.NewRect(0, 0, 50, 50)))
	b := NewEllipse(WithBounds(geom.NewRect(60, 0, 50, 50)))
	for _, s := range []Shape{a, b} {
		attach(t, doc, s)
		s.Apply(st)
		s.Redraw()
	}
	require.Equal(t, 1, table.Len())
	key := table.Keys()[0]
	assert.Equal(t, 2, table.RefCount(key))

	a.Destroy()
	assert.Equal(t, 1, table.RefCount(key))
	b.Destroy()
	assert.Equal(t, 0, table.Len())
}

func TestDestroy(t *testing.T) {
	doc := newTestDoc()
	r := NewRectangle(WithBounds(geom.NewRect(0, 0, 10, 10)), WithStroke("#000000"))
	attach(t, doc, r)
	r.Redraw()
	require.Equal(t, 2, doc.Len())

	r.Destroy()
	assert.Equal(t, 1, doc.Len())
	assert.Equal(t, canvas.NoNode, r.Node())
	_, ok := r.BoundingBox()
	assert.False(t, ok)

	assert.NotPanics(t, r.Destroy)
	assert.Error(t, r.Init(doc, doc.Root()))
}

func TestInitIsIdempotent(t *testing.T) {
	doc := newTestDoc()
	r := NewRectangle()
	attach(t, doc, r)
	n := r.Node()
	attach(t, doc, r)
	assert.Equal(t, n, r.Node())
	assert.Equal(t, 2, doc.Len())
}

func TestBoundingBox(t *testing.T) {
	tests := []struct {
		name  string
		style style.Style
		want  geom.Rect
	}{
		{
			name:  "plain",
			style: style.Style{},
			want:  geom.NewRect(9.5, 9.5, 101, 41),
		},
		{
			name:  "shadow",
			style: style.Style{style.KeyShadow: 1},
			want:  geom.NewRect(9.5, 9.5, 103, 44),
		},
		{
			name:  "thick stroke",
			style: style.Style{style.KeyStrokeWidth: 4},
			want:  geom.NewRect(8, 8, 104, 44),
		},
		{
			name:  "rotated",
			style: style.Style{style.KeyRotation: 90},
			want:  geom.NewRect(39.5, -20.5, 41, 101),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := newTestDoc()
			r := NewRectangle(WithBounds(geom.NewRect(10, 10, 100, 40)), WithSurfaceBoundingBox(false))
			attach(t, doc, r)
			r.Apply(tt.style)
			r.Redraw()

			bb, ok := r.BoundingBox()
			require.True(t, ok)
			assert.InDelta(t, tt.want.X, bb.X, 1e-9)
			assert.InDelta(t, tt.want.Y, bb.Y, 1e-9)
			assert.InDelta(t, tt.want.Width, bb.Width, 1e-9)
			assert.InDelta(t, tt.want.Height, bb.Height, 1e-9)
		})
	}
}

// countingSurface counts the bounding box queries made on a document.
type countingSurface struct {
	*recording.Document
	queries int
}

func (s *countingSurface) NodeBounds(n canvas.NodeRef) (geom.Rect, error) {
	s.queries++
	return s.Document.NodeBounds(n)
}

func TestBoundingBoxFromSurface(t *testing.T) {
	surface := &countingSurface{Document: newTestDoc()}
	r := NewRectangle(
		WithBounds(geom.NewRect(10, 10, 100, 50)),
		WithFill("#ffffff"),
		WithStroke("#000000"),
		WithStrokeWidth(2),
	)
	require.True(t, r.UseSurfaceBoundingBox)
	require.NoError(t, r.Init(surface, surface.Root()))
	r.Redraw()

	assert.Equal(t, 1, surface.queries)
	bb, ok := r.BoundingBox()
	require.True(t, ok)
	assert.InDelta(t, 9, bb.X, 1e-9)
	assert.InDelta(t, 9, bb.Y, 1e-9)
	assert.InDelta(t, 102, bb.Width, 1e-9)
	assert.InDelta(t, 52, bb.Height, 1e-9)
}

func TestBoundingBoxSurfaceFollowsPaint(t *testing.T) {
	doc := newTestDoc()
	e := NewEllipse(WithBounds(geom.NewRect(0, 0, 100, 40)))
	attach(t, doc, e)
	e.Apply(style.Style{style.KeyFillColor: "#ffffff", style.KeyStrokeColor: "#000000", style.KeyRotation: 45})
	e.Redraw()
	exact, ok := e.BoundingBox()
	require.True(t, ok)

	e.UseSurfaceBoundingBox = false
	e.Redraw()
	estimate, ok := e.BoundingBox()
	require.True(t, ok)

	// A turned ellipse fits a smaller box than its turned bounds.
	assert.Less(t, exact.Width, estimate.Width)
	assert.Less(t, exact.Height, estimate.Height)
	assert.InDelta(t, exact.Center().X, estimate.Center().X, 0.5)
}

func TestBoundingBoxFallsBackWithoutPaint(t *testing.T) {
	surface := &countingSurface{Document: newTestDoc()}
	r := NewRectangle(WithBounds(geom.NewRect(10, 10, 100, 40)))
	require.NoError(t, r.Init(surface, surface.Root()))
	r.Redraw()

	assert.Equal(t, 1, surface.queries)
	bb, ok := r.BoundingBox()
	require.True(t, ok, "an empty node falls back to the bounds")
	assert.Equal(t, geom.NewRect(9.5, 9.5, 101, 41), bb)
}

func TestApplySwapsFlipsForVerticalDirections(t *testing.T) {
	tests := []struct {
		direction    string
		flipH, flipV bool
	}{
		{"east", true, false},
		{"west", true, false},
		{"north", false, true},
		{"south", false, true},
	}
	for _, tt := range tests {
		r := NewRectangle()
		r.Apply(style.Style{style.KeyDirection: tt.direction, style.KeyFlipH: 1})
		assert.Equal(t, tt.flipH, r.FlipH, tt.direction)
		assert.Equal(t, tt.flipV, r.FlipV, tt.direction)
	}
}

func TestApplyKeepsPrivateStyle(t *testing.T) {
	st := style.Style{style.KeyFillColor: "#ff0000"}
	r := NewRectangle()
	r.Apply(st)
	st[style.KeyFillColor] = "#00ff00"

	assert.Equal(t, "#ff0000", r.Style().String(style.KeyFillColor, ""))
	assert.Equal(t, "#ff0000", r.Fill)
}

func TestApplyNoneDisablesColours(t *testing.T) {
	r := NewRectangle(WithFill("#ffffff"), WithStroke("#000000"))
	r.Apply(style.Style{style.KeyFillColor: style.None, style.KeyStrokeColor: "none"})
	assert.Empty(t, r.Fill)
	assert.Empty(t, r.Stroke)
}

func TestResetStyles(t *testing.T) {
	r := NewRectangle()
	r.Apply(style.Style{
		style.KeyFillColor:   "#ffffff",
		style.KeyStrokeWidth: 5,
		style.KeyOpacity:     40,
		style.KeyDirection:   "south",
		style.KeyRounded:     true,
	})
	r.ResetStyles()

	assert.Empty(t, r.Fill)
	assert.Equal(t, 1.0, r.StrokeWidth)
	assert.Equal(t, 100.0, r.Opacity)
	assert.Equal(t, geom.DirectionEast, r.Direction)
	assert.False(t, r.IsRounded)
	assert.Nil(t, r.Style())
}

func TestShapeRotation(t *testing.T) {
	tests := []struct {
		direction string
		rotation  float64
		want      float64
	}{
		{"east", 0, 0},
		{"south", 0, 90},
		{"west", 0, 180},
		{"north", 0, 270},
		{"south", 30, 120},
	}
	for _, tt := range tests {
		r := NewRectangle()
		r.Apply(style.Style{style.KeyDirection: tt.direction, style.KeyRotation: tt.rotation})
		assert.Equal(t, tt.want, r.ShapeRotation(), "%s %v", tt.direction, tt.rotation)
	}

	p := NewPolyline()
	p.Apply(style.Style{style.KeyDirection: "south", style.KeyRotation: 45})
	assert.Equal(t, 0.0, p.ShapeRotation())
}

func TestTextRotation(t *testing.T) {
	r := NewRectangle()
	r.Apply(style.Style{style.KeyRotation: 10})
	assert.Equal(t, 10.0, r.TextRotation())

	r.Apply(style.Style{style.KeyRotation: 10, style.KeyHorizontal: 0})
	assert.Equal(t, -80.0, r.TextRotation())

	WithVerticalTextRotation(90)(&r.Base)
	assert.Equal(t, 100.0, r.TextRotation())

	WithVerticalTextRotation(0)(&r.Base)
	assert.Equal(t, 10.0, r.TextRotation(), "an explicit zero is kept")

	upright := NewRectangle(WithVerticalTextRotation(0))
	upright.Apply(style.Style{style.KeyHorizontal: 0})
	assert.Equal(t, 0.0, upright.TextRotation())
}

func TestInvertedPaintBounds(t *testing.T) {
	doc := newTestDoc()
	tri := NewTriangle(WithBounds(geom.NewRect(0, 0, 100, 40)), WithFill("#ffffff"))
	attach(t, doc, tri)
	tri.Apply(style.Style{style.KeyDirection: "south", style.KeyFillColor: "#ffffff"})
	require.True(t, tri.IsPaintBoundsInverted())
	tri.Redraw()

	cmds := doc.Commands(tri.Node())
	require.NotEmpty(t, cmds)
	b, ok := cmds[0].Bounds()
	require.True(t, ok)
	assert.InDelta(t, 0, b.X, 1e-9)
	assert.InDelta(t, 0, b.Y, 1e-9)
	assert.InDelta(t, 100, b.Width, 1e-9)
	assert.InDelta(t, 40, b.Height, 1e-9)

	bb, ok := tri.BoundingBox()
	require.True(t, ok)
	assert.InDelta(t, 101, bb.Width, 1e-9)
	assert.InDelta(t, 41, bb.Height, 1e-9)
}
