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

func TestBuiltinMarkers(t *testing.T) {
	assert.Subset(t, Markers(), []string{
		style.ArrowClassic, style.ArrowClassicThin, style.ArrowBlock, style.ArrowBlockThin,
		style.ArrowOpen, style.ArrowOpenThin, style.ArrowOval, style.ArrowDiamond, style.ArrowDiamondThin,
	})
}

func TestMarkerShortensLine(t *testing.T) {
	tests := []struct {
		kind string
		tipX float64
	}{
		{style.ArrowClassic, 110 - 7*0.75 - 1.118},
		{style.ArrowBlock, 110 - 7 - 1.118},
		{style.ArrowOpen, 110 - 2*1.118},
		{style.ArrowOval, 110 - 3},
		{style.ArrowDiamond, 110 - 7 - 0.7071},
		{style.ArrowDiamondThin, 110 - 7 - 0.9862},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			doc := newTestDoc()
			c := doc.NewCanvas(doc.Root())
			c.SetFillColor("#000000")
			c.SetStrokeColor("#000000")
			tip := geom.Pt(110, 10)
			paint := CreateMarker(c, nil, Marker{
				Kind:        tt.kind,
				Tip:         &tip,
				Unit:        geom.Pt(1, 0),
				Size:        style.DefaultMarkerSize,
				StrokeWidth: 1,
				Filled:      true,
			})
			require.NotNil(t, paint)
			assert.InDelta(t, tt.tipX, tip.X, 1e-9)
			assert.InDelta(t, 10, tip.Y, 1e-9)

			assert.Empty(t, doc.Commands(doc.Root()), "nothing is drawn before the paint function runs")
			paint()
			assert.NotEmpty(t, doc.Commands(doc.Root()))
		})
	}
}

func TestUnknownMarker(t *testing.T) {
	doc := newTestDoc()
	tip := geom.Pt(5, 5)
	paint := CreateMarker(doc.NewCanvas(doc.Root()), nil, Marker{Kind: "star", Tip: &tip, Unit: geom.Pt(1, 0)})
	assert.Nil(t, paint)
	assert.Equal(t, geom.Pt(5, 5), tip)
}

func TestRegisterMarker(t *testing.T) {
	const name = "test.dot"
	called := false
	RegisterMarker(name, func(c canvas.Canvas, _ Shape, m Marker) func() {
		return func() {
			called = true
			c.Ellipse(m.Tip.X-1, m.Tip.Y-1, 2, 2)
			c.Fill()
		}
	})
	t.Cleanup(func() {
		markerMu.Lock()
		delete(markers, name)
		markerMu.Unlock()
	})

	cn := NewConnector(WithPoints(geom.Pt(0, 0), geom.Pt(50, 0)))
	paintShape(t, cn, style.Style{style.KeyStrokeColor: "#000000", style.KeyEndArrow: name})
	assert.True(t, called)
}

func TestConnectorMarkers(t *testing.T) {
	cn := NewConnector(WithPoints(geom.Pt(10, 10), geom.Pt(110, 10)))
	_, cmds := paintShape(t, cn, style.Style{
		style.KeyStrokeColor: "#000000",
		style.KeyEndArrow:    style.ArrowClassic,
		style.KeyDashed:      1,
	})

	require.Len(t, cmds, 3)
	line, ok := cmds[0].(recording.StrokePathCommand)
	require.True(t, ok)
	b, ok := line.Bounds()
	require.True(t, ok)
	assert.InDelta(t, 110-5.25-1.118, b.Right(), 1e-9, "line stops at the marker")
	assert.NotEmpty(t, line.Stroke.Dash)

	fill, ok := cmds[1].(recording.FillPathCommand)
	require.True(t, ok)
	assert.Equal(t, "#000000", fill.Paint.Color, "markers are filled with the stroke colour")

	head, ok := cmds[2].(recording.StrokePathCommand)
	require.True(t, ok)
	assert.Empty(t, head.Stroke.Dash, "markers are never dashed")
}

func TestConnectorUnfilledMarker(t *testing.T) {
	cn := NewConnector(WithPoints(geom.Pt(10, 10), geom.Pt(110, 10)))
	_, cmds := paintShape(t, cn, style.Style{
		style.KeyStrokeColor: "#000000",
		style.KeyStartArrow:  style.ArrowBlock,
		style.KeyStartFill:   0,
	})
	fills, strokes := countCommands(cmds)
	assert.Equal(t, 0, fills)
	assert.Equal(t, 2, strokes)
}

func TestConnectorSkipsCoincidentPoints(t *testing.T) {
	cn := NewConnector(WithPoints(geom.Pt(0, 0), geom.Pt(0, 50), geom.Pt(0, 50)))
	_, cmds := paintShape(t, cn, style.Style{
		style.KeyStrokeColor: "#000000",
		style.KeyEndArrow:    style.ArrowClassic,
	})
	require.Len(t, cmds, 3)
	head, ok := cmds[1].(recording.FillPathCommand)
	require.True(t, ok)
	b, ok := head.Bounds()
	require.True(t, ok)
	// The head points down the last segment of non-zero length.
	assert.InDelta(t, 7, b.Width, 1e-9)
	assert.InDelta(t, 7, b.Height, 1e-9)
	assert.InDelta(t, 50-1.118, b.Bottom(), 1e-9)
}

func TestConnectorBoundingBox(t *testing.T) {
	cn := NewConnector(WithPoints(geom.Pt(10, 10), geom.Pt(110, 10)))
	paintShape(t, cn, style.Style{
		style.KeyStrokeColor: "#000000",
		style.KeyEndArrow:    style.ArrowClassic,
		style.KeyEndSize:     10,
	})

	bb, ok := cn.BoundingBox()
	require.True(t, ok)
	assert.InDelta(t, 10-0.5-11, bb.X, 1e-9)
	assert.InDelta(t, 101+1+22, bb.Width, 1e-9)
	assert.False(t, cn.UseSurfaceBoundingBox)
}

func TestCurvedConnectorUsesSurfaceBounds(t *testing.T) {
	cn := NewConnector(WithPoints(geom.Pt(0, 0), geom.Pt(50, 50), geom.Pt(100, 0)))
	paintShape(t, cn, style.Style{style.KeyStrokeColor: "#000000", style.KeyCurved: 1})

	assert.True(t, cn.UseSurfaceBoundingBox)
	bb, ok := cn.BoundingBox()
	require.True(t, ok)
	assert.InDelta(t, -0.5, bb.X, 1e-9)
	assert.InDelta(t, 101, bb.Width, 1e-9)
	assert.Less(t, bb.Height, 51.0, "curve stays inside its control polygon")
}
