package recording

import (
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
)

// mockBackend records the calls it receives as strings.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	width      int
	height     int
	background string
	events     []string
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int, background string) error {
	b.beginCalls++
	b.width = width
	b.height = height
	b.background = background
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) DefineGradient(key canvas.GradientKey, _ canvas.GradientDef) {
	b.events = append(b.events, "gradient "+string(key))
}

func (b *mockBackend) BeginNode(offset geom.Point) {
	b.events = append(b.events, fmt.Sprintf("begin %g,%g", offset.X, offset.Y))
}

func (b *mockBackend) EndNode() { b.events = append(b.events, "end") }

func (b *mockBackend) FillPath(_ *geom.Path, p Paint, _ FillRule) {
	b.events = append(b.events, "fill "+p.Color+string(p.Gradient))
}

func (b *mockBackend) StrokePath(_ *geom.Path, p Paint, _ Stroke) {
	b.events = append(b.events, "stroke "+p.Color)
}

func (b *mockBackend) DrawImage(cmd DrawImageCommand) {
	b.events = append(b.events, "image "+cmd.Src)
}

func (b *mockBackend) DrawText(cmd DrawTextCommand) {
	b.events = append(b.events, fmt.Sprintf("text %d", len(cmd.Lines)))
}

// WriteTo writes one event per line.
func (b *mockBackend) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, strings.Join(b.events, "\n"))
	return int64(n), err
}
