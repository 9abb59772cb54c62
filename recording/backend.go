package recording

import (
	"image"
	"io"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
)

// Backend is the interface that all output backends must implement.
// Backends receive the commands of a Document and translate them to
// their output format (raster pixels, SVG elements, etc.).
//
// Backends that write files register a Format in their init functions;
// see RegisterFormat.
//
// # Implementation Contract
//
// Playback calls the methods in this order:
//  1. Begin with the document size
//  2. DefineGradient once for every gradient in the document
//  3. BeginNode and EndNode around the commands of each visible node,
//     nested the way the nodes are nested
//  4. End
type Backend interface {
	// Begin initializes the backend for rendering at the given dimensions.
	// background is a colour string or empty for a transparent page.
	Begin(width, height int, background string) error

	// End finalizes the rendering and prepares the output.
	End() error

	// DefineGradient declares a gradient that paints may refer to by key.
	DefineGradient(key canvas.GradientKey, def canvas.GradientDef)

	// BeginNode opens a node translated by offset. Nodes nest.
	BeginNode(offset geom.Point)

	// EndNode closes the most recently opened node.
	EndNode()

	// FillPath fills the given path with the paint.
	FillPath(path *geom.Path, paint Paint, rule FillRule)

	// StrokePath strokes the given path with the paint and stroke style.
	StrokePath(path *geom.Path, paint Paint, stroke Stroke)

	// DrawImage draws an image.
	DrawImage(cmd DrawImageCommand)

	// DrawText draws lines of text.
	DrawText(cmd DrawTextCommand)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// ImageBackend extends Backend with access to rasterized pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before End().
	Image() *image.RGBA
}
