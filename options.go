package shape

import "github.com/gogpu/shape/geom"

// Option configures a shape during creation.
// Use functional options to give a shape its geometry and paint before
// the first Apply.
//
// Example:
//
//	// A rectangle with explicit geometry and colours
//	r := shape.NewRectangle(
//	    shape.WithBounds(geom.NewRect(10, 10, 120, 60)),
//	    shape.WithFill("#dae8fc"),
//	    shape.WithStroke("#6c8ebf"),
//	)
type Option func(*Base)

// WithBounds sets the bounds of a vertex shape in owner-scale units.
func WithBounds(r geom.Rect) Option {
	return func(b *Base) {
		b.SetBounds(r)
	}
}

// WithPoints sets the points of an edge shape. The bounds are derived
// from the points on every redraw.
func WithPoints(pts ...geom.Point) Option {
	return func(b *Base) {
		b.SetPoints(pts)
	}
}

// WithFill sets the fill colour. An empty string disables filling.
func WithFill(color string) Option {
	return func(b *Base) {
		b.Fill = color
	}
}

// WithStroke sets the stroke colour. An empty string disables stroking.
func WithStroke(color string) Option {
	return func(b *Base) {
		b.Stroke = color
	}
}

// WithStrokeWidth sets the unscaled stroke width.
func WithStrokeWidth(w float64) Option {
	return func(b *Base) {
		b.StrokeWidth = w
	}
}

// WithScale sets the scale the owner applies to the shape.
func WithScale(s float64) Option {
	return func(b *Base) {
		b.Scale = s
	}
}

// WithOutline puts the shape into outline mode, used for previews: only
// the outline is stroked and fills, gradients and text are suppressed.
func WithOutline(outline bool) Option {
	return func(b *Base) {
		b.Outline = outline
	}
}

// WithSurfaceBoundingBox chooses between the exact bounding box reported
// by the surface, the default, and the geometric estimate.
//
// Only surfaces implementing canvas.BoundsQuerier can answer; on other
// surfaces, and when the query fails, the geometric estimate is used.
func WithSurfaceBoundingBox(enabled bool) Option {
	return func(b *Base) {
		b.UseSurfaceBoundingBox = enabled
	}
}

// WithVerticalTextRotation sets the rotation added to the labels of shapes
// that are not horizontal. Without it -90 is used; zero keeps such labels
// upright.
func WithVerticalTextRotation(deg float64) Option {
	return func(b *Base) {
		b.VerticalTextRotation = &deg
	}
}
