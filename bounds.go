package shape

import (
	"math"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

// defaultVerticalTextRotation is the text rotation added for vertical
// labels when none is configured.
// TODO: confirm -90 with the diagram owners before changing the default.
const defaultVerticalTextRotation = -90

// ScreenOffset implements Shape. It returns 0.5 when the scaled stroke
// width rounds to an odd number of pixels, which centres one-pixel
// strokes on pixel rows, and 0 otherwise.
func (b *Base) ScreenOffset() float64 {
	sw := math.Max(1, geom.Round(b.StrokeWidth*b.Scale))
	if geom.Mod(sw, 2) == 1 {
		return 0.5
	}
	return 0
}

// Rotation implements Shape.
func (b *Base) Rotation() float64 {
	return b.Angle
}

// ShapeRotation implements Shape. The direction adds 270, 180 or 90
// degrees for north, west and south.
func (b *Base) ShapeRotation() float64 {
	return b.This.Rotation() + b.Direction.Rotation()
}

// TextRotation implements Shape. Labels of shapes that are not horizontal
// are turned by VerticalTextRotation on top of the shape's rotation.
func (b *Base) TextRotation() float64 {
	rot := b.This.Rotation()
	if !b.style.Bool(style.KeyHorizontal, true) {
		v := float64(defaultVerticalTextRotation)
		if b.VerticalTextRotation != nil {
			v = *b.VerticalTextRotation
		}
		rot += v
	}
	return rot
}

// IsPaintBoundsInverted implements Shape. North and south shapes are
// painted east-facing in swapped bounds and turned into place.
func (b *Base) IsPaintBoundsInverted() bool {
	return b.Direction.IsVertical()
}

// IsRoundable implements Shape.
func (b *Base) IsRoundable(canvas.Canvas, float64, float64, float64, float64) bool {
	return false
}

// UpdateBoundingBox implements Shape. With UseSurfaceBoundingBox the exact
// extent reported by the surface is used when the surface can answer and
// the extent is not empty; otherwise the box is computed from the bounds.
func (b *Base) UpdateBoundingBox() {
	if b.UseSurfaceBoundingBox {
		if r, ok := b.surfaceBounds(); ok {
			b.setBoundingBox(r.Grow(b.StrokeWidth*b.Scale/2), true)
			return
		}
	}

	bbox, ok := b.This.CreateBoundingBox()
	if ok {
		bbox = b.This.AugmentBoundingBox(bbox)
		if rot := b.This.ShapeRotation(); rot != 0 {
			bbox = geom.RotatedBoundingBox(bbox, rot, nil)
		}
	}
	b.setBoundingBox(bbox, ok)
}

// surfaceBounds queries the surface for the extent of the shape's node.
// Failures are logged and reported as false.
func (b *Base) surfaceBounds() (geom.Rect, bool) {
	q, ok := b.surface.(canvas.BoundsQuerier)
	if !ok || b.node == canvas.NoNode {
		return geom.Rect{}, false
	}
	r, err := q.NodeBounds(b.node)
	if err != nil {
		Logger().Warn("shape: bounding box query failed", "node", b.node, "err", err)
		return geom.Rect{}, false
	}
	if r.Width <= 0 || r.Height <= 0 {
		Logger().Debug("shape: empty surface bounds", "node", b.node)
		return geom.Rect{}, false
	}
	return r, true
}

// CreateBoundingBox implements Shape. It returns the bounds, turned by 90
// degrees about their centre when the paint bounds are inverted.
func (b *Base) CreateBoundingBox() (geom.Rect, bool) {
	if !b.hasBounds {
		return geom.Rect{}, false
	}
	bb := b.bounds
	if b.This.IsPaintBoundsInverted() {
		bb = bb.Rotate90()
	}
	return bb, true
}

// AugmentBoundingBox implements Shape. It adds the shadow offset and half
// the stroke width.
func (b *Base) AugmentBoundingBox(bbox geom.Rect) geom.Rect {
	if b.IsShadow {
		bbox.Width += math.Ceil(style.ShadowOffsetX * b.Scale)
		bbox.Height += math.Ceil(style.ShadowOffsetY * b.Scale)
	}
	return bbox.Grow(b.StrokeWidth * b.Scale / 2)
}

// LabelMargins implements Shape. Base has no margins.
func (b *Base) LabelMargins(geom.Rect) (geom.Rect, bool) {
	return geom.Rect{}, false
}

// LabelBounds implements Shape. It shrinks rect by the shape's label
// margins, which are given for an east-facing, unflipped shape and are
// turned and mirrored to match the shape.
func (b *Base) LabelBounds(rect geom.Rect) geom.Rect {
	m, ok := b.This.LabelMargins(rect)
	if !ok {
		return rect
	}
	flipH, flipV := b.FlipH, b.FlipV
	if b.Direction.IsVertical() {
		flipH, flipV = flipV, flipH
	}
	return geom.DirectedBounds(rect, m, b.Direction, flipH, flipV)
}
