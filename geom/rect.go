package geom

import "math"

// Rect is an axis-aligned rectangle. Width and Height may be negative or
// NaN; callers that paint a rectangle check Valid first.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect returns the rectangle at (x, y) with the given size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// RectFromPoints returns the smallest rectangle containing all points.
// The second result is false when pts is empty.
func RectFromPoints(pts []Point) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// Right returns X+Width.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns Y+Height.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Add returns the union of r and o.
func (r Rect) Add(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.Right(), o.Right())
	maxY := math.Max(r.Bottom(), o.Bottom())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Grow returns r expanded by amount on every side.
func (r Rect) Grow(amount float64) Rect {
	return Rect{
		X:      r.X - amount,
		Y:      r.Y - amount,
		Width:  r.Width + 2*amount,
		Height: r.Height + 2*amount,
	}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Rotate90 swaps width and height around the center of r.
func (r Rect) Rotate90() Rect {
	t := (r.Width - r.Height) / 2
	return Rect{X: r.X + t, Y: r.Y - t, Width: r.Height, Height: r.Width}
}

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Valid reports whether all fields are finite and the size is positive.
func (r Rect) Valid() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.Width) && isFinite(r.Height) &&
		r.Width > 0 && r.Height > 0
}

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool {
	return !(r.Width > 0 && r.Height > 0)
}
