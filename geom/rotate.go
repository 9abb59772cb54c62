package geom

import "math"

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Mod returns n modulo m with the sign of m, so Mod(-1, 4) == 3.
func Mod(n, m float64) float64 {
	return math.Mod(math.Mod(n, m)+m, m)
}

// RotatePoint rotates p about c. The caller passes the cosine and sine of
// the angle so that several points can share one trigonometric evaluation.
func RotatePoint(p Point, cos, sin float64, c Point) Point {
	x := p.X - c.X
	y := p.Y - c.Y
	return Point{
		X: x*cos - y*sin + c.X,
		Y: y*cos + x*sin + c.Y,
	}
}

// RotatedBoundingBox returns the axis-aligned box enclosing r after
// rotating it by deg degrees about c, or about the center of r when c is
// nil. A zero angle returns r unchanged.
func RotatedBoundingBox(r Rect, deg float64, c *Point) Rect {
	if deg == 0 {
		return r
	}
	sin, cos := math.Sincos(ToRadians(deg))
	center := r.Center()
	if c != nil {
		center = *c
	}
	corners := [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
	for i, p := range corners {
		corners[i] = RotatePoint(p, cos, sin, center)
	}
	box, _ := RectFromPoints(corners[:])
	return box
}
