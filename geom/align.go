package geom

import "math"

// Horizontal and vertical alignment names.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
	AlignTop    = "top"
	AlignMiddle = "middle"
	AlignBottom = "bottom"
)

// AlignmentAsPoint returns the fraction of a box's size by which it must be
// moved so that the anchor point lands on the requested alignment: X is 0
// for left, -0.5 for center and -1 for right, Y likewise for top, middle
// and bottom. Unknown names count as center and middle.
func AlignmentAsPoint(align, valign string) Point {
	p := Point{X: -0.5, Y: -0.5}
	switch align {
	case AlignLeft:
		p.X = 0
	case AlignRight:
		p.X = -1
	}
	switch valign {
	case AlignTop:
		p.Y = 0
	case AlignBottom:
		p.Y = -1
	}
	return p
}

// roundHalfUp rounds like JavaScript's Math.round: halves go toward
// positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Round rounds v half up. Shape code uses it wherever pixel snapping must
// agree for positive and negative halves.
func Round(v float64) float64 {
	return roundHalfUp(v)
}
