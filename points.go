package shape

import (
	"math"
	"slices"

	"github.com/gogpu/shape/geom"
)

// PathBuilder receives the path calls of AddPoints. canvas.Canvas
// satisfies it.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(x1, y1, x2, y2 float64)
	Close()
}

// AddPoints adds the polyline through pts to c.
//
// With rounded set, every interior corner whose index-1 is not listed in
// exclude is replaced by a quadratic fillet that starts and ends
// min(arcSize, half the segment length) away from the corner. Points
// coinciding with the corner are skipped when looking for the outgoing
// segment. A closed rounded path starts at a virtual point halfway
// between the last and first points so the seam is rounded like every
// other corner. The path starts with MoveTo, or LineTo when initialMove
// is false, and ends with Close or a line to the last point.
func AddPoints(c PathBuilder, pts []geom.Point, rounded bool, arcSize float64, closed bool, exclude []int, initialMove bool) {
	if len(pts) == 0 {
		return
	}
	pe := pts[len(pts)-1]

	if closed && rounded {
		p0 := pts[0]
		wp := geom.Pt(pe.X+(p0.X-pe.X)/2, pe.Y+(p0.Y-pe.Y)/2)
		pts = append([]geom.Point{wp}, pts...)
	}

	pt := pts[0]
	if initialMove {
		c.MoveTo(pt.X, pt.Y)
	} else {
		c.LineTo(pt.X, pt.Y)
	}

	n := len(pts)
	last := n - 1
	if closed {
		last = n
	}
	for i := 1; i < last; i++ {
		tmp := pts[i%n]
		dx := pt.X - tmp.X
		dy := pt.Y - tmp.Y

		if rounded && (dx != 0 || dy != 0) && !slices.Contains(exclude, i-1) {
			dist := math.Sqrt(dx*dx + dy*dy)
			d := math.Min(arcSize, dist/2)
			x1 := tmp.X + dx*d/dist
			y1 := tmp.Y + dy*d/dist
			c.LineTo(x1, y1)

			next := pts[(i+1)%n]
			for i < n-2 && geom.Round(next.X-tmp.X) == 0 && geom.Round(next.Y-tmp.Y) == 0 {
				next = pts[(i+2)%n]
				i++
			}

			dx = next.X - tmp.X
			dy = next.Y - tmp.Y
			dist = math.Max(1, math.Sqrt(dx*dx+dy*dy))
			d = math.Min(arcSize, dist/2)
			x2 := tmp.X + dx*d/dist
			y2 := tmp.Y + dy*d/dist

			c.QuadTo(tmp.X, tmp.Y, x2, y2)
			tmp = geom.Pt(x2, y2)
		} else {
			c.LineTo(tmp.X, tmp.Y)
		}
		pt = tmp
	}

	if closed {
		c.Close()
	} else {
		c.LineTo(pe.X, pe.Y)
	}
}
