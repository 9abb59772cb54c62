package geom

import "math"

// ArcToCurves converts the SVG elliptical arc from (x0, y0) to (x, y) into
// cubic Bezier segments. Each segment contributes six absolute values: the
// two control points followed by the segment end point. Radii that are too
// small for the chord are scaled up as SVG requires, and every segment
// spans at most 90 degrees of the ellipse.
//
// A zero radius, or an end point equal to the start point, yields nil; the
// caller then draws nothing or a straight line.
func ArcToCurves(x0, y0, rx, ry, angle float64, largeArc, sweep bool, x, y float64) []float64 {
	x -= x0
	y -= y0
	if rx == 0 || ry == 0 || (x == 0 && y == 0) {
		return nil
	}

	rx = math.Abs(rx)
	ry = math.Abs(ry)
	ctx := -x / 2
	cty := -y / 2
	spsi, cpsi := math.Sincos(ToRadians(angle))
	rxd := cpsi*ctx + spsi*cty
	ryd := -spsi*ctx + cpsi*cty
	rxdd := rxd * rxd
	rydd := ryd * ryd
	rx2 := rx * rx
	ry2 := ry * ry
	lambda := rxdd/rx2 + rydd/ry2

	var sds float64
	if lambda > 1 {
		rx *= math.Sqrt(lambda)
		ry *= math.Sqrt(lambda)
	} else {
		seif := 1.0
		if largeArc == sweep {
			seif = -1
		}
		num := rx2*ry2 - rx2*rydd - ry2*rxdd
		sds = seif * math.Sqrt(math.Max(0, num)/(rx2*rydd+ry2*rxdd))
	}

	txd := sds * rx * ryd / ry
	tyd := -sds * ry * rxd / rx
	tx := cpsi*txd - spsi*tyd + x/2
	ty := spsi*txd + cpsi*tyd + y/2

	rad := math.Atan2((ryd-tyd)/ry, (rxd-txd)/rx)
	s1 := rad
	if rad < 0 {
		s1 = 2*math.Pi + rad
	}
	rad = math.Atan2((-ryd-tyd)/ry, (-rxd-txd)/rx) - math.Atan2((ryd-tyd)/ry, (rxd-txd)/rx)
	dr := rad
	if rad < 0 {
		dr = 2*math.Pi + rad
	}
	if !sweep && dr > 0 {
		dr -= 2 * math.Pi
	} else if sweep && dr < 0 {
		dr += 2 * math.Pi
	}

	// The epsilon keeps an exact quarter turn from rounding up to two segments.
	seg := int(math.Ceil(math.Abs(dr*2/math.Pi) - 1e-9))
	if seg == 0 {
		return nil
	}
	segr := dr / float64(seg)
	t := 8.0 / 3.0 * math.Sin(segr/4) * math.Sin(segr/4) / math.Sin(segr/2)

	cpsir1 := cpsi * rx
	cpsir2 := cpsi * ry
	spsir1 := spsi * rx
	spsir2 := spsi * ry

	ms, mc := math.Sincos(s1)
	x2 := -t * (cpsir1*ms + spsir2*mc)
	y2 := -t * (spsir1*ms - cpsir2*mc)

	result := make([]float64, 0, seg*6)
	for n := 0; n < seg; n++ {
		s1 += segr
		ms, mc = math.Sincos(s1)
		x3 := cpsir1*mc - spsir2*ms + tx
		y3 := spsir1*mc + cpsir2*ms + ty
		dx := -t * (cpsir1*ms + spsir2*mc)
		dy := -t * (spsir1*ms - cpsir2*mc)

		result = append(result,
			x2+x0, y2+y0,
			x3-dx+x0, y3-dy+y0,
			x3+x0, y3+y0,
		)
		x2 = x3 + dx
		y2 = y3 + dy
	}
	return result
}
