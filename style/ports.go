package style

import (
	"strings"

	"github.com/gogpu/shape/geom"
)

// PortConstraints returns the sides of a terminal an edge may connect to.
//
// The terminal's own portConstraint wins over the edge's
// sourcePortConstraint or targetPortConstraint, chosen by source. The value
// names one or more directions, for example "north" or "west,east". When
// neither is set def is returned. If the terminal enables
// portConstraintRotation, the sides are turned by the terminal's rotation
// in quarter turns.
func PortConstraints(terminal, edge Style, source bool, def geom.DirectionMask) geom.DirectionMask {
	key := KeyTargetPortConstraint
	if source {
		key = KeySourcePortConstraint
	}
	v, ok := terminal.Value(KeyPortConstraint)
	if !ok {
		v, ok = edge.Value(key)
	}
	if !ok {
		return def
	}
	directions := toString(v)

	var rotation float64
	if terminal.Bool(KeyPortConstraintRotated, false) {
		rotation = terminal.Number(KeyRotation, 0)
	}

	var m geom.DirectionMask
	for _, d := range []geom.Direction{geom.DirectionNorth, geom.DirectionWest, geom.DirectionSouth, geom.DirectionEast} {
		if strings.Contains(directions, d.String()) {
			m |= geom.MaskOf(d)
		}
	}
	return geom.RotateMask(m, geom.Quadrant(rotation))
}
