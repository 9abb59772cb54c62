package geom

// Direction is the orientation of a shape. The zero value means no
// direction was given and behaves like DirectionEast.
type Direction uint8

// Directions in the order the style vocabulary lists them.
const (
	DirectionNone Direction = iota
	DirectionEast
	DirectionSouth
	DirectionWest
	DirectionNorth
)

var directionNames = [...]string{
	DirectionNone:  "",
	DirectionEast:  "east",
	DirectionSouth: "south",
	DirectionWest:  "west",
	DirectionNorth: "north",
}

// ParseDirection maps "east", "south", "west" and "north" to a Direction.
// Any other input yields DirectionNone.
func ParseDirection(s string) Direction {
	for d, name := range directionNames {
		if name != "" && name == s {
			return Direction(d)
		}
	}
	return DirectionNone
}

// String returns the style name of d.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return ""
}

// IsVertical reports whether d is north or south.
func (d Direction) IsVertical() bool {
	return d == DirectionNorth || d == DirectionSouth
}

// Rotation returns the clockwise rotation in degrees that turns an
// east-facing shape into one facing d.
func (d Direction) Rotation() float64 {
	switch d {
	case DirectionNorth:
		return 270
	case DirectionWest:
		return 180
	case DirectionSouth:
		return 90
	}
	return 0
}

// DirectionMask is a set of sides a connection may use.
type DirectionMask uint8

// Mask bits. The values are part of the style vocabulary.
const (
	MaskNone  DirectionMask = 0
	MaskWest  DirectionMask = 1
	MaskNorth DirectionMask = 2
	MaskSouth DirectionMask = 4
	MaskEast  DirectionMask = 8
	MaskAll   DirectionMask = MaskWest | MaskNorth | MaskSouth | MaskEast
)

// MaskOf returns the single-bit mask for d. DirectionNone maps to MaskNone.
func MaskOf(d Direction) DirectionMask {
	switch d {
	case DirectionWest:
		return MaskWest
	case DirectionNorth:
		return MaskNorth
	case DirectionSouth:
		return MaskSouth
	case DirectionEast:
		return MaskEast
	}
	return MaskNone
}

// Has reports whether all bits of o are set in m.
func (m DirectionMask) Has(o DirectionMask) bool {
	return m&o == o
}

// Reverse swaps west with east and north with south.
func (m DirectionMask) Reverse() DirectionMask {
	r := (m & MaskWest) << 3
	r |= (m & MaskNorth) << 1
	r |= (m & MaskSouth) >> 1
	r |= (m & MaskEast) >> 3
	return r
}

// Quadrant returns how many quarter turns a rotation in degrees amounts
// to: 0 up to 45 degrees either way, 1 up to 135, 2 beyond 135 in either
// direction and 3 for the remaining negative range.
func Quadrant(rotation float64) int {
	switch {
	case rotation >= 135 || rotation <= -135:
		return 2
	case rotation > 45:
		return 1
	case rotation < -45:
		return 3
	}
	return 0
}

// clockwise lists the mask bits in clockwise order starting at north.
var clockwise = [4]DirectionMask{MaskNorth, MaskEast, MaskSouth, MaskWest}

// RotateMask turns every side in m clockwise by quad quarter turns.
func RotateMask(m DirectionMask, quad int) DirectionMask {
	quad = ((quad % 4) + 4) % 4
	var r DirectionMask
	for i, bit := range clockwise {
		if m&bit != 0 {
			r |= clockwise[(i+quad)%4]
		}
	}
	return r
}

// DirectedBounds shrinks rect by the margins m, where m.X, m.Y, m.Width
// and m.Height hold the left, top, right and bottom margins of an
// east-facing shape. The margins are clamped to the rectangle, swapped for
// flips and rotated to match direction d.
func DirectedBounds(rect, m Rect, d Direction, flipH, flipV bool) Rect {
	if d == DirectionNone {
		d = DirectionEast
	}
	clamp := func(v, limit float64) float64 {
		return roundHalfUp(max(0, min(limit, v)))
	}
	m.X = clamp(m.X, rect.Width)
	m.Y = clamp(m.Y, rect.Height)
	m.Width = clamp(m.Width, rect.Width)
	m.Height = clamp(m.Height, rect.Height)

	if (flipV && d.IsVertical()) || (flipH && !d.IsVertical()) {
		m.X, m.Width = m.Width, m.X
	}
	if (flipH && d.IsVertical()) || (flipV && !d.IsVertical()) {
		m.Y, m.Height = m.Height, m.Y
	}

	m2 := m
	switch d {
	case DirectionSouth:
		m2 = Rect{X: m.Height, Y: m.X, Width: m.Y, Height: m.Width}
	case DirectionWest:
		m2 = Rect{X: m.Width, Y: m.Height, Width: m.X, Height: m.Y}
	case DirectionNorth:
		m2 = Rect{X: m.Y, Y: m.Width, Width: m.Height, Height: m.X}
	}

	return Rect{
		X:      rect.X + m2.X,
		Y:      rect.Y + m2.Y,
		Width:  rect.Width - m2.Width - m2.X,
		Height: rect.Height - m2.Height - m2.Y,
	}
}
