package canvas

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/shape/geom"
)

// GradientKey identifies a gradient definition within a GradientTable.
type GradientKey string

// GradientDef is a two-stop linear gradient running in Direction across
// the bounding box of the filled path.
type GradientDef struct {
	Start, End           string
	StartAlpha, EndAlpha float64
	Direction            geom.Direction
}

// Normalize returns the canonical form of d: colours are lower-cased, no
// direction means south, and north and west become south and east with
// the stops swapped.
func (d GradientDef) Normalize() GradientDef {
	d.Start = strings.ToLower(d.Start)
	d.End = strings.ToLower(d.End)
	switch d.Direction {
	case geom.DirectionNone:
		d.Direction = geom.DirectionSouth
	case geom.DirectionNorth, geom.DirectionWest:
		d.Start, d.End = d.End, d.Start
		d.StartAlpha, d.EndAlpha = d.EndAlpha, d.StartAlpha
		if d.Direction == geom.DirectionNorth {
			d.Direction = geom.DirectionSouth
		} else {
			d.Direction = geom.DirectionEast
		}
	}
	return d
}

// Key returns the identifier of d. Definitions that render the same way
// share a key.
func (d GradientDef) Key() GradientKey {
	d = d.Normalize()
	dir := "s"
	if d.Direction == geom.DirectionEast {
		dir = "e"
	}
	return GradientKey(fmt.Sprintf("grad-%s-%s-%s-%s-%s",
		keyColor(d.Start), strconv.FormatFloat(d.StartAlpha, 'f', -1, 64),
		keyColor(d.End), strconv.FormatFloat(d.EndAlpha, 'f', -1, 64), dir))
}

// keyColor strips characters that are not valid in identifiers.
func keyColor(c string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		}
		return -1
	}, c)
}

type gradientEntry struct {
	def  GradientDef
	refs int
}

// GradientTable holds the gradient definitions of a surface together with
// the number of shapes referencing each one. It is not safe for concurrent
// use; shapes sharing a surface are painted from one goroutine.
type GradientTable struct {
	entries map[GradientKey]*gradientEntry
}

// NewGradientTable returns an empty table.
func NewGradientTable() *GradientTable {
	return &GradientTable{entries: make(map[GradientKey]*gradientEntry)}
}

// Define adds def if no equivalent definition exists and returns its key.
// New definitions start with a reference count of zero.
func (t *GradientTable) Define(def GradientDef) GradientKey {
	key := def.Key()
	if _, ok := t.entries[key]; !ok {
		t.entries[key] = &gradientEntry{def: def.Normalize()}
	}
	return key
}

// Lookup returns the normalized definition stored under key.
func (t *GradientTable) Lookup(key GradientKey) (GradientDef, bool) {
	e, ok := t.entries[key]
	if !ok {
		return GradientDef{}, false
	}
	return e.def, true
}

// Retain increments the reference count of key.
func (t *GradientTable) Retain(key GradientKey) error {
	e, ok := t.entries[key]
	if !ok {
		return fmt.Errorf("retain %q: %w", key, ErrUnknownGradient)
	}
	e.refs++
	return nil
}

// Release decrements the reference count of key and removes the
// definition when the count reaches zero. It reports whether the
// definition was removed.
func (t *GradientTable) Release(key GradientKey) (bool, error) {
	e, ok := t.entries[key]
	if !ok {
		return false, fmt.Errorf("release %q: %w", key, ErrUnknownGradient)
	}
	if e.refs <= 0 {
		return false, fmt.Errorf("release %q: %w", key, ErrRefCountUnderflow)
	}
	e.refs--
	if e.refs == 0 {
		delete(t.entries, key)
		return true, nil
	}
	return false, nil
}

// RefCount returns the reference count of key, or zero when undefined.
func (t *GradientTable) RefCount(key GradientKey) int {
	if e, ok := t.entries[key]; ok {
		return e.refs
	}
	return 0
}

// Keys returns the defined keys in sorted order.
func (t *GradientTable) Keys() []GradientKey {
	keys := make([]GradientKey, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of definitions.
func (t *GradientTable) Len() int { return len(t.entries) }
