package style

import (
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/gogpu/shape/geom"
)

// Style is a flat map from style keys to values. Values are strings when
// parsed from style strings and may be numbers or booleans when decoded
// from configuration files. A nil Style is empty.
type Style map[string]any

// Clone returns a shallow copy of s that shares no storage with it.
func (s Style) Clone() Style {
	if s == nil {
		return Style{}
	}
	return maps.Clone(s)
}

// Value returns the raw value stored under key.
func (s Style) Value(key string) (any, bool) {
	v, ok := s[key]
	return v, ok && v != nil
}

// Has reports whether key is set.
func (s Style) Has(key string) bool {
	_, ok := s.Value(key)
	return ok
}

// String returns the value of key formatted as a string, or def.
func (s Style) String(key, def string) string {
	v, ok := s.Value(key)
	if !ok {
		return def
	}
	return toString(v)
}

// Number returns the numeric value of key. Missing keys and values that
// are not numeric yield def.
func (s Style) Number(key string, def float64) float64 {
	v, ok := s.Value(key)
	if !ok {
		return def
	}
	n, ok := ToNumber(v)
	if !ok || math.IsNaN(n) {
		return def
	}
	return n
}

// Int returns the numeric value of key truncated to an int, or def.
func (s Style) Int(key string, def int) int {
	return int(s.Number(key, float64(def)))
}

// Bool returns the value of key coerced with ToBool, or def when unset.
func (s Style) Bool(key string, def bool) bool {
	v, ok := s.Value(key)
	if !ok {
		return def
	}
	return ToBool(v)
}

// Color returns the colour stored under key. The value None and an
// empty string both yield "", meaning no colour.
func (s Style) Color(key, def string) string {
	c := s.String(key, def)
	if strings.EqualFold(c, None) {
		return ""
	}
	return c
}

// Direction returns the direction stored under key, or def.
func (s Style) Direction(key string, def geom.Direction) geom.Direction {
	v, ok := s.Value(key)
	if !ok {
		return def
	}
	if d := geom.ParseDirection(toString(v)); d != geom.DirectionNone {
		return d
	}
	return def
}

// Set stores v under key and returns s for chaining. A nil receiver
// allocates a new map.
func (s Style) Set(key string, v any) Style {
	if s == nil {
		s = Style{}
	}
	s[key] = v
	return s
}

// Merge copies every entry of o into s. Entries whose value is None are
// removed from s instead.
func (s Style) Merge(o Style) {
	for k, v := range o {
		if str, ok := v.(string); ok && str == None {
			delete(s, k)
			continue
		}
		s[k] = v
	}
}

// Keys returns the keys of s in sorted order.
func (s Style) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Format renders s as an inline style string with sorted keys.
func (s Style) Format() string {
	var b strings.Builder
	for i, k := range s.Keys() {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(toString(s[k]))
	}
	return b.String()
}
