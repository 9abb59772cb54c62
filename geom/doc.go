// Package geom holds the pure geometry used by the shape pipeline.
//
// It provides points, rectangles, affine matrices and paths together with
// the numerical helpers that diagram rendering depends on: rotation of
// points and rectangles, SVG elliptical arc flattening, segment distance
// and intersection tests, and the direction bitmask algebra used for
// connection constraints.
//
// Nothing in this package has side effects. Degenerate input is reported
// through empty results or false flags, never through panics.
package geom
