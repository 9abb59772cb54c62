// Package canvas defines the drawing surface that shapes paint onto.
//
// A Surface owns a tree of nodes, one per shape, and hands out a Canvas for
// painting into a node. Canvas calls follow a small state machine: the
// transform (Scale, Translate, Rotate) and paint attributes are set first,
// then a path is built with Begin, MoveTo, LineTo and friends, and finally
// Fill, Stroke or FillAndStroke consume it.
//
// Base implements the state handling shared by every canvas: the state
// stack, path construction in device space, dash scaling and gradient
// bookkeeping. Concrete canvases embed it and add the drawing calls.
//
// Gradients are shared between shapes through the surface's GradientTable.
// Each definition carries a reference count; shapes retain the keys their
// last paint used and release them when they stop using them.
package canvas
