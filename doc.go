// Package shape paints diagram elements onto a retained drawing surface.
//
// # Overview
//
// A shape turns a style and a geometry into drawing calls on a
// canvas.Canvas. Every shape owns one node of a canvas.Surface; each
// Redraw clears that node and paints the shape again from scratch. The
// recording package provides a surface that keeps the drawing commands
// and can replay them to SVG or raster backends.
//
// # Quick Start
//
//	doc := recording.NewDocument(400, 300)
//
//	r := shape.NewRectangle(shape.WithBounds(geom.NewRect(20, 20, 120, 60)))
//	if err := r.Init(doc, doc.Root()); err != nil {
//	    return err
//	}
//	r.Apply(style.Style{"fillColor": "#dae8fc", "rounded": 1, "shadow": true})
//	r.Redraw()
//	defer r.Destroy()
//
// # Lifecycle
//
// The owner creates a shape, calls Init once to attach it to a surface,
// then Apply and Redraw as often as the cell changes, and finally Destroy.
// Redraw hides the node when the bounds or scale cannot be painted.
// ResetStyles restores the defaults before a style is applied again.
//
// # Variants
//
// Variants embed Base, or another variant, and override the hooks of the
// Shape interface. Base dispatches through Base.This so overrides are
// seen by the whole paint pipeline. New shapes are made available by name
// with Register; edge markers with RegisterMarker.
//
// # Units
//
// Bounds and points are in owner-scale units. Paint divides them by the
// scale and asks the canvas to scale back, so painting hooks work in
// unscaled units. Rotations are in degrees.
package shape
