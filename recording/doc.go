// Package recording provides a retained drawing document for shapes.
//
// A Document is a tree of nodes. Shapes paint into their node through a
// Canvas, which records each fill, stroke, image and text call as a typed
// command in device coordinates. The document can report the exact extent
// of what a node drew and can replay everything it holds to a Backend.
//
// # Architecture
//
// The package follows a Command Pattern with three main components:
//
//   - Canvas: implements canvas.Canvas and records commands
//   - Document: owns nodes, commands and the shared gradient table
//   - Backend: renders commands to a specific output format
//
// # Basic Usage
//
//	doc := recording.NewDocument(800, 600)
//	n, _ := doc.CreateNode(doc.Root())
//
//	c := doc.NewCanvas(n)
//	c.SetFillColor("#dae8fc")
//	c.SetStrokeColor("#6c8ebf")
//	c.Rect(10, 10, 120, 60)
//	c.FillAndStroke()
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/shape/recording/backends/svg"
//
//	if err := recording.RenderFile(doc, "diagram.svg", ""); err != nil {
//	    // handle error
//	}
//
// # Output Formats
//
// Each backend package registers the output format it writes when it is
// imported. Formats are chosen by name or by file extension:
//
//	import (
//	    _ "github.com/gogpu/shape/recording/backends/raster" // "png", .png
//	    _ "github.com/gogpu/shape/recording/backends/svg"    // "svg", .svg
//	)
//
// Render and RenderFile look the format up, play the document back into a
// fresh backend and write its output. Playback on its own works with any
// Backend.
//
// # Shadows and Gradients
//
// A shadow is recorded as a copy of the shadowed fill or stroke, offset by
// the shadow offset and painted in the shadow colour, placed before the
// shadowed command. Gradient fills refer to definitions in the document's
// gradient table by key; Playback defines every gradient before the
// first node is visited.
//
// # Thread Safety
//
// Document methods are safe for concurrent use. A Canvas is not; each
// goroutine painting a node should use its own.
package recording
