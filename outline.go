package shape

import (
	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
)

// outlineCanvas wraps the canvas of a shape in outline mode. Paint
// changes are ignored so only the outline stroke set up beforehand is
// drawn, and stroking is tracked so Paint can add a fallback rectangle.
type outlineCanvas struct {
	canvas.Canvas
	stroked bool
}

func (o *outlineCanvas) SetStrokeWidth(float64) {}
func (o *outlineCanvas) SetStrokeColor(string)  {}
func (o *outlineCanvas) SetFillColor(string)    {}
func (o *outlineCanvas) SetDashed(bool, bool)   {}

func (o *outlineCanvas) Text(float64, float64, float64, float64, string, canvas.TextOptions) {}

func (o *outlineCanvas) SetGradient(string, string, float64, float64, float64, float64, geom.Direction, float64, float64) {
}

func (o *outlineCanvas) Stroke() {
	o.stroked = true
	o.Canvas.Stroke()
}

func (o *outlineCanvas) FillAndStroke() {
	o.stroked = true
	o.Canvas.FillAndStroke()
}
