package shape

import (
	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/style"
)

// Image draws a picture in its bounds, with an optional background and
// border from the imageBackground and imageBorder style keys.
type Image struct {
	Rectangle

	Src            string
	PreserveAspect bool
}

// NewImage returns an image shape for src configured by opts.
func NewImage(src string, opts ...Option) *Image {
	im := &Image{Src: src, PreserveAspect: true}
	Setup(im, opts...)
	return im
}

// Apply applies s and then clears the fill, stroke and gradient; the
// background and border come from their own keys at paint time.
func (im *Image) Apply(s style.Style) {
	im.Rectangle.Apply(s)
	im.Fill = ""
	im.Stroke = ""
	im.Gradient = ""
	im.Src = s.String(style.KeyImage, im.Src)
	im.PreserveAspect = s.Bool(style.KeyImageAspect, im.PreserveAspect)
}

// ScreenOffset returns 0 so images stay on pixel boundaries.
func (im *Image) ScreenOffset() float64 { return 0 }

// IsRoundable reports false.
func (im *Image) IsRoundable(canvas.Canvas, float64, float64, float64, float64) bool {
	return false
}

// PaintVertexShape draws the background, the image and the border. Without
// a source it paints a plain rectangle.
func (im *Image) PaintVertexShape(c canvas.Canvas, x, y, w, h float64) {
	if im.Src == "" {
		im.This.PaintBackground(c, x, y, w, h)
		return
	}
	fill := im.style.Color(style.KeyImageBackground, "")
	stroke := im.style.Color(style.KeyImageBorder, "")

	if fill != "" {
		// Stroked too so the shadow follows the border.
		c.SetFillColor(fill)
		c.SetStrokeColor(stroke)
		c.Rect(x, y, w, h)
		c.FillAndStroke()
	}

	c.Image(x, y, w, h, im.Src, im.PreserveAspect, false, false)

	if stroke != "" {
		c.SetShadow(false)
		c.SetStrokeColor(stroke)
		c.Rect(x, y, w, h)
		c.Stroke()
	}
}
