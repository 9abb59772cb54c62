package raster

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/srwiley/rasterx"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/recording"
)

// paintColor returns the rasterx colour for paint over path: a
// color.Color for solid paints or a rasterx.ColorFunc for gradients.
func (b *Backend) paintColor(path *geom.Path, paint recording.Paint) (any, bool) {
	if paint.IsGradient() {
		def, ok := b.gradients[paint.Gradient]
		if !ok {
			recording.Logger().Warn("raster: unknown gradient", "key", string(paint.Gradient))
			return nil, false
		}
		bounds, ok := path.Bounds()
		if !ok {
			return nil, false
		}
		fn, err := gradientFunc(def, bounds, paint.Alpha)
		if err != nil {
			recording.Logger().Warn("raster: gradient", "key", string(paint.Gradient), "err", err)
			return nil, false
		}
		return fn, true
	}
	c, err := canvas.ParseColor(paint.Color)
	if err != nil {
		recording.Logger().Warn("raster: paint colour", "err", err)
		return nil, false
	}
	return canvas.WithAlpha(c, paint.Alpha), true
}

// gradientFunc returns a colour function blending the stops of def across
// bounds. def must be normalized, so it runs south or east.
func gradientFunc(def canvas.GradientDef, bounds geom.Rect, alpha float64) (rasterx.ColorFunc, error) {
	c1, err := toColorful(def.Start)
	if err != nil {
		return nil, err
	}
	c2, err := toColorful(def.End)
	if err != nil {
		return nil, err
	}
	east := def.Direction == geom.DirectionEast
	return func(x, y int) color.Color {
		var t float64
		if east {
			t = ratio(float64(x)+0.5-bounds.X, bounds.Width)
		} else {
			t = ratio(float64(y)+0.5-bounds.Y, bounds.Height)
		}
		r, g, bl := c1.BlendRgb(c2, t).Clamped().RGB255()
		a := (def.StartAlpha + (def.EndAlpha-def.StartAlpha)*t) * alpha
		return color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(clamp01(a) * 255))}
	}, nil
}

func toColorful(s string) (colorful.Color, error) {
	c, err := canvas.ParseColor(s)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}, nil
}

func ratio(v, length float64) float64 {
	if length <= 0 {
		return 0
	}
	return clamp01(v / length)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
