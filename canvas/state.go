package canvas

import (
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

// State is the drawing state saved and restored by Save and Restore.
type State struct {
	DX, DY float64
	Scale  float64
	// Transform holds rotation and flips in device space.
	Transform geom.Matrix
	Rotation  float64

	Alpha       float64
	FillAlpha   float64
	StrokeAlpha float64

	FillColor         string
	GradientColor     string
	GradientFillAlpha float64
	GradientAlpha     float64
	GradientDirection geom.Direction

	StrokeColor string
	StrokeWidth float64
	Dashed      bool
	FixDash     bool
	DashPattern string
	LineCap     string
	LineJoin    string
	MiterLimit  float64

	FontColor           string
	FontBackgroundColor string
	FontBorderColor     string
	FontSize            float64
	FontFamily          string
	FontStyle           int

	Shadow      bool
	ShadowColor string
	ShadowAlpha float64
	ShadowDX    float64
	ShadowDY    float64
}

// DefaultState returns the state a fresh canvas starts with.
func DefaultState() State {
	return State{
		Scale:             1,
		Transform:         geom.Identity(),
		Alpha:             1,
		FillAlpha:         1,
		StrokeAlpha:       1,
		GradientFillAlpha: 1,
		GradientAlpha:     1,
		GradientDirection: geom.DirectionEast,
		StrokeWidth:       1,
		DashPattern:       "3 3",
		LineCap:           CapFlat,
		LineJoin:          JoinMiter,
		MiterLimit:        10,
		FontColor:         "#000000",
		FontSize:          style.DefaultFontSize,
		FontFamily:        style.DefaultFontFamily,
		ShadowColor:       style.ShadowColor,
		ShadowAlpha:       style.ShadowOpacity,
		ShadowDX:          style.ShadowOffsetX,
		ShadowDY:          style.ShadowOffsetY,
	}
}
