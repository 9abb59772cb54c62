package canvas

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]color.NRGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"silver":  {0xc0, 0xc0, 0xc0, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"maroon":  {0x80, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"lime":    {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"navy":    {0x00, 0x00, 0x80, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"olive":   {0x80, 0x80, 0x00, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"fuchsia": {0xff, 0x00, 0xff, 0xff},
	"teal":    {0x00, 0x80, 0x80, 0xff},
	"aqua":    {0x00, 0xff, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},

	"transparent": {},
}

// ParseColor parses a CSS hex colour ("#rgb" or "#rrggbb") or one of the
// basic CSS colour names.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("canvas: invalid colour %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("canvas: invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// WithAlpha returns c with its alpha multiplied by a, clamped to [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	a = max(0, min(1, a))
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}
