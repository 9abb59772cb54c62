package shape

import (
	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/style"
)

const (
	labelSpacing       = 2
	labelIndicatorSize = 10
	// labelInset is added to the spacing around the image and indicator.
	labelInset = 5
)

// Label is a rectangle with an optional image and status indicator.
type Label struct {
	Rectangle

	// Image is drawn inside the box, aligned by imageAlign and
	// imageVerticalAlign.
	Image string

	// The indicator is a small shape, or an image, placed like Image.
	IndicatorShape       string
	IndicatorColor       string
	IndicatorStrokeColor string
	IndicatorGradient    string
	IndicatorDirection   geom.Direction
	IndicatorImage       string
}

// NewLabel returns a label configured by opts.
func NewLabel(opts ...Option) *Label {
	l := &Label{}
	Setup(l, opts...)
	return l
}

// Apply reads the image and indicator keys on top of the base style.
func (l *Label) Apply(s style.Style) {
	l.Rectangle.Apply(s)
	l.Image = s.String(style.KeyImage, l.Image)
	l.IndicatorShape = s.String(style.KeyIndicatorShape, l.IndicatorShape)
	l.IndicatorColor = s.Color(style.KeyIndicatorColor, l.IndicatorColor)
	l.IndicatorStrokeColor = s.Color(style.KeyIndicatorStrokeColor, l.IndicatorStrokeColor)
	l.IndicatorGradient = s.Color(style.KeyIndicatorGradient, l.IndicatorGradient)
	l.IndicatorDirection = s.Direction(style.KeyIndicatorDirection, l.IndicatorDirection)
	l.IndicatorImage = s.String(style.KeyIndicatorImage, l.IndicatorImage)
}

// PaintForeground draws the image and the indicator, then the rectangle
// foreground.
func (l *Label) PaintForeground(c canvas.Canvas, x, y, w, h float64) {
	l.paintImage(c, x, y, w, h)
	l.paintIndicator(c, x, y, w, h)
	l.Rectangle.PaintForeground(c, x, y, w, h)
}

func (l *Label) paintImage(c canvas.Canvas, x, y, w, h float64) {
	if l.Image == "" {
		return
	}
	r := l.ImageBounds(x, y, w, h)
	c.Image(r.X, r.Y, r.Width, r.Height, l.Image, false, false, false)
}

// ImageBounds returns where the image goes in the box (x, y, w, h).
func (l *Label) ImageBounds(x, y, w, h float64) geom.Rect {
	width := l.style.Number(style.KeyImageWidth, style.DefaultImageSize)
	height := l.style.Number(style.KeyImageHeight, style.DefaultImageSize)
	spacing := l.style.Number(style.KeySpacing, labelSpacing) + labelInset
	return l.place(x, y, w, h, width, height, spacing)
}

// IndicatorBounds returns where the indicator goes in the box (x, y, w, h).
func (l *Label) IndicatorBounds(x, y, w, h float64) geom.Rect {
	width := l.style.Number(style.KeyIndicatorWidth, labelIndicatorSize)
	height := l.style.Number(style.KeyIndicatorHeight, labelIndicatorSize)
	return l.place(x, y, w, h, width, height, labelSpacing+labelInset)
}

// place aligns a width x height box inside (x, y, w, h). Left and middle
// are the defaults.
func (l *Label) place(x, y, w, h, width, height, spacing float64) geom.Rect {
	switch l.style.String(style.KeyImageAlign, geom.AlignLeft) {
	case geom.AlignCenter:
		x += (w - width) / 2
	case geom.AlignRight:
		x += w - width - spacing
	default:
		x += spacing
	}
	switch l.style.String(style.KeyImageVerticalAlign, geom.AlignMiddle) {
	case geom.AlignTop:
		y += spacing
	case geom.AlignBottom:
		y += h - height - spacing
	default:
		y += (h - height) / 2
	}
	return geom.NewRect(x, y, width, height)
}

func (l *Label) paintIndicator(c canvas.Canvas, x, y, w, h float64) {
	if l.IndicatorShape != "" {
		ind, err := New(l.IndicatorShape)
		if err != nil {
			Logger().Warn("shape: label indicator", "err", err)
			return
		}
		b := ind.AsBase()
		b.Fill = l.IndicatorColor
		b.Stroke = l.IndicatorStrokeColor
		b.Gradient = l.IndicatorGradient
		b.Direction = l.IndicatorDirection
		b.SetBounds(l.IndicatorBounds(x, y, w, h))

		c.Save()
		ind.Paint(c)
		c.Restore()
		return
	}
	if l.IndicatorImage != "" {
		r := l.IndicatorBounds(x, y, w, h)
		c.Image(r.X, r.Y, r.Width, r.Height, l.IndicatorImage, false, false, false)
	}
}
