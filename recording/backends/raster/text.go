package raster

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/internal/cache"
	"github.com/gogpu/shape/recording"
	"github.com/gogpu/shape/style"
)

// fontCache parses the Go fonts once per style and keeps the most recently
// shaped lines. Lines are shaped with HarfBuzz from go-text/typesetting and
// outlined with x/image. Font families are not resolved; every family
// renders with the Go fonts.
type fontCache struct {
	mu     sync.Mutex
	fonts  map[int]*goFont
	shaper shaping.HarfbuzzShaper
	buf    sfnt.Buffer
	lines  *cache.Cache[lineKey, shapedLine]
}

// goFont is one Go font parsed by both libraries. Glyph IDs agree since
// both read the same file.
type goFont struct {
	shaping *gotext.Font
	outline *opentype.Font
}

type lineKey struct {
	text  string
	style int
	size  float64
	rtl   bool
}

// shapedLine is a line in visual order. Glyph positions are relative to
// the left end of the line on its baseline, y down.
type shapedLine struct {
	glyphs  []glyph
	advance float64
}

type glyph struct {
	x, y    float64
	outline sfnt.Segments
}

// maxLines bounds the number of cached shaped lines.
const maxLines = 256

func newFontCache() *fontCache {
	return &fontCache{
		fonts: make(map[int]*goFont),
		lines: cache.New[lineKey, shapedLine](maxLines),
	}
}

// line shapes text at the given size. Right-to-left lines come back in
// visual order, so their first glyph is the logically last one.
func (c *fontCache) line(text string, fontStyle int, size float64, rtl bool) (shapedLine, error) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return shapedLine{}, fmt.Errorf("raster: invalid font size %g", size)
	}
	fontStyle &= style.FontBold | style.FontItalic
	key := lineKey{text: text, style: fontStyle, size: size, rtl: rtl}
	return c.lines.GetOrCreate(key, func() (shapedLine, error) {
		return c.shape(key)
	})
}

func (c *fontCache) shape(key lineKey) (shapedLine, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := c.fontLocked(key.style)
	if err != nil {
		return shapedLine{}, err
	}
	runes := []rune(key.text)
	dir := di.DirectionLTR
	if key.rtl {
		dir = di.DirectionRTL
	}
	out := c.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gotext.NewFace(f.shaping),
		Size:      toFixed(key.size),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	})

	ppem := toFixed(key.size)
	line := shapedLine{glyphs: make([]glyph, 0, len(out.Glyphs))}
	var pen float64
	for _, g := range out.Glyphs {
		segs, err := f.outline.LoadGlyph(&c.buf, sfnt.GlyphIndex(g.GlyphID), ppem, nil)
		if err == nil && len(segs) > 0 {
			line.glyphs = append(line.glyphs, glyph{
				x: pen + fromFixed(g.XOffset),
				y: -fromFixed(g.YOffset),
				// LoadGlyph reuses the buffer on the next call.
				outline: slices.Clone(segs),
			})
		}
		pen += fromFixed(g.Advance)
	}
	line.advance = pen
	return line, nil
}

func (c *fontCache) fontLocked(fontStyle int) (*goFont, error) {
	if f, ok := c.fonts[fontStyle]; ok {
		return f, nil
	}
	data := fontData(fontStyle)
	outline, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("raster: parse font for shaping: %w", err)
	}
	f := &goFont{shaping: face.Font, outline: outline}
	c.fonts[fontStyle] = f
	return f, nil
}

// scriptOf returns the script of the first letter in runes, Latin when
// there is none.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsDigit(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fontData(fontStyle int) []byte {
	bold := fontStyle&style.FontBold != 0
	italic := fontStyle&style.FontItalic != 0
	switch {
	case bold && italic:
		return gobolditalic.TTF
	case bold:
		return gobold.TTF
	case italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

// DrawText implements recording.Backend.
func (b *Backend) DrawText(cmd recording.DrawTextCommand) {
	if len(cmd.Lines) == 0 {
		return
	}
	col, err := canvas.ParseColor(cmd.Color)
	if err != nil {
		recording.Logger().Warn("raster: text colour", "err", err)
		return
	}
	col = canvas.WithAlpha(col, cmd.Alpha)

	if cmd.Background != "" || cmd.Border != "" {
		box := rectPath(cmd.Box.Grow(1)).Transform(cmd.Transform)
		if cmd.Background != "" {
			b.FillPath(box, recording.Paint{Color: cmd.Background, Alpha: 1}, recording.FillRuleNonZero)
		}
		if cmd.Border != "" {
			b.StrokePath(box, recording.Paint{Color: cmd.Border, Alpha: 1}, recording.Stroke{Width: 1, MiterLimit: 10})
		}
	}

	off := b.offset()
	m := geom.Translate(off.X, off.Y).Multiply(cmd.Transform)
	rtl := cmd.Direction == style.TextDirectionRTL
	thickness := math.Max(1, cmd.FontSize/14)

	p := geom.NewPath()
	for _, line := range cmd.Lines {
		sl, err := b.fonts.line(line.Text, cmd.FontStyle, cmd.FontSize, rtl)
		if err != nil {
			recording.Logger().Warn("raster: shape text", "err", err)
			return
		}
		x := line.X + lineStart(cmd.Anchor, rtl, sl.advance)
		appendGlyphs(p, sl, x, line.Y)

		if cmd.FontStyle&style.FontUnderline != 0 {
			appendRect(p, geom.NewRect(x, line.Y+thickness, sl.advance, thickness))
		}
		if cmd.FontStyle&style.FontStrikethrough != 0 {
			appendRect(p, geom.NewRect(x, line.Y-cmd.FontSize*0.3, sl.advance, thickness))
		}
	}
	if p.IsEmpty() {
		return
	}
	b.fill(p.Transform(m), col, true)
}

// lineStart returns the offset of the left end of a line from its anchor.
// The start of a right-to-left line is its right end.
func lineStart(anchor string, rtl bool, advance float64) float64 {
	switch {
	case anchor == "middle":
		return -advance / 2
	case (anchor == "end") != rtl:
		return -advance
	}
	return 0
}

// appendGlyphs adds the outlines of sl to p with the left end of the line
// at (x, y).
func appendGlyphs(p *geom.Path, sl shapedLine, x, y float64) {
	for _, g := range sl.glyphs {
		gx, gy := x+g.x, y+g.y
		pt := func(v fixed.Point26_6) (float64, float64) {
			return gx + fromFixed(v.X), gy + fromFixed(v.Y)
		}
		for _, seg := range g.outline {
			a := seg.Args
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				p.MoveTo(pt(a[0]))
			case sfnt.SegmentOpLineTo:
				p.LineTo(pt(a[0]))
			case sfnt.SegmentOpQuadTo:
				x1, y1 := pt(a[0])
				x2, y2 := pt(a[1])
				p.QuadTo(x1, y1, x2, y2)
			case sfnt.SegmentOpCubeTo:
				x1, y1 := pt(a[0])
				x2, y2 := pt(a[1])
				x3, y3 := pt(a[2])
				p.CubicTo(x1, y1, x2, y2, x3, y3)
			}
		}
		p.Close()
	}
}

func appendRect(p *geom.Path, r geom.Rect) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.Right(), r.Y)
	p.LineTo(r.Right(), r.Bottom())
	p.LineTo(r.X, r.Bottom())
	p.Close()
}

func rectPath(r geom.Rect) *geom.Path {
	p := geom.NewPath()
	appendRect(p, r)
	return p
}

// fill fills a path already in device space with a colour or gradient.
func (b *Backend) fill(path *geom.Path, col any, nonZero bool) {
	b.filler.Clear()
	b.filler.SetWinding(nonZero)
	addPath(b.filler, path, true)
	b.filler.SetColor(col)
	b.filler.Draw()
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
