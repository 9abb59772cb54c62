package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"math"
	"net/url"
	"os"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/recording"
)

// ImageLoader resolves an image source to a decoded image.
type ImageLoader func(src string) (image.Image, error)

// LoadImage decodes src, which is either a data URI or a file path.
// Remote URLs are not fetched.
func LoadImage(src string) (image.Image, error) {
	if strings.HasPrefix(src, "data:") {
		data, err := decodeDataURI(src)
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("raster: decode data uri: %w", err)
		}
		return img, nil
	}
	if u, err := url.Parse(src); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return nil, fmt.Errorf("raster: remote image %q not supported", src)
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("raster: decode %s: %w", src, err)
	}
	return img, nil
}

func decodeDataURI(src string) ([]byte, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(src, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("raster: malformed data uri")
	}
	if strings.HasSuffix(header, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("raster: data uri: %w", err)
		}
		return data, nil
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("raster: data uri: %w", err)
	}
	return []byte(s), nil
}

// maxImages bounds the number of decoded images kept between draws.
const maxImages = 32

// loadImage returns the decoded image for src. Failed loads are not cached.
func (b *Backend) loadImage(src string) (image.Image, error) {
	return b.images.GetOrCreate(src, func() (image.Image, error) {
		return b.loader(src)
	})
}

// DrawImage implements recording.Backend.
func (b *Backend) DrawImage(cmd recording.DrawImageCommand) {
	img, err := b.loadImage(cmd.Src)
	if err != nil {
		recording.Logger().Warn("raster: image", "src", cmd.Src, "err", err)
		return
	}
	sr := img.Bounds()
	if sr.Empty() || cmd.Dst.IsEmpty() {
		return
	}
	sw, sh := float64(sr.Dx()), float64(sr.Dy())

	dst := cmd.Dst
	if cmd.Aspect {
		s := math.Min(dst.Width/sw, dst.Height/sh)
		w, h := sw*s, sh*s
		dst = geom.NewRect(dst.X+(dst.Width-w)/2, dst.Y+(dst.Height-h)/2, w, h)
	}

	local := geom.Translate(dst.X, dst.Y).Multiply(geom.Scale(dst.Width/sw, dst.Height/sh))
	if cmd.FlipH {
		local = local.Multiply(geom.Translate(sw, 0)).Multiply(geom.Scale(-1, 1))
	}
	if cmd.FlipV {
		local = local.Multiply(geom.Translate(0, sh)).Multiply(geom.Scale(1, -1))
	}
	off := b.offset()
	m := geom.Translate(off.X, off.Y).
		Multiply(cmd.Transform).
		Multiply(local).
		Multiply(geom.Translate(-float64(sr.Min.X), -float64(sr.Min.Y)))

	var opts *draw.Options
	if cmd.Alpha < 1 {
		a := uint8(math.Round(math.Max(0, cmd.Alpha) * 255))
		opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha{A: a})}
	}
	draw.BiLinear.Transform(b.img, aff3(m), img, sr, draw.Over, opts)
}

func aff3(m geom.Matrix) f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}
