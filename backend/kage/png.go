package kage

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	"github.com/npillmayer/kage/core"
	"github.com/npillmayer/kage/core/glyph"
	"golang.org/x/image/vector"
)

// DefaultPNGSize is the edge length of PNG images if none is configured.
const DefaultPNGSize = 200

// PNG renders glyphs as black-on-white PNG images.
type PNG struct {
	Style Style
	Size  int // edge length in pixels
}

var _ Renderer = PNG{}

// Extension is "png".
func (r PNG) Extension() string {
	return "png"
}

// Render draws a glyph and returns the encoded PNG image.
func (r PNG) Render(root string, glyphs []*glyph.Record) ([]byte, error) {
	outline, err := Outlines(root, glyphs, r.Style)
	if err != nil {
		return nil, err
	}
	img := outline.Rasterize(r.Size)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot encode %s as PNG", root)
	}
	return buf.Bytes(), nil
}

// Rasterize draws an outline into a square image of the given edge length.
func (o *Outline) Rasterize(size int) *image.RGBA {
	if size <= 0 {
		size = DefaultPNGSize
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	scale := float32(size) / EmSize
	z := vector.NewRasterizer(size, size)
	// polygons are filled one at a time, as overlapping contours of opposite
	// orientation would cancel each other out
	for _, p := range o.Polygons {
		if len(p) < 3 {
			continue
		}
		z.Reset(size, size)
		z.MoveTo(float32(p[0].X())*scale, float32(p[0].Y())*scale)
		for _, pt := range p[1:] {
			z.LineTo(float32(pt.X())*scale, float32(pt.Y())*scale)
		}
		z.ClosePath()
		z.Draw(img, img.Bounds(), image.Black, image.Point{})
	}
	return img
}
