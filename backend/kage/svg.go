package kage

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/npillmayer/kage/core/glyph"
)

// SVG renders glyphs as SVG documents made of filled polygons.
type SVG struct {
	Style Style
}

var _ Renderer = SVG{}

// Extension is "svg".
func (r SVG) Extension() string {
	return "svg"
}

// Render draws a glyph and returns the SVG document.
func (r SVG) Render(root string, glyphs []*glyph.Record) ([]byte, error) {
	outline, err := Outlines(root, glyphs, r.Style)
	if err != nil {
		return nil, err
	}
	return outline.SVG(), nil
}

// SVG writes an outline as an SVG document.
func (o *Outline) SVG() []byte {
	var buf bytes.Buffer
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" version="1.1" baseProfile="full" viewBox="0 0 200 200" width="200" height="200">`)
	buf.WriteString("\n<g fill=\"black\">\n")
	for _, p := range o.Polygons {
		buf.WriteString(`<polygon points="`)
		for _, pt := range p {
			fmt.Fprintf(&buf, "%s,%s ", coord(pt.X()), coord(pt.Y()))
		}
		buf.WriteString("\" />\n")
	}
	buf.WriteString("</g>\n</svg>\n")
	return buf.Bytes()
}

// coord formats a coordinate with at most two decimals.
func coord(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // no negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
