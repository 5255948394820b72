package kage

import (
	"strings"

	"github.com/npillmayer/kage/core"
	"github.com/npillmayer/kage/core/glyph"
)

// Renderer produces an image document for a resolved glyph.
type Renderer interface {
	// Render draws glyph root, using the resolved set of glyphs.
	Render(root string, glyphs []*glyph.Record) ([]byte, error)
	// Extension is the file extension of documents, without the dot.
	Extension() string
}

// NewRenderer returns a renderer for an output format, either "svg" or "png".
// size is the edge length in pixels for raster formats.
func NewRenderer(format string, style Style, size int) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", "svg":
		return SVG{Style: style}, nil
	case "png":
		return PNG{Style: style, Size: size}, nil
	}
	return nil, core.Error(core.EINVALID, "unknown output format %q", format)
}
