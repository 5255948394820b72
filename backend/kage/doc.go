/*
Package kage renders glyphs given as KAGE drawing programs.

The renderer interprets the primitive strokes of a glyph and of all its
components and turns them into filled polygons of uniform width, in the
KAGE coordinate space of 200 × 200 units. Polygons may then be written as an
SVG document or rasterized to a PNG image.

Supported stroke types are

	1   straight line            p1 p2
	2   curve                    p1, control point, p3
	3,4 bent line                p1 p2 p3
	6   complex curve            p1, two control points, p4
	7   vertical slash           line p1 p2, then curve p2, control point, p4
	99  component                box (x1,y1)-(x2,y2), glyph name in field 7

Stroke start and end shapes (fields 1 and 2) are ignored, as are the
stretch parameters of components. This is not a replacement for the KAGE
mincho engine; it draws "gothic" glyphs good enough for previews and
comparisons.

Rendering requires the resolved set of glyphs as produced by package
resolve: the root glyph and every component it references.

BSD License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package kage

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'kage.render'
func tracer() tracing.Trace {
	return tracing.Select("kage.render")
}
