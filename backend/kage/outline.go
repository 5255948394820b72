package kage

import (
	"fmt"
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/kage/core"
	"github.com/npillmayer/kage/core/glyph"
)

// EmSize is the extent of the KAGE coordinate space.
const EmSize = 200.0

// maxNesting bounds the nesting of components while drawing.
const maxNesting = 64

// curveSteps is the number of segments a curve is flattened to.
const curveSteps = 16

// Style holds parameters for drawing strokes.
type Style struct {
	Weight float64 // stroke width in KAGE units
}

// DefaultStyle is a medium-weight gothic style.
var DefaultStyle = Style{Weight: 12}

// Polygon is a closed contour, in KAGE coordinates.
type Polygon []arithm.Pair

// Outline is the drawing of a glyph as a set of filled polygons.
type Outline struct {
	Name     string
	Polygons []Polygon
}

// box maps the unit KAGE square onto a component box.
type box struct {
	x, y   float64 // origin
	sx, sy float64 // scale
}

var identity = box{0, 0, 1, 1}

func (b box) apply(x, y float64) arithm.Pair {
	return arithm.P(b.x+x*b.sx, b.y+y*b.sy)
}

// within returns the box for a component drawn into (x1,y1)-(x2,y2) of b.
func (b box) within(x1, y1, x2, y2 float64) box {
	return box{
		x:  b.x + x1*b.sx,
		y:  b.y + y1*b.sy,
		sx: b.sx * (x2 - x1) / EmSize,
		sy: b.sy * (y2 - y1) / EmSize,
	}
}

// Outlines draws glyph root, which has to be contained in glyphs together
// with all its components.
func Outlines(root string, glyphs []*glyph.Record, style Style) (*Outline, error) {
	if style.Weight <= 0 {
		style = DefaultStyle
	}
	parts := make(map[string]*glyph.Record, len(glyphs))
	for _, g := range glyphs {
		if _, ok := parts[g.Name]; !ok {
			parts[g.Name] = g
		}
	}
	d := &drawing{parts: parts, style: style}
	if err := d.draw(root, identity, 0); err != nil {
		return nil, err
	}
	tracer().Debugf("outline of %s has %d polygons", root, len(d.polygons))
	return &Outline{Name: root, Polygons: d.polygons}, nil
}

type drawing struct {
	parts    map[string]*glyph.Record
	style    Style
	polygons []Polygon
}

func (d *drawing) draw(name string, b box, depth int) error {
	if depth > maxNesting {
		return core.Error(core.EINVALID, "components of %s nested too deeply", name)
	}
	g, ok := d.parts[name]
	if !ok {
		return core.Error(core.EMISSING, "glyph %s missing from resolved set", name)
	}
	for _, s := range g.Strokes() {
		if s.IsComposite() {
			ref, ok := s.Reference()
			if !ok {
				return core.Error(core.EINVALID, "glyph %s has a component without name", name)
			}
			n := coordinates(s, 7)
			if err := d.draw(ref, b.within(n[3], n[4], n[5], n[6]), depth+1); err != nil {
				return err
			}
			continue
		}
		if p := d.stroke(s, b); p != nil {
			d.polygons = append(d.polygons, p)
		}
	}
	return nil
}

// coordinates returns the numeric fields of a stroke, padded with zeros to
// at least n fields.
func coordinates(s glyph.Stroke, n int) []float64 {
	nums := s.Numbers()
	for len(nums) < n {
		nums = append(nums, 0)
	}
	return nums
}

// stroke returns the polygon for a primitive stroke, or nil for strokes
// which do not draw anything.
func (d *drawing) stroke(s glyph.Stroke, b box) Polygon {
	n := coordinates(s, 11)
	pt := func(i int) arithm.Pair { // i-th point of the stroke
		return b.apply(n[3+2*i], n[4+2*i])
	}
	var spine []arithm.Pair
	switch int(n[0]) % 100 {
	case 1:
		spine = []arithm.Pair{pt(0), pt(1)}
	case 2:
		spine = quadratic(pt(0), pt(1), pt(2))
	case 3, 4:
		spine = []arithm.Pair{pt(0), pt(1), pt(2)}
	case 6:
		spine = cubic(pt(0), pt(1), pt(2), pt(3))
	case 7:
		spine = append([]arithm.Pair{pt(0)}, quadratic(pt(1), pt(2), pt(3))...)
	default:
		tracer().Debugf("ignoring stroke %q", s)
		return nil
	}
	return thicken(spine, d.style.Weight)
}

func quadratic(p0, p1, p2 arithm.Pair) []arithm.Pair {
	pts := make([]arithm.Pair, 0, curveSteps+1)
	for i := 0; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		pts = append(pts, arithm.P(
			u*u*p0.X()+2*u*t*p1.X()+t*t*p2.X(),
			u*u*p0.Y()+2*u*t*p1.Y()+t*t*p2.Y(),
		))
	}
	return pts
}

func cubic(p0, p1, p2, p3 arithm.Pair) []arithm.Pair {
	pts := make([]arithm.Pair, 0, curveSteps+1)
	for i := 0; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		pts = append(pts, arithm.P(
			u*u*u*p0.X()+3*u*u*t*p1.X()+3*u*t*t*p2.X()+t*t*t*p3.X(),
			u*u*u*p0.Y()+3*u*u*t*p1.Y()+3*u*t*t*p2.Y()+t*t*t*p3.Y(),
		))
	}
	return pts
}

// thicken turns a poly-line into a closed contour of width w around it.
// Degenerate lines (fewer than two distinct points) yield nil.
func thicken(spine []arithm.Pair, w float64) Polygon {
	pts := make([]arithm.Pair, 0, len(spine))
	for _, p := range spine {
		if len(pts) > 0 && samePoint(pts[len(pts)-1], p) {
			continue
		}
		pts = append(pts, p)
	}
	if len(pts) < 2 {
		return nil
	}
	left := make([]arithm.Pair, len(pts))
	right := make([]arithm.Pair, len(pts))
	for i := range pts {
		nx, ny := normal(pts, i)
		left[i] = arithm.P(pts[i].X()+nx*w/2, pts[i].Y()+ny*w/2)
		right[i] = arithm.P(pts[i].X()-nx*w/2, pts[i].Y()-ny*w/2)
	}
	poly := make(Polygon, 0, 2*len(pts))
	poly = append(poly, left...)
	for i := len(right) - 1; i >= 0; i-- {
		poly = append(poly, right[i])
	}
	return poly
}

// normal is the unit normal at point i of a poly-line, averaged over the
// adjacent segments.
func normal(pts []arithm.Pair, i int) (float64, float64) {
	var dx, dy float64
	if i > 0 {
		x, y := direction(pts[i-1], pts[i])
		dx, dy = dx+x, dy+y
	}
	if i < len(pts)-1 {
		x, y := direction(pts[i], pts[i+1])
		dx, dy = dx+x, dy+y
	}
	l := math.Hypot(dx, dy)
	if l == 0 { // reversal
		dx, dy = direction(pts[i-1], pts[i])
		l = 1
	}
	return -dy / l, dx / l
}

func direction(a, b arithm.Pair) (float64, float64) {
	dx, dy := b.X()-a.X(), b.Y()-a.Y()
	l := math.Hypot(dx, dy)
	return dx / l, dy / l
}

func samePoint(a, b arithm.Pair) bool {
	return math.Abs(a.X()-b.X()) < 1e-9 && math.Abs(a.Y()-b.Y()) < 1e-9
}

func (p Polygon) String() string {
	return fmt.Sprintf("polygon(%d points)", len(p))
}
