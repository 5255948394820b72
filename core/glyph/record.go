package glyph

import (
	"fmt"
	"strings"
)

// Separators of the KAGE drawing program notation.
const (
	StrokeSeparator = "$"
	FieldSeparator  = ":"
)

// CompositePrefix is the prefix of the type field of composite strokes.
const CompositePrefix = "99"

// ReferenceField is the index of the field holding the name of a referenced
// glyph within a composite stroke.
const ReferenceField = 7

// Record is one glyph of a glyph dump. Records are never modified after they
// have been loaded.
type Record struct {
	Name    string // unique, case-sensitive name, e.g. "u4e00" or "dkw-00001"
	Related string // carried through unchanged
	Data    string // drawing program
}

// New creates a glyph record.
func New(name, related, data string) *Record {
	return &Record{Name: name, Related: related, Data: data}
}

func (r *Record) String() string {
	if r == nil {
		return "<nil glyph>"
	}
	return fmt.Sprintf("glyph[%s]", r.Name)
}

// Strokes splits the drawing program into its stroke records, in program order.
// Empty stroke records are dropped, thus an empty program has no strokes.
func (r *Record) Strokes() []Stroke {
	if r == nil || r.Data == "" {
		return nil
	}
	parts := strings.Split(r.Data, StrokeSeparator)
	strokes := make([]Stroke, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		strokes = append(strokes, Stroke(p))
	}
	return strokes
}

// IsComposite is true if at least one stroke of the drawing program references
// another glyph.
func (r *Record) IsComposite() bool {
	for _, s := range r.Strokes() {
		if s.IsComposite() {
			return true
		}
	}
	return false
}

// References returns the names of all glyphs referenced by composite strokes,
// in encounter order. A name referenced twice is listed twice.
// Composite strokes without a reference field are not listed.
func (r *Record) References() []string {
	var refs []string
	for _, s := range r.Strokes() {
		if name, ok := s.Reference(); ok {
			refs = append(refs, name)
		} else if s.IsComposite() {
			tracer().Debugf("%s has a composite stroke without reference: %q", r, s)
		}
	}
	return refs
}
