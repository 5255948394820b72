package glyph

import (
	"strconv"
	"strings"
)

// Stroke is a single stroke record of a drawing program.
type Stroke string

// Fields splits a stroke record into its fields.
func (s Stroke) Fields() []string {
	return strings.Split(string(s), FieldSeparator)
}

// Field returns field i, or "" if the stroke has fewer fields.
func (s Stroke) Field(i int) string {
	f := s.Fields()
	if i < 0 || i >= len(f) {
		return ""
	}
	return f[i]
}

// Type is the stroke type field (field 0).
func (s Stroke) Type() string {
	return s.Field(0)
}

// IsComposite is true for strokes referencing another glyph.
func (s Stroke) IsComposite() bool {
	return strings.HasPrefix(s.Type(), CompositePrefix)
}

// Reference returns the name of the glyph referenced by a composite stroke.
// It returns false for primitive strokes and for composite strokes lacking
// a reference field.
func (s Stroke) Reference() (string, bool) {
	if !s.IsComposite() {
		return "", false
	}
	f := s.Fields()
	if len(f) <= ReferenceField {
		return "", false
	}
	return f[ReferenceField], true
}

// Numbers interprets every field as a number. Fields which are not numeric,
// such as the reference name of a composite stroke, read as 0.
func (s Stroke) Numbers() []float64 {
	f := s.Fields()
	n := make([]float64, len(f))
	for i, x := range f {
		v, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			continue
		}
		n[i] = v
	}
	return n
}
