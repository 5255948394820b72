package glyph

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestStrokes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.glyph")
	defer teardown()
	//
	g := New("u00041", "alias1", "99:0:0:0:0:0:0:u00042:0$1:0:0:20:100:180:100")
	strokes := g.Strokes()
	assert.Len(t, strokes, 2)
	assert.True(t, strokes[0].IsComposite())
	assert.False(t, strokes[1].IsComposite())
	ref, ok := strokes[0].Reference()
	assert.True(t, ok)
	assert.Equal(t, "u00042", ref)
	_, ok = strokes[1].Reference()
	assert.False(t, ok, "primitive strokes carry no reference")
	assert.True(t, g.IsComposite())
}

func TestEmptyProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.glyph")
	defer teardown()
	//
	g := New("empty", "", "")
	assert.Empty(t, g.Strokes())
	assert.Empty(t, g.References())
	assert.False(t, g.IsComposite())
	//
	var nilglyph *Record
	assert.Empty(t, nilglyph.Strokes())
	assert.Equal(t, "<nil glyph>", nilglyph.String())
}

func TestReferences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.glyph")
	defer teardown()
	//
	g := New("x", "", "99:0:0:0:0:100:200:a$2:7:8:10:10:50:50:90:90$99:0:0:100:0:200:200:b$99:0:0:0:0:200:200:a$99:0:0")
	assert.Equal(t, []string{"a", "b", "a"}, g.References(),
		"references are listed in encounter order, duplicates kept, truncated strokes dropped")
}

func TestCompositePrefix(t *testing.T) {
	// the type field is matched by prefix
	assert.True(t, Stroke("990:0:0:0:0:0:0:a").IsComposite())
	assert.False(t, Stroke("9:0:0:0:0:0:0:a").IsComposite())
	assert.False(t, Stroke("").IsComposite())
}

func TestNumbers(t *testing.T) {
	n := Stroke("99:0:0:10:20.5:200:200:u00042:0").Numbers()
	assert.Equal(t, []float64{99, 0, 0, 10, 20.5, 200, 200, 0, 0}, n)
	assert.Equal(t, "", Stroke("1:0").Field(5))
}
