package resolve

import (
	"errors"
	"testing"

	"github.com/npillmayer/kage/core"
	"github.com/npillmayer/kage/core/glyph/glyphdb"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func store(t *testing.T, lines ...string) *glyphdb.Store {
	db, err := glyphdb.FromLines(lines)
	require.NoError(t, err)
	return db
}

func TestResolvePrimitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.resolve")
	defer teardown()
	//
	db := store(t,
		"u00041|alias1|99:0:0:0:0:0:0:u00042:0",
		"u00042|alias2|1:0:0:0:0:0",
	)
	r, err := Resolve(db, "u00042")
	require.NoError(t, err)
	assert.Equal(t, []string{"u00042"}, r.Names())
	assert.Equal(t, "alias2", r.Glyphs[0].Related)
}

func TestResolveComposite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.resolve")
	defer teardown()
	//
	db := store(t,
		"u00041|alias1|99:0:0:0:0:0:0:u00042:0",
		"u00042|alias2|1:0:0:0:0:0",
	)
	r, err := Resolve(db, "u00041")
	require.NoError(t, err)
	assert.Equal(t, "u00041", r.Root)
	assert.Equal(t, []string{"u00041", "u00042"}, r.Names())
	assert.Equal(t, 2, r.Len())
}

func TestResolveEmptyProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.resolve")
	defer teardown()
	//
	r, err := Resolve(store(t, "e||"), "e")
	require.NoError(t, err)
	assert.Equal(t, []string{"e"}, r.Names())
}

func TestResolvePreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.resolve")
	defer teardown()
	//
	db := store(t,
		"a||99:0:0:0:0:100:200:b$1:0:0:0:0:1:1$99:0:0:100:0:200:200:c",
		"b||99:0:0:0:0:200:100:d$99:0:0:0:100:200:200:e",
		"c||99:0:0:0:0:200:200:d",
		"d||1:0:0:10:10:20:20",
		"e||1:0:0:10:10:20:20",
	)
	r, err := Resolve(db, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d", "e", "c", "d"}, r.Names(),
		"pre-order, left to right, shared components listed each time")
	//
	r, err = Resolve(db, "a", Dedup())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d", "e", "c"}, r.Names())
}

func TestResolveSiblingReuse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.resolve")
	defer teardown()
	//
	db := store(t,
		"u6797||99:0:0:0:0:100:200:u6728$99:0:0:100:0:200:200:u6728",
		"u6728||1:0:0:20:50:180:50$1:0:0:100:10:100:190",
	)
	r, err := Resolve(db, "u6797")
	require.NoError(t, err)
	assert.Equal(t, []string{"u6797", "u6728", "u6728"}, r.Names())
}

func TestResolveMissingRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.resolve")
	defer teardown()
	//
	r, err := Resolve(store(t, "a||"), "u00098")
	assert.Nil(t, r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRootNotFound))
	assert.False(t, errors.Is(err, ErrMissingComponent))
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestResolveMissingComponent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.resolve")
	defer teardown()
	//
	db := store(t,
		"u00099|alias|99:0:0:0:0:0:0:u00098:0",
		"top||1:0:0:0:0:1:1$99:0:0:0:0:200:200:u00099",
	)
	_, err := Resolve(db, "u00099")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingComponent))
	assert.False(t, errors.Is(err, ErrRootNotFound))
	//
	_, err = Resolve(db, "top")
	require.Error(t, err, "a missing nested component fails the whole resolution")
	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "top", rerr.Root)
	assert.Equal(t, "u00098", rerr.Name)
	assert.Equal(t, []string{"top", "u00099", "u00098"}, rerr.Path)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Equal(t, "component glyph not found: u00098", core.UserMessage(err))
}

func TestResolveCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.resolve")
	defer teardown()
	//
	db := store(t,
		"a||99:0:0:0:0:200:200:b",
		"b||99:0:0:0:0:200:200:a",
		"self||99:0:0:0:0:200:200:self",
	)
	_, err := Resolve(db, "a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCycle))
	assert.Equal(t, core.ECYCLIC, core.Code(err))
	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, []string{"a", "b", "a"}, rerr.Path)
	//
	_, err = Resolve(db, "self")
	assert.True(t, errors.Is(err, ErrCycle))
	_, err = Resolve(db, "self", Dedup())
	assert.True(t, errors.Is(err, ErrCycle), "dedup must not hide cycles")
}

func TestResolveDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.resolve")
	defer teardown()
	//
	db := store(t,
		"a||99:0:0:0:0:200:200:b",
		"b||99:0:0:0:0:200:200:c",
		"c||1:0:0:0:0:1:1",
	)
	_, err := Resolve(db, "a", MaxDepth(2))
	assert.NoError(t, err)
	_, err = Resolve(db, "a", MaxDepth(1))
	assert.True(t, errors.Is(err, ErrTooDeep))
}

func TestResolveMalformedReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.resolve")
	defer teardown()
	//
	db := store(t, "a||1:0:0:0:0:1:1$99:0:0:0:0")
	_, err := Resolve(db, "a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedReference))
	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, []string{"a"}, rerr.Path)
	assert.Equal(t, core.EINVALID, rerr.ErrorCode())
}
