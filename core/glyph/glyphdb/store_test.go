package glyphdb

import (
	"strings"
	"testing"

	"github.com/npillmayer/kage/core"
	"github.com/npillmayer/kage/core/glyph"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type StoreTestEnviron struct {
	suite.Suite
	db *Store
}

var dump = []string{
	"u00041|alias1|99:0:0:0:0:0:0:u00042:0",
	" u00042 | alias2 | 1:0:0:0:0:0 ",
	"dkw-00001|u4e00|1:0:0:20:100:180:100",
	"dkw-00002||",
	"u4e00-j|u4e00|1:0:0:20:100:180:100",
	"U00043|upper|1:0:0:0:0:0",
}

func TestStoreFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.db")
	defer teardown()
	suite.Run(t, new(StoreTestEnviron))
}

func (env *StoreTestEnviron) SetupSuite() {
	var err error
	env.db, err = FromLines(dump)
	env.Require().NoError(err)
}

// --- Tests -----------------------------------------------------------------

func (env *StoreTestEnviron) TestFindByName() {
	g, ok := env.db.FindByName("u00042")
	env.Require().True(ok)
	env.Equal("u00042", g.Name)
	env.Equal("alias2", g.Related, "fields should be trimmed")
	env.Equal("1:0:0:0:0:0", g.Data, "fields should be trimmed")
	//
	g, ok = env.db.FindByName("dkw-00002")
	env.Require().True(ok)
	env.Equal("", g.Data, "empty drawing program is valid")
}

func (env *StoreTestEnviron) TestFindByNameMissing() {
	g, ok := env.db.FindByName("u00098")
	env.False(ok)
	env.Nil(g)
	_, ok = env.db.FindByName("u00043")
	env.False(ok, "lookup should be case-sensitive")
}

func (env *StoreTestEnviron) TestNamesInInsertionOrder() {
	env.Equal(len(dump), env.db.Len())
	env.Equal([]string{"u00041", "u00042", "dkw-00001", "dkw-00002", "u4e00-j", "U00043"}, env.db.Names())
	count := 0
	env.db.Each(func(*glyph.Record) bool { count++; return count < 2 })
	env.Equal(2, count, "Each should stop when f returns false")
}

func (env *StoreTestEnviron) TestSelectUnicode() {
	sel, err := Preset("unicode")
	env.Require().NoError(err)
	env.Equal([]string{"u00041", "u00042"}, env.db.Select(sel))
}

func (env *StoreTestEnviron) TestSelectPrefix() {
	sel, err := Preset("dkw")
	env.Require().NoError(err)
	env.Equal([]string{"dkw-00001", "dkw-00002"}, env.db.Select(sel))
	env.Equal([]string{"u00041", "u00042", "u4e00-j"}, env.db.Select(Prefix("u")))
	env.Empty(env.db.Select(Prefix("x")))
	env.Equal(env.db.Len(), len(env.db.Select(Prefix(""))))
}

func (env *StoreTestEnviron) TestSelectPattern() {
	sel, err := Pattern(`-j$`)
	env.Require().NoError(err)
	env.Equal([]string{"u4e00-j"}, env.db.Select(sel))
	_, err = Pattern(`(`)
	env.Error(err)
	env.Equal(core.EINVALID, core.Code(err))
	_, err = Preset("nope")
	env.Error(err)
}

// --- Loading ---------------------------------------------------------------

func TestLoadMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.db")
	defer teardown()
	//
	_, err := Load(strings.NewReader("a|b|c\nbroken|line\nx|y|z\n"))
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Contains(t, core.UserMessage(err), "line 2")
}

func TestLoadDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.db")
	defer teardown()
	//
	db, err := Load(strings.NewReader("a|1|first\nb|2|x\na|3|second\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, db.Len())
	g, _ := db.FindByName("a")
	assert.Equal(t, "second", g.Data, "last write should win")
	assert.Equal(t, []string{"a", "b"}, db.Names(), "duplicate keeps its first position")
}

func TestLoadExtraFieldsAndBOM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.db")
	defer teardown()
	//
	db, err := Load(strings.NewReader("\ufeffa|b|c|d\n"))
	require.NoError(t, err)
	g, ok := db.FindByName("a")
	require.True(t, ok, "byte order mark should be stripped from the first name")
	assert.Equal(t, "c", g.Data, "fields beyond the third are ignored")
}

func TestLoadPsqlDecoration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.db")
	defer teardown()
	//
	table := ` name   | related | data
--------+---------+-----------------------
 u00041 | alias1  | 99:0:0:0:0:0:0:u00042:0
 u00042 | alias2  | 1:0:0:0:0:0

(2 rows)
`
	_, err := Load(strings.NewReader(table))
	assert.Error(t, err, "decoration is malformed input by default")
	//
	db, err := Load(strings.NewReader(table), SkipDecoration())
	require.NoError(t, err)
	assert.Equal(t, []string{"u00041", "u00042"}, db.Names())
	//
	_, err = Load(strings.NewReader(table+"garbage\n"), SkipDecoration())
	assert.Error(t, err, "non-decoration garbage still fails")
}

func TestLoadFileMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kage.db")
	defer teardown()
	//
	_, err := LoadFile("does/not/exist.txt")
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}
