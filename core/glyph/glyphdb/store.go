package glyphdb

import (
	"sync"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/kage/core/glyph"
)

// Store is an index of glyph records, keyed by glyph name.
// Insertion order of names is kept.
type Store struct {
	glyphs     *linkedhashmap.Map // name -> *glyph.Record
	prefixes   *trie.Trie         // built on first prefix query
	prefixOnce sync.Once
}

func newStore() *Store {
	return &Store{
		glyphs: linkedhashmap.New(),
	}
}

// put stores a record. For an existing name the record is replaced, but the
// name keeps its original position.
func (db *Store) put(g *glyph.Record) {
	if _, exists := db.glyphs.Get(g.Name); exists {
		tracer().Debugf("duplicate glyph %s, last one wins", g.Name)
	}
	db.glyphs.Put(g.Name, g)
}

// FindByName looks up a glyph by its exact name. A missing glyph is not an
// error; FindByName then returns false.
func (db *Store) FindByName(name string) (*glyph.Record, bool) {
	v, ok := db.glyphs.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*glyph.Record), true
}

// Len returns the number of glyphs in the store.
func (db *Store) Len() int {
	return db.glyphs.Size()
}

// Names returns all glyph names in insertion order.
func (db *Store) Names() []string {
	names := make([]string, 0, db.glyphs.Size())
	for _, k := range db.glyphs.Keys() {
		names = append(names, k.(string))
	}
	return names
}

// Each calls f for every glyph in insertion order, until f returns false.
func (db *Store) Each(f func(*glyph.Record) bool) {
	it := db.glyphs.Iterator()
	for it.Next() {
		if !f(it.Value().(*glyph.Record)) {
			return
		}
	}
}

// prefixIndex returns a trie over all glyph names. It is created on first use.
func (db *Store) prefixIndex() *trie.Trie {
	db.prefixOnce.Do(func() {
		t := trie.New()
		for _, name := range db.Names() {
			t.Add(name, nil)
		}
		db.prefixes = t
		tracer().Debugf("prefix index over %d glyph names created", db.Len())
	})
	return db.prefixes
}
