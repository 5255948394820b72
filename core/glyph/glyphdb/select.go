package glyphdb

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/npillmayer/kage/core"
)

// Selector decides which glyphs of a store are candidates of a run.
type Selector interface {
	Match(name string) bool
	String() string
}

// Select returns the names of all glyphs matched by sel, in store order.
// Prefix selectors are served from the store's prefix index.
func (db *Store) Select(sel Selector) []string {
	if p, ok := sel.(prefixSelector); ok {
		return db.selectPrefix(string(p))
	}
	var names []string
	for _, name := range db.Names() {
		if sel.Match(name) {
			names = append(names, name)
		}
	}
	tracer().Debugf("%s selects %d of %d glyphs", sel, len(names), db.Len())
	return names
}

func (db *Store) selectPrefix(prefix string) []string {
	if prefix == "" {
		return db.Names()
	}
	found := db.prefixIndex().PrefixSearch(prefix)
	// trie order is arbitrary, restore insertion order
	pos := make(map[string]int, len(found))
	for i, name := range db.Names() {
		pos[name] = i
	}
	names := make([]string, 0, len(found))
	for _, name := range found {
		if _, ok := pos[name]; ok {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return pos[names[i]] < pos[names[j]]
	})
	tracer().Debugf("prefix %q selects %d of %d glyphs", prefix, len(names), db.Len())
	return names
}

// --- Selectors -------------------------------------------------------------

type patternSelector struct {
	re *regexp.Regexp
}

// Pattern selects glyph names matching a regular expression.
func Pattern(expr string) (Selector, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid glyph name pattern %q", expr)
	}
	return patternSelector{re: re}, nil
}

func (p patternSelector) Match(name string) bool {
	return p.re.MatchString(name)
}

func (p patternSelector) String() string {
	return fmt.Sprintf("pattern /%s/", p.re)
}

type prefixSelector string

// Prefix selects glyph names starting with a fixed prefix.
func Prefix(prefix string) Selector {
	return prefixSelector(prefix)
}

func (p prefixSelector) Match(name string) bool {
	return strings.HasPrefix(name, string(p))
}

func (p prefixSelector) String() string {
	return fmt.Sprintf("prefix %q", string(p))
}

// Presets are the selections commonly used with GlyphWiki dumps.
//
//	unicode   glyphs named after a Unicode code point, e.g. "u4e00"
//	dkw       glyphs numbered after the Dai Kan-Wa jiten, e.g. "dkw-00001"
var Presets = map[string]string{
	"unicode": `^u[0-9a-f]{5}$`,
	"dkw":     `^dkw-`,
}

// Preset returns the selector of a named preset.
func Preset(name string) (Selector, error) {
	switch name {
	case "dkw":
		return Prefix("dkw-"), nil
	}
	if expr, ok := Presets[name]; ok {
		return Pattern(expr)
	}
	return nil, core.Error(core.EINVALID, "unknown glyph selection preset %q", name)
}
