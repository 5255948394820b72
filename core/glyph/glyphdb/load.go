package glyphdb

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/npillmayer/kage/core"
	"github.com/npillmayer/kage/core/glyph"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FieldSeparator separates the fields of a dump line.
const FieldSeparator = "|"

// maxLineLength bounds the length of a single dump line.
const maxLineLength = 16 * 1024 * 1024

type loader struct {
	skipDecoration bool
}

// Option configures loading of a dump.
type Option func(*loader)

// SkipDecoration makes the loader ignore the decoration of psql table output:
// blank lines, the header line, separator lines and the row count footer.
// Other malformed lines still make loading fail.
func SkipDecoration() Option {
	return func(l *loader) {
		l.skipDecoration = true
	}
}

// LoadFile reads a glyph dump from a file.
func LoadFile(path string, opts ...Option) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open glyph dump %s", path)
	}
	defer f.Close()
	db, err := Load(f, opts...)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded %d glyphs from %s", db.Len(), path)
	return db, nil
}

// Load reads a glyph dump, one glyph per line. Input is expected to be UTF-8;
// a leading byte order mark is dropped.
func Load(r io.Reader, opts ...Option) (*Store, error) {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}
	db := newStore()
	utf8 := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(utf8)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if err := l.addLine(db, scanner.Text(), lineno); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read glyph dump (line %d)", lineno+1)
	}
	return db, nil
}

// FromLines builds a store from dump lines.
func FromLines(lines []string, opts ...Option) (*Store, error) {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}
	db := newStore()
	for i, line := range lines {
		if err := l.addLine(db, line, i+1); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func (l *loader) addLine(db *Store, line string, lineno int) error {
	if l.skipDecoration && isDecoration(line) {
		tracer().Debugf("skipping decoration in line %d", lineno)
		return nil
	}
	g, err := ParseLine(line)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "malformed glyph record in line %d", lineno)
	}
	if l.skipDecoration && lineno <= 2 && isHeader(g) {
		return nil
	}
	db.put(g)
	return nil
}

// ParseLine splits a dump line into a glyph record. Fields are trimmed.
// Fields beyond the third are ignored.
func ParseLine(line string) (*glyph.Record, error) {
	fields := strings.Split(line, FieldSeparator)
	if len(fields) < 3 {
		return nil, core.Error(core.EINVALID, "expected 3 fields separated by '|', have %d", len(fields))
	}
	return glyph.New(
		strings.TrimSpace(fields[0]),
		strings.TrimSpace(fields[1]),
		strings.TrimSpace(fields[2]),
	), nil
}

var (
	separatorLine = regexp.MustCompile(`^\s*[-+]+\s*$`)
	rowCountLine  = regexp.MustCompile(`^\s*\(\d+ rows?\)\s*$`)
)

func isDecoration(line string) bool {
	return strings.TrimSpace(line) == "" || separatorLine.MatchString(line) ||
		rowCountLine.MatchString(line)
}

func isHeader(g *glyph.Record) bool {
	return g.Name == "name" && g.Related == "related" && g.Data == "data"
}
