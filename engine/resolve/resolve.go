package resolve

import (
	"github.com/npillmayer/kage/core/glyph"
)

// DefaultMaxDepth is the default bound for the nesting of composite glyphs.
const DefaultMaxDepth = 64

// Lookup finds glyph records by name. *glyphdb.Store is a Lookup.
type Lookup interface {
	FindByName(name string) (*glyph.Record, bool)
}

// Resolution is the ordered set of glyph records needed to render a glyph.
// Glyphs[0] is the root glyph.
type Resolution struct {
	Root   string
	Glyphs []*glyph.Record
}

// Names returns the names of the resolved glyphs, in order.
func (r *Resolution) Names() []string {
	names := make([]string, len(r.Glyphs))
	for i, g := range r.Glyphs {
		names[i] = g.Name
	}
	return names
}

// Len is the number of resolved glyph records, including the root.
func (r *Resolution) Len() int {
	return len(r.Glyphs)
}

type config struct {
	maxDepth int
	dedup    bool
}

// Option configures a resolution.
type Option func(*config)

// Dedup lists every component only once, at its first occurrence.
func Dedup() Option {
	return func(c *config) {
		c.dedup = true
	}
}

// MaxDepth bounds the nesting depth of components. The root has depth 0.
// Values < 1 select DefaultMaxDepth.
func MaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// Resolve finds the glyph named root and all its components in db.
// It either returns a resolution with at least one glyph, or an *Error.
func Resolve(db Lookup, root string, opts ...Option) (*Resolution, error) {
	conf := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&conf)
	}
	if conf.maxDepth < 1 {
		conf.maxDepth = DefaultMaxDepth
	}
	w := &walker{
		db:     db,
		conf:   conf,
		root:   root,
		onPath: make(map[string]bool),
	}
	if conf.dedup {
		w.seen = make(map[string]bool)
	}
	if err := w.visit(root); err != nil {
		tracer().Debugf("%v", err)
		return nil, err
	}
	tracer().Debugf("resolved %s to %d glyphs", root, len(w.result))
	return &Resolution{Root: root, Glyphs: w.result}, nil
}

// walker holds the state of a single resolution.
type walker struct {
	db     Lookup
	conf   config
	root   string
	path   []string        // names from the root down to the current glyph
	onPath map[string]bool // set view of path
	seen   map[string]bool // for dedup only
	result []*glyph.Record
}

func (w *walker) visit(name string) error {
	g, ok := w.db.FindByName(name)
	if !ok {
		if len(w.path) == 0 {
			return w.fail(name, ErrRootNotFound)
		}
		return w.fail(name, ErrMissingComponent)
	}
	if w.onPath[name] {
		return w.fail(name, ErrCycle)
	}
	if len(w.path) > w.conf.maxDepth {
		return w.fail(name, ErrTooDeep)
	}
	if w.seen != nil {
		if w.seen[name] {
			return nil // subtree already listed
		}
		w.seen[name] = true
	}
	w.result = append(w.result, g)
	w.path = append(w.path, name)
	w.onPath[name] = true
	for _, s := range g.Strokes() {
		if !s.IsComposite() {
			continue
		}
		child, ok := s.Reference()
		if !ok {
			w.path = w.path[:len(w.path)-1]
			return w.fail(name, ErrMalformedReference)
		}
		if err := w.visit(child); err != nil {
			return err
		}
	}
	w.path = w.path[:len(w.path)-1]
	delete(w.onPath, name)
	return nil
}

func (w *walker) fail(name string, reason error) error {
	path := make([]string, len(w.path), len(w.path)+1)
	copy(path, w.path)
	path = append(path, name)
	return &Error{
		Root:   w.root,
		Name:   name,
		Path:   path,
		Reason: reason,
	}
}
