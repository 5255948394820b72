package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/npillmayer/kage/core"
	"github.com/npillmayer/kage/core/glyph"
	"github.com/npillmayer/kage/engine/resolve"
	"golang.org/x/sync/errgroup"
)

// Renderer turns a resolved glyph into an image document.
type Renderer interface {
	Render(root string, glyphs []*glyph.Record) ([]byte, error)
	Extension() string
}

// Progress is informed about the progress of a run. Calls are serialized by
// the driver.
type Progress interface {
	Start(total int)
	Increment()
	Stop()
}

// Config configures a batch run.
type Config struct {
	OutputDir string           // has to exist
	Workers   int              // < 1 selects the number of CPUs
	Resolve   []resolve.Option // options for resolving candidates
	Progress  Progress         // optional
}

// ErrOutputDir flags a missing or unusable output directory. It aborts a run.
var ErrOutputDir = errors.New("output directory not usable")

// ErrUnsafeName flags glyph names which cannot be used as file names.
var ErrUnsafeName = errors.New("glyph name not usable as file name")

// Driver renders candidates of a glyph store.
type Driver struct {
	db       resolve.Lookup
	renderer Renderer
	conf     Config
	mx       sync.Mutex // guards report and progress during a run
}

// New creates a driver. The store db has to be completely loaded.
func New(db resolve.Lookup, renderer Renderer, conf Config) (*Driver, error) {
	if db == nil || renderer == nil {
		return nil, core.Error(core.EINTERNAL, "batch driver needs a glyph store and a renderer")
	}
	if conf.OutputDir == "" {
		return nil, core.Error(core.EINVALID, "no output directory configured")
	}
	if conf.Workers < 1 {
		conf.Workers = runtime.NumCPU()
	}
	return &Driver{db: db, renderer: renderer, conf: conf}, nil
}

// Run processes all candidates. Skipped candidates do not make Run fail;
// they are listed in the report. Run returns an error if the run has been
// aborted, in which case the report covers the candidates processed so far.
func (d *Driver) Run(ctx context.Context, candidates []string) (*Report, error) {
	start := time.Now()
	report := &Report{Candidates: len(candidates)}
	if err := d.checkOutputDir(); err != nil {
		report.finish(time.Since(start), true)
		return report, err
	}
	tracer().Infof("rendering %d glyphs to %s with %d workers", len(candidates),
		d.conf.OutputDir, d.conf.Workers)
	if d.conf.Progress != nil {
		d.conf.Progress.Start(len(candidates))
	}
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(d.conf.Workers)
	for _, name := range candidates {
		if gctx.Err() != nil {
			break
		}
		name := name
		group.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			path, err := d.process(name)
			d.mx.Lock()
			defer d.mx.Unlock()
			if d.conf.Progress != nil {
				d.conf.Progress.Increment()
			}
			if errors.Is(err, ErrOutputDir) {
				return err
			}
			if err != nil {
				tracer().Infof("skipping %s: %v", name, err)
				report.Skipped = append(report.Skipped, Skip{Name: name, Err: err})
				return nil
			}
			report.Rendered = append(report.Rendered, path)
			return nil
		})
	}
	err := group.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if d.conf.Progress != nil {
		d.conf.Progress.Stop()
	}
	report.finish(time.Since(start), err != nil)
	if err != nil {
		tracer().Errorf("run aborted: %v", err)
		return report, err
	}
	tracer().Infof("%s", report.Summary())
	return report, nil
}

// process resolves, renders and writes a single candidate. It returns the
// path of the file written.
func (d *Driver) process(name string) (string, error) {
	if !safeName(name) {
		return "", fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}
	res, err := resolve.Resolve(d.db, name, d.conf.Resolve...)
	if err != nil {
		return "", err
	}
	doc, err := d.renderer.Render(name, res.Glyphs)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	path := d.OutputPath(name)
	if err := d.write(path, doc); err != nil {
		return "", err
	}
	tracer().Debugf("wrote %s (%d glyphs)", path, res.Len())
	return path, nil
}

// OutputPath is the path of the file for glyph name.
func (d *Driver) OutputPath(name string) string {
	return filepath.Join(d.conf.OutputDir, name+"."+d.renderer.Extension())
}

func (d *Driver) checkOutputDir() error {
	fi, err := os.Stat(d.conf.OutputDir)
	if err != nil {
		return core.WrapError(fmt.Errorf("%w: %v", ErrOutputDir, err), core.EMISSING,
			"output directory %s does not exist", d.conf.OutputDir)
	}
	if !fi.IsDir() {
		return core.WrapError(ErrOutputDir, core.EINVALID,
			"output path %s is not a directory", d.conf.OutputDir)
	}
	return nil
}

func safeName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\\x00")
}
