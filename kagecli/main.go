/*
Command kagecli renders glyphs of a GlyphWiki-style glyph dump.

	kagecli render --dump dump_newest_only.txt --out images/svg --preset unicode
	kagecli list --prefix dkw-
	kagecli resolve u6797 u4e00
	kagecli inspect

Every glyph selected from the dump is resolved together with its component
glyphs and rendered to <out>/<name>.svg (or .png). Glyphs which cannot be
resolved are skipped and counted. Configuration may also be given in a file
kage.yaml or as environment variables KAGE_DUMP, KAGE_OUTPUT_DIR, etc.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"os"

	"github.com/npillmayer/kage/core"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'kage.cli'
func tracer() tracing.Trace {
	return tracing.Select("kage.cli")
}

// tracing keys of all packages
var traceKeys = []string{
	"kage.cli", "kage.glyph", "kage.db", "kage.resolve", "kage.batch", "kage.render",
}

func main() {
	initDisplay()
	if err := rootCommand().Execute(); err != nil {
		core.UserError(err)
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// initTracing routes all tracers to the Go logger, at the given level
// (Debug, Info or Error).
func initTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot configure tracing")
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
