/*
Package batch renders a selection of glyphs from a glyph store into image
files.

For every candidate name the driver resolves the glyph and its components,
hands the resolved set to a renderer and writes the renderer's document to
<output-dir>/<name>.<ext>. Candidates are independent of each other and are
processed by a bounded pool of workers.

A candidate which cannot be resolved, rendered or written is skipped: no
file is produced for it, the reason is logged and recorded in the run's
report, and the run continues. Files are written atomically, so a skipped
candidate never leaves a partial file behind. Conditions concerning the run
as a whole, such as a missing output directory, abort the run.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package batch

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'kage.batch'
func tracer() tracing.Trace {
	return tracing.Select("kage.batch")
}
