/*
Package glyphdb holds the glyph store, an index over all glyph records of a
glyph dump.

A store is built once, in full, from the lines of a dump file. After
construction it is read-only and may be queried from any number of
goroutines without further synchronization.

Dump files carry one glyph per line, with three fields separated by '|':

	name|related|data

Fields are trimmed of surrounding white space. There is no escaping of '|'.
Lines with fewer than three fields make loading fail, as a corrupt dump is a
configuration error rather than a problem of single glyphs. Dumps exported as
psql tables may be loaded with option SkipDecoration, which ignores the table
header, separator lines and the row count footer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package glyphdb

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'kage.db'
func tracer() tracing.Trace {
	return tracing.Select("kage.db")
}
