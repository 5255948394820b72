/*
Package glyph defines glyph records and their drawing programs.

A glyph record is one entry of a glyph dump: a unique name, an opaque
"related" field and the glyph's drawing program. Drawing programs are
written in the KAGE notation: a sequence of stroke records, separated by '$',
each stroke record being a sequence of fields separated by ':'.

	1:0:0:20:100:180:100$99:0:0:0:0:200:200:u00042:0:0:0

Field 0 classifies a stroke. A stroke whose type field starts with "99" is a
composite reference: it pulls in another glyph as a sub-component, which is
named in field 7. All other strokes are primitive strokes; their remaining
fields are coordinates interpreted by a renderer only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package glyph

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'kage.glyph'
func tracer() tracing.Trace {
	return tracing.Select("kage.glyph")
}
