/*
Package resolve computes the full set of glyph records needed to render a
glyph: the glyph itself plus every component glyph it references, directly
or through nested composites.

Resolution is a depth-first, pre-order, left-to-right walk over the
references of the drawing programs. The root comes first, followed by the
components in encounter order. A component referenced more than once is
listed every time it is encountered, unless option Dedup is given.

Resolution fails as a whole if the root or any component is missing.
Failures are reported as *Error, which unwrap to one of the sentinel errors
of this package, so clients are able to tell a missing root
(ErrRootNotFound) from a missing component (ErrMissingComponent).

References forming a cycle are rejected: a glyph referencing one of its own
ancestors on the path from the root makes resolution fail with ErrCycle.
Re-using a component in sibling branches is fine. Additionally, the nesting
depth is bounded (ErrTooDeep).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package resolve

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'kage.resolve'
func tracer() tracing.Trace {
	return tracing.Select("kage.resolve")
}
