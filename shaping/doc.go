/*
Package shaping transforms raw text into shaped, or safely degraded, output.

The engine of this package does not know how to shape Arabic text itself.
It relies on an external Shaper, which is treated as a black box and may
fail on malformed input. What the engine adds is the decision whether to
call the shaper at all, and a strategy for failure:

▪︎ Text without any code-point of the target script is passed through
unaltered and the shaper is never called.

▪︎ If the shaper fails with an error of class ErrUnshapeable (or panics with
an index or slice bounds error), and the client permits skipping of
unshapeable characters, the text is shaped one character at a time.
Characters which still fail are kept as they are.

▪︎ Any other failure results in the original text, never in a half-shaped
string.

Engine.Process never panics and never returns an error; errors are reported
as part of the Outcome for diagnostic purposes.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–25 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shaping

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arabtext.shaping'.
func tracer() tracing.Trace {
	return tracing.Select("arabtext.shaping")
}
