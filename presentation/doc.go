/*
Package presentation implements a default shaper for Arabic text.

Shaper maps Arabic letters to their presentation forms from Unicode blocks
"Arabic Presentation Forms-A" and "Arabic Presentation Forms-B", according
to their joining behaviour, combines LAM+ALEF into the mandatory ligature,
and re-orders the result for display engines which place glyphs from left to
right only.

This is not a replacement for a real OpenType shaper. It will not consult a
font, will not position marks and ignores explicit bidi embeddings. It is,
however, what a lot of game engine text components need to display Arabic
at all.

Presentation form tables are not hard-coded, but derived from Unicode
character names and compatibility decompositions on first use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–25 Norbert Pillmayer <norbert@pillmayer.com>

*/
package presentation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arabtext.shaping'.
func tracer() tracing.Trace {
	return tracing.Select("arabtext.shaping")
}
