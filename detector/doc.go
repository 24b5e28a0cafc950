/*
Package detector keeps a text display in sync with its shaped form.

A Handler is attached to a single display. Once per tick of the host's update
loop it reads the display, decides whether the text is a new edit or just the
echo of its own output, and routes new edits through a shaping.Engine. During
typing animations, where text is revealed one character per frame, shaping is
deferred until the animation driver calls EndTypingEffect.

Handlers are single-threaded. All methods must be called from the goroutine
driving the ticks, which is usually the host's update loop. Writing shaped text
to a display may synchronously call back into the handler; such re-entrant
calls are ignored for the duration of a processing pass.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–25 Norbert Pillmayer <norbert@pillmayer.com>

*/
package detector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arabtext.detector'.
func tracer() tracing.Trace {
	return tracing.Select("arabtext.detector")
}
