/*
Package arabtext is about keeping Arabic text in live text displays readable.

Description

Many text rendering engines, especially the ones found in game engines and
embedded UI toolkits, know nothing about the Arabic script. They will place
code-points from left to right, in logical order, and in their nominal form.
Arabic, however, is written right to left, and letters change their shape
depending on whether they are connected to their neighbours. Without help,
a display will show a string of isolated letters in reverse order.

Package arabtext and its sub-packages detect text containing Arabic script,
reshape it into visually correct presentation form (letter joining,
directionality, optional diacritics and optional native digits), and keep a
display synchronized while its text changes over time. The latter is the
interesting part: a display which has been fixed once will show our own
output when polled next time, and we must never shape that output again,
as this would corrupt the glyph order. Typing-effect animations
complicate things further, as text will arrive one character at a time.

BSD License

Copyright (c) 2021–25, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Base package arabtext defines the set of code-points considered to be the
"target script", i.e. text which needs reshaping. The default comprises the
Unicode blocks

   0600..06FF  Arabic
   0750..077F  Arabic Supplement
   08A0..08FF  Arabic Extended-A
   FB50..FDFF  Arabic Presentation Forms-A
   FE70..FEFF  Arabic Presentation Forms-B

Clients may select other blocks by name (see BlockRanges).

Sub-package shaping holds the shaping engine. It classifies text, calls an
external shaper and degrades gracefully if the shaper fails, first by
retrying character by character, finally by falling back to unshaped text.
The engine never panics and always returns a displayable string.

Sub-package presentation provides a default shaper, mapping Arabic letters
to their Unicode presentation forms and re-ordering text for left-to-right
display engines.

Sub-package detector is the driver. A Handler polls a display once per tick,
decides whether the text has changed in a way which requires reprocessing,
suppresses feedback loops and defers processing during typing animations.

Sub-package attach attaches handlers to all the displays of a scene.

Sub-package config provides configuration defaults, partly derived from the
user's environment.
*/
package arabtext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arabtext.ranges'.
func tracer() tracing.Trace {
	return tracing.Select("arabtext.ranges")
}
