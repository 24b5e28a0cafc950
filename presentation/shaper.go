package presentation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/arabtext/shaping"
)

// Shaper is the default shaping.Shaper of this module.
type Shaper struct {
	// KeepLogicalOrder suppresses re-ordering for display. Set it for display
	// engines which do their own bidi processing.
	KeepLogicalOrder bool
}

var _ shaping.Shaper = (*Shaper)(nil)

// New creates a shaper which outputs presentation forms in visual order.
func New() *Shaper {
	return &Shaper{}
}

// Fix shapes text. Lines are re-ordered separately.
//
// Input which is not valid UTF-8 results in an error wrapping
// shaping.ErrUnshapeable.
func (s *Shaper) Fix(text string, showDiacritics, useNativeDigits bool) (string, error) {
	if i := invalidUTF8At(text); i >= 0 {
		return "", fmt.Errorf("%w: invalid UTF-8 at byte %d", shaping.ErrUnshapeable, i)
	}
	loadPresentationForms()
	buf := borrowBuffer()
	defer buf.release()
	for _, r := range text {
		if !showDiacritics && isDiacritic(r) {
			continue
		}
		if useNativeDigits {
			r = nativeDigit(r)
		}
		buf.in = append(buf.in, r)
	}
	buf.shaped, buf.types = applyJoining(buf.in, buf.shaped[:0], buf.types)
	if s != nil && s.KeepLogicalOrder {
		return string(buf.shaped), nil
	}
	var b strings.Builder
	b.Grow(len(text) * 2)
	start := 0
	for i := 0; i <= len(buf.shaped); i++ {
		if i < len(buf.shaped) && buf.shaped[i] != '\n' {
			continue
		}
		buf.line = visualOrder(buf.shaped[start:i], buf.line[:0])
		b.WriteString(string(buf.line))
		if i < len(buf.shaped) {
			b.WriteByte('\n')
		}
		start = i + 1
	}
	return b.String(), nil
}

func invalidUTF8At(text string) int {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
