package shaping

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Shaper is the external shaping algorithm. It transforms a string in logical
// order into its presentation form.
//
// Shapers signal input they cannot handle by an error wrapping ErrUnshapeable.
// Any other error is considered unrecoverable.
type Shaper interface {
	Fix(text string, showDiacritics, useNativeDigits bool) (string, error)
}

// ShaperFunc is an adapter to use ordinary functions as Shapers.
type ShaperFunc func(text string, showDiacritics, useNativeDigits bool) (string, error)

// Fix calls f(text, showDiacritics, useNativeDigits).
func (f ShaperFunc) Fix(text string, showDiacritics, useNativeDigits bool) (string, error) {
	return f(text, showDiacritics, useNativeDigits)
}

// Engine drives a Shaper. An engine does not hold any state besides
// the shaper and may be shared.
type Engine struct {
	shaper Shaper
}

// NewEngine creates a shaping engine for a shaper.
func NewEngine(shaper Shaper) *Engine {
	return &Engine{shaper: shaper}
}

// Process transforms raw text into the text to display.
//
// Text not containing the target script results in Unshaped(raw), without
// consulting the shaper. Otherwise the result is either Success, a
// PartialWithFallback from character-level retry, or Unshaped(raw) with the
// error that prevented shaping.
func (e *Engine) Process(raw string, opts Options) Outcome {
	if !Classify(raw, opts) {
		return unshaped(raw, nil)
	}
	shaped, err := e.fix(raw, opts)
	if err == nil {
		return success(shaped)
	}
	if opts.LogErrors {
		tracer().Errorf("failed to process text %q: %v", raw, err)
	}
	if IsUnshapeable(err) && opts.SkipUnshapeable {
		return e.processUnits(raw, opts, err)
	}
	return unshaped(raw, err)
}

// processUnits shapes text one UTF-8 encoded code-point at a time. Bytes which
// are not valid UTF-8 are treated as units of their own.
func (e *Engine) processUnits(raw string, opts Options, cause error) Outcome {
	var b strings.Builder
	b.Grow(len(raw) * 2)
	failed := 0
	for i := 0; i < len(raw); {
		_, size := utf8.DecodeRuneInString(raw[i:])
		unit := raw[i : i+size]
		i += size
		if !Classify(unit, opts) {
			b.WriteString(unit)
			continue
		}
		shaped, err := e.fix(unit, opts)
		if err != nil {
			failed++
			b.WriteString(unit)
			if opts.LogErrors {
				tracer().Infof("skipped problematic character %q (%s)", unit, codepoints(unit))
			}
			continue
		}
		b.WriteString(shaped)
	}
	tracer().Debugf("character-level retry left %d unit(s) unshaped", failed)
	return partial(b.String(), failed, cause)
}

// fix calls the shaper, converting panics into errors.
func (e *Engine) fix(text string, opts Options) (shaped string, err error) {
	if e == nil || e.shaper == nil {
		return "", ErrNoShaper
	}
	defer func() {
		if r := recover(); r != nil {
			err = errorFromPanic(r)
		}
	}()
	return e.shaper.Fix(text, opts.ShowDiacritics, opts.UseNativeDigits)
}

func codepoints(unit string) string {
	if r, size := utf8.DecodeRuneInString(unit); r != utf8.RuneError || size > 1 {
		return fmt.Sprintf("%U", r)
	}
	return fmt.Sprintf("byte %#02x", unit[0])
}
