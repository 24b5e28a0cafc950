package shaping

import (
	"github.com/npillmayer/arabtext"
)

// Options control classification and shaping of text.
type Options struct {
	ShowDiacritics  bool // keep diacritics (tashkeel) in the output
	UseNativeDigits bool // substitute ASCII digits by Arabic-Indic digits
	SkipUnshapeable bool // retry character by character if the shaper fails on bounds
	BypassDetection bool // treat every string as containing the target script
	LogErrors       bool // trace shaping errors and skipped characters

	// ScriptRanges define the target script. If empty,
	// arabtext.DefaultScriptRanges() is used.
	ScriptRanges arabtext.ScriptRanges
}

// DefaultOptions returns the options the engine uses unless told otherwise:
// diacritics are shown, digits are left alone, unshapeable characters are
// skipped and errors are logged.
func DefaultOptions() Options {
	return Options{
		ShowDiacritics:  true,
		SkipUnshapeable: true,
		LogErrors:       true,
		ScriptRanges:    arabtext.DefaultScriptRanges(),
	}
}

func (opts Options) ranges() arabtext.ScriptRanges {
	if opts.ScriptRanges.IsEmpty() {
		return arabtext.DefaultScriptRanges()
	}
	return opts.ScriptRanges
}

// Classify returns true if text is considered to contain the target script.
// This is always the case if BypassDetection is set, except for the empty string.
func Classify(text string, opts Options) bool {
	if text == "" {
		return false
	}
	if opts.BypassDetection {
		return true
	}
	return opts.ranges().ContainsAny(text)
}
