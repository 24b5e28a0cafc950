package shaping

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/arabtext"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// --- ad hoc shapers for testing purposes ----------------------------------

// bracketShaper wraps its input in brackets and counts calls.
type bracketShaper struct {
	calls int
	// failure to produce for inputs longer than one rune
	failLong error
	// failure to produce for single runes contained in failRunes
	failRunes string
}

func (bs *bracketShaper) Fix(text string, showDiacritics, useNativeDigits bool) (string, error) {
	bs.calls++
	if bs.failLong != nil && utf8.RuneCountInString(text) > 1 {
		return "", bs.failLong
	}
	if bs.failRunes != "" && strings.Contains(bs.failRunes, text) {
		return "", fmt.Errorf("%w: cannot shape %q", ErrUnshapeable, text)
	}
	return "<" + text + ">", nil
}

func boundsPanic(text string) (string, error) {
	runes := []rune(text)
	return string(runes[len(runes)]), nil // index out of range
}

// ----------------------------------------------------------------------

func TestNonTargetPassThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.shaping")
	defer teardown()
	//
	bs := &bracketShaper{}
	engine := NewEngine(bs)
	opts := Options{SkipUnshapeable: true}
	for _, s := range []string{"Hello", "", "Dvořák 1234", "שלום", "\xff\xfe"} {
		outcome := engine.Process(s, opts)
		if outcome.Kind != Unshaped || outcome.Text != s || outcome.Err != nil {
			t.Errorf("expected Unshaped(%q), have %v", s, outcome)
		}
	}
	if bs.calls != 0 {
		t.Errorf("expected shaper not to be called for non-target text, was called %d times", bs.calls)
	}
}

func TestWholeStringSuccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.shaping")
	defer teardown()
	//
	engine := NewEngine(&bracketShaper{})
	outcome := engine.Process("Hello م", DefaultOptions())
	if outcome.Kind != Success {
		t.Fatalf("expected Success, have %v", outcome)
	}
	if outcome.Text != "<Hello م>" {
		t.Errorf("expected shaped text '<Hello م>', have %q", outcome.Text)
	}
}

func TestBoundsErrorRetry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.shaping")
	defer teardown()
	//
	bs := &bracketShaper{failLong: fmt.Errorf("%w: index 7", ErrUnshapeable)}
	engine := NewEngine(bs)
	outcome := engine.Process("ab سل", Options{SkipUnshapeable: true})
	if outcome.Kind != PartialWithFallback {
		t.Fatalf("expected PartialWithFallback, have %v", outcome)
	}
	if outcome.FailedUnits != 0 {
		t.Errorf("expected 0 failed units, have %d", outcome.FailedUnits)
	}
	if outcome.Text != "ab <س><ل>" {
		t.Errorf("expected only Arabic units to be shaped, have %q", outcome.Text)
	}
	if !IsUnshapeable(outcome.Err) {
		t.Errorf("expected outcome to report the whole-string error, have %v", outcome.Err)
	}
	if bs.calls != 3 { // whole string + 2 Arabic units
		t.Errorf("expected shaper to be called 3 times, was called %d times", bs.calls)
	}
}

func TestBoundsErrorNoSkip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.shaping")
	defer teardown()
	//
	bs := &bracketShaper{failLong: fmt.Errorf("%w: index 7", ErrUnshapeable)}
	engine := NewEngine(bs)
	outcome := engine.Process("سلام", Options{SkipUnshapeable: false})
	if outcome.Kind != Unshaped || outcome.Text != "سلام" {
		t.Errorf("expected Unshaped with original text, have %v", outcome)
	}
	if !IsUnshapeable(outcome.Err) {
		t.Errorf("expected error to be reported, have %v", outcome.Err)
	}
}

func TestOtherErrorNeverRetried(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.shaping")
	defer teardown()
	//
	failure := errors.New("font missing")
	bs := &bracketShaper{failLong: failure}
	engine := NewEngine(bs)
	outcome := engine.Process("سلام", Options{SkipUnshapeable: true, LogErrors: true})
	if outcome.Kind != Unshaped || outcome.Text != "سلام" {
		t.Errorf("expected Unshaped with original text, have %v", outcome)
	}
	if !errors.Is(outcome.Err, failure) {
		t.Errorf("expected error 'font missing', have %v", outcome.Err)
	}
	if bs.calls != 1 {
		t.Errorf("expected no retry, shaper has been called %d times", bs.calls)
	}
}

func TestPerUnitFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.shaping")
	defer teardown()
	//
	bs := &bracketShaper{
		failLong:  fmt.Errorf("%w: index 7", ErrUnshapeable),
		failRunes: "ل",
	}
	engine := NewEngine(bs)
	raw := "سلام ل"
	outcome := engine.Process(raw, Options{SkipUnshapeable: true, LogErrors: true})
	if outcome.Kind != PartialWithFallback {
		t.Fatalf("expected PartialWithFallback, have %v", outcome)
	}
	if outcome.FailedUnits != 2 {
		t.Errorf("expected 2 failed units, have %d", outcome.FailedUnits)
	}
	if outcome.Text != "<س>ل<ا><م> ل" {
		t.Errorf("expected failed units to be kept verbatim, have %q", outcome.Text)
	}
	targets := 0
	for _, r := range raw {
		if arabtext.DefaultScriptRanges().Contains(r) {
			targets++
		}
	}
	if outcome.FailedUnits > targets {
		t.Errorf("failed units %d exceed target-script units %d", outcome.FailedUnits, targets)
	}
}

func TestPanickingShaper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.shaping")
	defer teardown()
	//
	engine := NewEngine(ShaperFunc(func(text string, _, _ bool) (string, error) {
		return boundsPanic(text)
	}))
	outcome := engine.Process("x سل", Options{SkipUnshapeable: true})
	if outcome.Kind != PartialWithFallback {
		t.Fatalf("expected bounds panic to trigger retry, have %v", outcome)
	}
	if outcome.FailedUnits != 2 || outcome.Text != "x سل" {
		t.Errorf("expected both Arabic units to fail and be kept, have %v", outcome)
	}
	//
	engine = NewEngine(ShaperFunc(func(text string, _, _ bool) (string, error) {
		panic("something else")
	}))
	outcome = engine.Process("سل", Options{SkipUnshapeable: true})
	if outcome.Kind != Unshaped || outcome.Text != "سل" {
		t.Errorf("expected non-bounds panic to result in Unshaped, have %v", outcome)
	}
	if !errors.Is(outcome.Err, ErrShaperFailed) {
		t.Errorf("expected error of class ErrShaperFailed, have %v", outcome.Err)
	}
}

func TestBypassDetection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.shaping")
	defer teardown()
	//
	bs := &bracketShaper{}
	engine := NewEngine(bs)
	outcome := engine.Process("Hello", Options{BypassDetection: true})
	if outcome.Kind != Success || outcome.Text != "<Hello>" {
		t.Errorf("expected bypass to shape non-Arabic text, have %v", outcome)
	}
	outcome = engine.Process("", Options{BypassDetection: true})
	if outcome.Kind != Unshaped || outcome.Text != "" {
		t.Errorf("expected empty text to stay Unshaped, have %v", outcome)
	}
}

func TestInvalidUTF8Units(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.shaping")
	defer teardown()
	//
	bs := &bracketShaper{failLong: fmt.Errorf("%w: invalid input", ErrUnshapeable)}
	engine := NewEngine(bs)
	raw := "س\xffل"
	outcome := engine.Process(raw, Options{SkipUnshapeable: true})
	if outcome.Kind != PartialWithFallback {
		t.Fatalf("expected PartialWithFallback, have %v", outcome)
	}
	if outcome.Text != "<س>\xff<ل>" {
		t.Errorf("expected invalid byte to be kept verbatim, have %q", outcome.Text)
	}
}

func TestNoShaper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.shaping")
	defer teardown()
	//
	outcome := NewEngine(nil).Process("سلام", DefaultOptions())
	if outcome.Kind != Unshaped || !errors.Is(outcome.Err, ErrNoShaper) {
		t.Errorf("expected Unshaped with ErrNoShaper, have %v / %v", outcome, outcome.Err)
	}
}

func TestScenarioHello(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.shaping")
	defer teardown()
	//
	opts := Options{ShowDiacritics: false, UseNativeDigits: false, SkipUnshapeable: true}
	outcome := NewEngine(&bracketShaper{}).Process("Hello", opts)
	if outcome.Kind != Unshaped || outcome.Text != "Hello" {
		t.Errorf("expected Unshaped(\"Hello\"), have %v", outcome)
	}
}

func ExampleEngine_Process() {
	engine := NewEngine(ShaperFunc(func(text string, _, _ bool) (string, error) {
		return strings.ToUpper(text) + "!", nil
	}))
	fmt.Println(engine.Process("Hello", DefaultOptions()))
	fmt.Println(engine.Process("Hello سلام", DefaultOptions()).Kind)
	// Output:
	// Unshaped("Hello")
	// Success
}
