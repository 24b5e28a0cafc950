package config

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/npillmayer/arabtext"
	"github.com/npillmayer/arabtext/detector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.config")
	defer teardown()
	//
	conf := Default()
	if err := conf.Validate(); err != nil {
		t.Fatalf("expected default configuration to be valid, have %v", err)
	}
	hconf, err := conf.Handler()
	if err != nil {
		t.Fatal(err)
	}
	if hconf.Mode != detector.ContinuousDetection || hconf.StartupDelay != 100*time.Millisecond {
		t.Errorf("expected continuous mode after 100ms, have %s after %v", hconf.Mode, hconf.StartupDelay)
	}
	if !hconf.Shaping.ShowDiacritics || hconf.Shaping.UseNativeDigits || !hconf.Shaping.SkipUnshapeable {
		t.Errorf("unexpected default shaping options %+v", hconf.Shaping)
	}
	if hconf.Shaping.ScriptRanges.String() != arabtext.DefaultScriptRanges().String() {
		t.Errorf("expected default script ranges, have %v", hconf.Shaping.ScriptRanges)
	}
	if !hconf.AutoProcessAfterTyping {
		t.Errorf("expected auto-processing after typing to be on")
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.config")
	defer teardown()
	//
	for i, broken := range []func(*Config){
		func(c *Config) { c.StartupDelaySeconds = -1 },
		func(c *Config) { c.StartupDelaySeconds = 1e12 },
		func(c *Config) { c.StartupDelaySeconds = math.Inf(1) },
		func(c *Config) { c.StartupDelaySeconds = math.NaN() },
		func(c *Config) { c.Mode = detector.Mode(9) },
		func(c *Config) { c.Blocks = nil },
		func(c *Config) { c.Blocks = []string{"Arabic", "Klingon"} },
	} {
		conf := Default()
		broken(&conf)
		if err := conf.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("test #%d: expected ErrInvalidConfig, have %v", i, err)
		}
		if _, err := conf.Handler(); err == nil {
			t.Errorf("test #%d: expected invalid configuration to be rejected", i)
		}
	}
}

func TestLongestStartupDelay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.config")
	defer teardown()
	//
	conf := Default()
	conf.StartupDelaySeconds = MaxStartupDelaySeconds
	if err := conf.Validate(); err != nil {
		t.Fatalf("expected longest startup delay to be valid, have %v", err)
	}
	if conf.StartupDelay() != time.Hour {
		t.Errorf("expected startup delay of 1h, have %v", conf.StartupDelay())
	}
}

func TestBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.config")
	defer teardown()
	//
	conf := Default()
	conf.Blocks = []string{"ArabicBlock", "Arabic_Extended_B"}
	opts, err := conf.Shaping()
	if err != nil {
		t.Fatal(err)
	}
	if !opts.ScriptRanges.Contains(0x0870) || opts.ScriptRanges.Contains(0xFE70) {
		t.Errorf("expected Arabic Extended-B only besides Arabic, have %v", opts.ScriptRanges)
	}
}

func TestFromEnvironment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabtext.config")
	defer teardown()
	//
	for locale, native := range map[string]bool{
		"ar_EG.UTF-8": true,
		"fa_IR.UTF-8": true,
		"ur_PK":       true,
		"de_DE.UTF-8": false,
		"en_US":       false,
	} {
		t.Setenv("LC_ALL", locale)
		t.Setenv("LC_MESSAGES", locale)
		t.Setenv("LANG", locale)
		conf := FromEnvironment()
		if conf.UseNativeDigits != native {
			t.Errorf("expected native digits = %v for locale %s (%s)", native, locale, conf.Locale)
		}
	}
}
