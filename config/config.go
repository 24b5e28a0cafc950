/*
Package config holds the settings of text handlers.

A Config aggregates the processing mode, the startup delay, the shaping
options and the typing policy. Config.Handler converts it into the
detector.Config a handler is created with. Settings may be taken from the
user's environment with FromEnvironment, which enables native digits for
users with a locale of a language usually written with Arabic-Indic digits.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–25 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/arabtext"
	"github.com/npillmayer/arabtext/detector"
	"github.com/npillmayer/arabtext/shaping"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces with key 'arabtext.config'.
func tracer() tracing.Trace {
	return tracing.Select("arabtext.config")
}

// ErrInvalidConfig is wrapped by all validation errors.
var ErrInvalidConfig = errors.New("invalid configuration")

// MaxStartupDelaySeconds is the longest startup delay accepted by Validate.
const MaxStartupDelaySeconds = 3600

// Config holds the settings of a handler.
type Config struct {
	Mode                   detector.Mode
	StartupDelaySeconds    float64
	ShowDiacritics         bool
	UseNativeDigits        bool
	SkipUnshapeable        bool
	BypassDetection        bool // treat all text as Arabic; for debugging
	LogErrors              bool
	AutoProcessAfterTyping bool
	Blocks                 []string // Unicode block names of the target script
	Locale                 string   // IETF tag of the locale settings are derived from, if any
}

// Default returns the default settings: continuous detection after 0.1
// seconds, diacritics shown, western digits.
func Default() Config {
	blocks := make([]string, len(arabtext.DefaultBlocks))
	copy(blocks, arabtext.DefaultBlocks)
	return Config{
		Mode:                   detector.ContinuousDetection,
		StartupDelaySeconds:    detector.DefaultStartupDelay.Seconds(),
		ShowDiacritics:         true,
		SkipUnshapeable:        true,
		LogErrors:              true,
		AutoProcessAfterTyping: true,
		Blocks:                 blocks,
	}
}

// FromEnvironment returns the default settings, adapted to the user's
// locale.
func FromEnvironment() Config {
	conf := Default()
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("cannot detect user locale: %v", err)
		userLocale = "en-US"
	} else {
		tracer().Infof("detected user locale %v", userLocale)
	}
	conf.Locale = userLocale
	conf.UseNativeDigits = usesNativeDigits(language.Make(userLocale))
	return conf
}

var nativeDigitsMatch = language.NewMatcher([]language.Tag{
	language.English, // The first language is used as fallback.
	language.Arabic,
	language.Persian,
	language.Urdu,
	language.Make("ps"),
	language.Make("sd"),
})

func usesNativeDigits(lang language.Tag) bool {
	_, index, confidence := nativeDigitsMatch.Match(lang)
	return index > 0 && confidence != language.No
}

// Validate checks the settings. Errors wrap ErrInvalidConfig.
func (conf Config) Validate() error {
	if !conf.Mode.IsValid() {
		return fmt.Errorf("%w: unknown processing mode %d", ErrInvalidConfig, int(conf.Mode))
	}
	if d := conf.StartupDelaySeconds; d < 0 || d > MaxStartupDelaySeconds || math.IsNaN(d) {
		return fmt.Errorf("%w: startup delay must be between 0 and %d seconds, is %v",
			ErrInvalidConfig, MaxStartupDelaySeconds, d)
	}
	if len(conf.Blocks) == 0 {
		return fmt.Errorf("%w: no Unicode blocks for target script", ErrInvalidConfig)
	}
	if _, err := arabtext.BlockRanges(conf.Blocks...); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// StartupDelay returns the startup delay as a duration.
func (conf Config) StartupDelay() time.Duration {
	return time.Duration(conf.StartupDelaySeconds * float64(time.Second))
}

// Shaping returns the shaping options.
func (conf Config) Shaping() (shaping.Options, error) {
	if err := conf.Validate(); err != nil {
		return shaping.Options{}, err
	}
	ranges, err := arabtext.BlockRanges(conf.Blocks...)
	if err != nil {
		return shaping.Options{}, err
	}
	return shaping.Options{
		ShowDiacritics:  conf.ShowDiacritics,
		UseNativeDigits: conf.UseNativeDigits,
		SkipUnshapeable: conf.SkipUnshapeable,
		BypassDetection: conf.BypassDetection,
		LogErrors:       conf.LogErrors,
		ScriptRanges:    ranges,
	}, nil
}

// Handler returns the configuration for a detector.Handler.
func (conf Config) Handler() (detector.Config, error) {
	opts, err := conf.Shaping()
	if err != nil {
		return detector.Config{}, err
	}
	if conf.BypassDetection {
		tracer().Infof("detection of Arabic text is bypassed")
	}
	return detector.Config{
		Mode:                   conf.Mode,
		StartupDelay:           conf.StartupDelay(),
		Shaping:                opts,
		AutoProcessAfterTyping: conf.AutoProcessAfterTyping,
	}, nil
}
