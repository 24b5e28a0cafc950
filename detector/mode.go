package detector

import (
	"fmt"
	"strings"
)

// Mode determines when a Handler processes text on its own.
type Mode int8

const (
	// ContinuousDetection checks for text changes at every tick, after the
	// startup delay has elapsed.
	ContinuousDetection Mode = iota
	// ProcessOnceAtStart processes text when the handler is created, and
	// whenever the mode is set again.
	ProcessOnceAtStart
	// ManualOnly processes text on ForceProcess only.
	ManualOnly
)

var modeNames = [...]string{"continuous", "once", "manual"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// IsValid is true for the modes defined in this package.
func (m Mode) IsValid() bool {
	return m >= 0 && int(m) < len(modeNames)
}

// ParseMode reads a mode from its name, ignoring case. Besides the names
// returned by String, it accepts the Go constant names.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	switch s {
	case "continuousdetection", "realtime":
		return ContinuousDetection, nil
	case "processonceatstart", "onceatstart":
		return ProcessOnceAtStart, nil
	case "manualonly":
		return ManualOnly, nil
	}
	return ContinuousDetection, fmt.Errorf("unknown processing mode %q", s)
}
