package shaping

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrUnshapeable is the error class for input a shaper cannot handle
// because of an index or bounds violation. Shapers should wrap it, e.g.
//
//     fmt.Errorf("%w: dangling mark at position %d", shaping.ErrUnshapeable, i)
//
// Only errors of this class qualify for character-by-character retries.
var ErrUnshapeable = errors.New("unshapeable input")

// ErrShaperFailed is the error class for any other failure of a shaper.
var ErrShaperFailed = errors.New("shaper failed")

// ErrNoShaper is reported if an engine has been created without a shaper.
var ErrNoShaper = errors.New("no shaper configured")

// IsUnshapeable returns true if err is of class ErrUnshapeable.
func IsUnshapeable(err error) bool {
	return errors.Is(err, ErrUnshapeable)
}

// errorFromPanic converts a recovered panic value into an error.
// Runtime index and slice bounds errors are considered to be of class
// ErrUnshapeable, as these are the Go equivalent of a shaper running off the
// end of its input.
func errorFromPanic(r interface{}) error {
	switch x := r.(type) {
	case runtime.Error:
		if isBoundsError(x) {
			return fmt.Errorf("%w: %v", ErrUnshapeable, x)
		}
		return fmt.Errorf("%w: %v", ErrShaperFailed, x)
	case error:
		if IsUnshapeable(x) {
			return x
		}
		return fmt.Errorf("%w: %v", ErrShaperFailed, x)
	}
	return fmt.Errorf("%w: %v", ErrShaperFailed, r)
}

func isBoundsError(err runtime.Error) bool {
	return strings.Contains(err.Error(), "out of range")
}
