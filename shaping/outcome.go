package shaping

import "fmt"

// Kind is the kind of result of a processing step.
type Kind int8

// Kinds of outcomes
const (
	Unshaped            Kind = iota // text has been left as it was
	Success                         // whole text has been shaped
	PartialWithFallback             // text has been shaped character by character
)

func (k Kind) String() string {
	switch k {
	case Unshaped:
		return "Unshaped"
	case Success:
		return "Success"
	case PartialWithFallback:
		return "PartialWithFallback"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Outcome is the result of Engine.Process. Text is always displayable.
//
// FailedUnits is meaningful for PartialWithFallback only and counts the
// characters which had to be kept unshaped. Err is set whenever the shaper
// failed at some point, even if the engine has been able to recover.
type Outcome struct {
	Kind        Kind
	Text        string
	FailedUnits int
	Err         error
}

func success(text string) Outcome {
	return Outcome{Kind: Success, Text: text}
}

func partial(text string, failed int, err error) Outcome {
	return Outcome{Kind: PartialWithFallback, Text: text, FailedUnits: failed, Err: err}
}

func unshaped(text string, err error) Outcome {
	return Outcome{Kind: Unshaped, Text: text, Err: err}
}

// ErrorMessage returns the error description of an outcome, or "".
func (o Outcome) ErrorMessage() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

func (o Outcome) String() string {
	switch o.Kind {
	case PartialWithFallback:
		return fmt.Sprintf("%s(%q, failed=%d)", o.Kind, o.Text, o.FailedUnits)
	default:
		return fmt.Sprintf("%s(%q)", o.Kind, o.Text)
	}
}
