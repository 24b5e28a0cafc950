package detector

import (
	"time"

	"github.com/npillmayer/arabtext/shaping"
)

// DefaultStartupDelay is the warm-up time of ContinuousDetection handlers.
const DefaultStartupDelay = 100 * time.Millisecond

// Config holds the runtime-adjustable settings of a Handler.
type Config struct {
	Mode                   Mode
	StartupDelay           time.Duration
	Shaping                shaping.Options
	AutoProcessAfterTyping bool
}

// DefaultConfig returns settings for continuous detection.
func DefaultConfig() Config {
	return Config{
		Mode:                   ContinuousDetection,
		StartupDelay:           DefaultStartupDelay,
		Shaping:                shaping.DefaultOptions(),
		AutoProcessAfterTyping: true,
	}
}

// Handler detects changes of a display's text and reshapes it.
type Handler struct {
	display TextSource
	engine  *shaping.Engine
	clock   TimeSource
	conf    Config
	// text state
	rawText          string
	fixedText        string
	pendingTypedText string
	lastError        string
	processing       bool
	typingInProgress bool
	pauseProcessing  bool
	// startup
	elapsed         time.Duration
	startupComplete bool
	// diagnostics
	passes         int
	containsScript bool
	lastOutcome    shaping.Kind
}

// New attaches a handler to a display. The current text of the display will
// serve as the baseline for change detection. In mode ProcessOnceAtStart the
// text is processed right away.
//
// If clock is nil, the handler uses a WallClock.
func New(display TextSource, shaper shaping.Shaper, clock TimeSource, conf Config) *Handler {
	if clock == nil {
		clock = NewWallClock()
	}
	h := &Handler{
		display: display,
		engine:  shaping.NewEngine(shaper),
		clock:   clock,
		conf:    conf,
	}
	h.rawText = display.Text()
	if conf.Mode == ProcessOnceAtStart {
		h.process()
	}
	return h
}

// Tick is called once per frame of the host's update loop.
//
// Until the startup delay has elapsed, no change detection takes place. When
// it elapses, handlers in mode ContinuousDetection process the text present
// at that moment once. Afterwards every tick compares the display text with
// the last raw and shaped texts and processes new edits.
func (h *Handler) Tick() {
	if h.processing {
		return
	}
	if !h.startupComplete {
		h.elapsed += h.clock.DeltaTime()
		if h.elapsed < h.conf.StartupDelay {
			return
		}
		h.startupComplete = true
		tracer().Debugf("startup delay of %v elapsed", h.conf.StartupDelay)
		if h.conf.Mode == ContinuousDetection {
			current := h.display.Text()
			if h.typingInProgress {
				h.bufferTyped(current)
				return
			}
			h.rawText = current
			h.process()
		}
		return
	}
	if h.conf.Mode != ContinuousDetection {
		return
	}
	if h.typingInProgress {
		h.bufferTyped(h.display.Text())
		return
	}
	if h.pauseProcessing {
		return
	}
	current := h.display.Text()
	if current == h.rawText || current == h.fixedText {
		return
	}
	tracer().Debugf("text changed to %q", current)
	h.rawText = current
	h.process()
}

// bufferTyped records a frame of a typing animation. Only handlers in
// mode ContinuousDetection buffer frames; the others process on demand.
func (h *Handler) bufferTyped(current string) {
	if h.conf.Mode != ContinuousDetection {
		return
	}
	h.pendingTypedText = current
}

// process runs one shaping pass over rawText and writes the result to the
// display.
func (h *Handler) process() {
	if h.processing {
		return
	}
	h.processing = true
	defer func() { h.processing = false }()
	h.lastError = ""
	opts := h.conf.Shaping
	h.containsScript = shaping.Classify(h.rawText, opts)
	outcome := h.engine.Process(h.rawText, opts)
	h.fixedText = outcome.Text // before SetText, as the display may call back
	h.lastError = outcome.ErrorMessage()
	h.lastOutcome = outcome.Kind
	h.passes++
	tracer().Infof("pass #%d: %s", h.passes, outcome.Kind)
	h.display.SetText(outcome.Text)
}

// StartTypingEffect is called by an animation driver before it starts
// revealing text. Processing is paused until EndTypingEffect.
func (h *Handler) StartTypingEffect() {
	h.typingInProgress = true
	h.pauseProcessing = true
	h.pendingTypedText = ""
	tracer().Debugf("typing effect started")
}

// EndTypingEffect is called by an animation driver after the last frame.
// With AutoProcessAfterTyping set and the last frame differing from our own
// output, the last frame is processed once and processing resumes. Otherwise
// processing stays paused until ResumeProcessing.
func (h *Handler) EndTypingEffect() {
	if !h.typingInProgress {
		return
	}
	h.bufferTyped(h.display.Text())
	h.typingInProgress = false
	tracer().Debugf("typing effect ended, pending text %q", h.pendingTypedText)
	pending := h.pendingTypedText
	if h.conf.AutoProcessAfterTyping && pending != "" && pending != h.fixedText {
		h.rawText = h.pendingTypedText
		h.pendingTypedText = ""
		h.pauseProcessing = false
		h.process()
	}
}

// ForceProcess processes the current raw text, regardless of changes.
func (h *Handler) ForceProcess() {
	h.process()
}

// Reset re-baselines the handler from the display and clears all other
// state. Use it if a handler got stuck.
func (h *Handler) Reset() {
	h.processing = false
	h.rawText = h.display.Text()
	h.fixedText = ""
	h.lastError = ""
	h.pendingTypedText = ""
	h.typingInProgress = false
	h.pauseProcessing = false
}

// SetProcessingMode changes the mode. Setting ProcessOnceAtStart triggers
// an immediate pass.
func (h *Handler) SetProcessingMode(mode Mode) {
	h.conf.Mode = mode
	if mode == ProcessOnceAtStart {
		h.process()
	}
}

// SetTextWithoutProcessing writes text to the display, bypassing the
// shaping engine. It is intended for animation frames. Raw and shaped
// baselines are not changed. During a typing animation the text is
// buffered for EndTypingEffect.
func (h *Handler) SetTextWithoutProcessing(text string) {
	if h.typingInProgress {
		h.bufferTyped(text)
	}
	h.display.SetText(text)
}

// PauseProcessing suspends change detection.
func (h *Handler) PauseProcessing() {
	h.pauseProcessing = true
}

// ResumeProcessing ends a pause. It has no effect during a typing
// animation.
func (h *Handler) ResumeProcessing() {
	if h.typingInProgress {
		return
	}
	h.pauseProcessing = false
}

// SetOptions replaces the shaping options for subsequent passes.
func (h *Handler) SetOptions(opts shaping.Options) {
	h.conf.Shaping = opts
}

// SetStartupDelay changes the warm-up time. It has no effect after the
// startup delay has elapsed.
func (h *Handler) SetStartupDelay(d time.Duration) {
	h.conf.StartupDelay = d
}

// SetAutoProcessAfterTyping changes the policy applied by EndTypingEffect.
func (h *Handler) SetAutoProcessAfterTyping(on bool) {
	h.conf.AutoProcessAfterTyping = on
}

// Config returns the current settings.
func (h *Handler) Config() Config {
	return h.conf
}

// State is a snapshot of a handler's state.
type State struct {
	RawText          string
	FixedText        string
	PendingTypedText string
	LastError        string
	Mode             Mode
	Processing       bool
	TypingInProgress bool
	Paused           bool
	StartupComplete  bool
	ContainsScript   bool         // classification of the last processed text
	Passes           int          // number of processing passes
	LastOutcome      shaping.Kind // valid if Passes > 0
}

// Snapshot returns the current state.
func (h *Handler) Snapshot() State {
	return State{
		RawText:          h.rawText,
		FixedText:        h.fixedText,
		PendingTypedText: h.pendingTypedText,
		LastError:        h.lastError,
		Mode:             h.conf.Mode,
		Processing:       h.processing,
		TypingInProgress: h.typingInProgress,
		Paused:           h.pauseProcessing,
		StartupComplete:  h.startupComplete,
		ContainsScript:   h.containsScript,
		Passes:           h.passes,
		LastOutcome:      h.lastOutcome,
	}
}
