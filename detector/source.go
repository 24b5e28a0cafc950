package detector

import "time"

// TextSource is a text display of the host UI. Reads and writes are
// synchronous. A display may call back into a Handler from SetText.
type TextSource interface {
	Text() string
	SetText(string)
}

// TimeSource reports the time elapsed since the previous tick.
type TimeSource interface {
	DeltaTime() time.Duration
}

// FixedStep is a TimeSource advancing by a constant duration per tick,
// as with a fixed frame rate.
type FixedStep time.Duration

// DeltaTime returns the step duration.
func (step FixedStep) DeltaTime() time.Duration {
	return time.Duration(step)
}

// WallClock is a TimeSource measuring real time between calls.
// The first call reports zero elapsed time.
type WallClock struct {
	now  func() time.Time
	last time.Time
}

// NewWallClock creates a TimeSource based on time.Now.
func NewWallClock() *WallClock {
	return &WallClock{now: time.Now}
}

// DeltaTime returns the duration since the last call.
func (wc *WallClock) DeltaTime() time.Duration {
	if wc.now == nil {
		wc.now = time.Now
	}
	t := wc.now()
	if wc.last.IsZero() {
		wc.last = t
		return 0
	}
	d := t.Sub(wc.last)
	wc.last = t
	if d < 0 {
		return 0
	}
	return d
}

// Buffer is an in-memory TextSource. If OnChange is set, it is called after
// every SetText, which lets clients simulate displays with change callbacks.
type Buffer struct {
	text     string
	writes   int
	OnChange func(string)
}

// NewBuffer creates a display holding text.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text}
}

// Text returns the current text of the buffer.
func (b *Buffer) Text() string {
	return b.text
}

// SetText replaces the text of the buffer.
func (b *Buffer) SetText(text string) {
	b.text = text
	b.writes++
	if b.OnChange != nil {
		b.OnChange(text)
	}
}

// Writes returns the number of calls to SetText.
func (b *Buffer) Writes() int {
	return b.writes
}
