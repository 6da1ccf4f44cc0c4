package core

import "time"

// FixedStep turns a shell's frame loop into simulation ticks. It either
// paces by wall-clock time at a target rate or counts frames.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time

	every  int
	frames int
}

// NewFixedStep constructs a FixedStep that ticks once per interval of wall
// clock time. Non-positive intervals fall back to 60 ticks per second.
func NewFixedStep(interval time.Duration) *FixedStep {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &FixedStep{step: interval, accumulator: interval, now: time.Now}
}

// Every constructs a FixedStep that ticks on every n-th call to ShouldStep.
// The first call ticks.
func Every(n int) *FixedStep {
	if n <= 0 {
		n = 1
	}
	return &FixedStep{every: n}
}

// WithClock replaces the time source, for callers that already hold frame
// timestamps.
func (f *FixedStep) WithClock(now func() time.Time) *FixedStep {
	f.now = now
	f.last = time.Time{}
	return f
}

// Reset makes the next ShouldStep tick immediately.
func (f *FixedStep) Reset() {
	f.frames = 0
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	if f.every > 0 {
		due := f.frames%f.every == 0
		f.frames++
		return due
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
