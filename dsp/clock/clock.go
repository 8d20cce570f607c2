package clock

import "math"

// SynthClock is a modulo phase accumulator. The counter lives in [0, 1)
// after Wrap; Advance may push it outside that range so that callers can
// detect the wrap event. The sign of the increment sets the direction.
type SynthClock struct {
	counter     float64
	inc         float64
	phaseOffset float64
	freqOffset  float64
	frequency   float64
	sampleRate  float64

	saved savedState
}

type savedState struct {
	counter     float64
	inc         float64
	phaseOffset float64
	freqOffset  float64
	frequency   float64
}

// Reset sets the counter to start (wrapped into [0, 1)) and clears any
// phase or frequency offsets. The increment is kept.
func (c *SynthClock) Reset(start float64) {
	c.counter = Wrap(start)
	c.phaseOffset = 0
	c.freqOffset = 0
}

// SetFrequency sets the oscillation frequency in Hz. Negative frequencies
// run the clock backwards. A non-positive sample rate stops the clock.
func (c *SynthClock) SetFrequency(hz, sampleRate float64) {
	c.frequency = hz
	c.sampleRate = sampleRate
	if sampleRate <= 0 {
		c.inc = 0
		return
	}

	c.inc = hz / sampleRate
}

// Frequency returns the frequency last set with SetFrequency, excluding
// any frequency offset.
func (c *SynthClock) Frequency() float64 { return c.frequency }

// Increment returns the per-sample phase increment.
func (c *SynthClock) Increment() float64 { return c.inc }

// Counter returns the current counter value.
func (c *SynthClock) Counter() float64 { return c.counter }

// SetCounter overwrites the counter without wrapping.
func (c *SynthClock) SetCounter(v float64) { c.counter = v }

// Advance moves the counter by one increment without wrapping.
func (c *SynthClock) Advance() {
	c.counter += c.inc
}

// AdvanceBy moves the counter by n increments without wrapping. Block-rate
// consumers such as LFOs use this to step once per block.
func (c *SynthClock) AdvanceBy(n int) {
	c.counter += c.inc * float64(n)
}

// AdvanceWrap advances by one increment and wraps. It reports whether the
// counter crossed a cycle boundary.
func (c *SynthClock) AdvanceWrap() bool {
	c.counter += c.inc
	return c.Wrap()
}

// Wrap folds the counter back into [0, 1). It reports whether the counter
// was outside that range.
func (c *SynthClock) Wrap() bool {
	if c.counter >= 0 && c.counter < 1 {
		return false
	}

	c.counter = Wrap(c.counter)

	return true
}

// WillWrap reports whether the next n increments would leave [0, 1).
func (c *SynthClock) WillWrap(n int) bool {
	next := c.counter + c.inc*float64(n)
	return next >= 1 || next < 0
}

// AddPhaseOffset shifts the counter by offset (in cycles) and remembers
// the shift so that RemovePhaseOffset can undo it. When wrap is true the
// shifted counter is folded into [0, 1).
func (c *SynthClock) AddPhaseOffset(offset float64, wrap bool) {
	c.phaseOffset = offset
	c.counter += offset
	if wrap {
		c.Wrap()
	}
}

// RemovePhaseOffset undoes the last AddPhaseOffset and wraps.
func (c *SynthClock) RemovePhaseOffset() {
	c.counter -= c.phaseOffset
	c.phaseOffset = 0
	c.Wrap()
}

// AddFrequencyOffset temporarily shifts the frequency by hz, used for
// linear FM. RemoveFrequencyOffset restores the base increment.
func (c *SynthClock) AddFrequencyOffset(hz float64) {
	c.freqOffset = hz
	if c.sampleRate > 0 {
		c.inc = (c.frequency + hz) / c.sampleRate
	}
}

// RemoveFrequencyOffset drops the frequency offset.
func (c *SynthClock) RemoveFrequencyOffset() {
	c.freqOffset = 0
	if c.sampleRate > 0 {
		c.inc = c.frequency / c.sampleRate
	}
}

// Save snapshots the full clock state. Only one snapshot is kept.
func (c *SynthClock) Save() {
	c.saved = savedState{
		counter:     c.counter,
		inc:         c.inc,
		phaseOffset: c.phaseOffset,
		freqOffset:  c.freqOffset,
		frequency:   c.frequency,
	}
}

// Restore returns the clock to the state captured by Save.
func (c *SynthClock) Restore() {
	c.counter = c.saved.counter
	c.inc = c.saved.inc
	c.phaseOffset = c.saved.phaseOffset
	c.freqOffset = c.saved.freqOffset
	c.frequency = c.saved.frequency
}

// Wrap returns x modulo 1 in [0, 1) for any finite x, including large
// negative and positive excursions.
func Wrap(x float64) float64 {
	if x >= 0 && x < 1 {
		return x
	}

	w := x - math.Floor(x)
	// x slightly below an integer can round up to exactly 1.
	if w >= 1 {
		w = 0
	}

	return w
}
