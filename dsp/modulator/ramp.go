package modulator

// Ramp moves linearly from a start value to an end value over a fixed number
// of samples. Once finished it holds the end value.
type Ramp struct {
	start, end float64
	value      float64
	inc        float64
	remaining  int
	active     bool
}

// Start begins a ramp from start to end over the given number of samples.
// A non-positive duration jumps straight to end.
func (r *Ramp) Start(start, end float64, samples int) {
	r.start = start
	r.end = end
	if samples <= 0 {
		r.value = end
		r.inc = 0
		r.remaining = 0
		r.active = false

		return
	}

	r.value = start
	r.inc = (end - start) / float64(samples)
	r.remaining = samples
	r.active = true
}

// StartSeconds is Start with a duration in seconds.
func (r *Ramp) StartSeconds(start, end, seconds, sampleRate float64) {
	r.Start(start, end, int(seconds*sampleRate+0.5))
}

// Value returns the current ramp output.
func (r *Ramp) Value() float64 { return r.value }

// Active reports whether the ramp is still moving.
func (r *Ramp) Active() bool { return r.active }

// Advance steps the ramp by n samples and returns the new value.
func (r *Ramp) Advance(n int) float64 {
	if !r.active {
		return r.value
	}

	if n >= r.remaining {
		r.value = r.end
		r.remaining = 0
		r.active = false

		return r.value
	}

	r.remaining -= n
	r.value += r.inc * float64(n)

	return r.value
}

// Finish jumps to the end value.
func (r *Ramp) Finish() {
	r.value = r.end
	r.remaining = 0
	r.active = false
}
