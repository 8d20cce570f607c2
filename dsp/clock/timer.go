package clock

// Timer counts samples up to a limit. It is used for delay-before-start and
// fixed-length segments where the underlying clock must keep running.
type Timer struct {
	count int
	limit int
}

// SetLimit sets the number of samples after which the timer expires.
func (t *Timer) SetLimit(samples int) {
	if samples < 0 {
		samples = 0
	}

	t.limit = samples
}

// SetLimitSeconds converts seconds to samples and sets the limit.
func (t *Timer) SetLimitSeconds(seconds, sampleRate float64) {
	t.SetLimit(int(seconds*sampleRate + 0.5))
}

// Limit returns the configured limit in samples.
func (t *Timer) Limit() int { return t.limit }

// Count returns the number of samples counted so far.
func (t *Timer) Count() int { return t.count }

// Advance counts n samples. The count saturates at the limit.
func (t *Timer) Advance(n int) {
	t.count += n
	if t.count > t.limit {
		t.count = t.limit
	}
}

// Expired reports whether the count has reached the limit.
func (t *Timer) Expired() bool {
	return t.count >= t.limit
}

// Reset restarts the count at zero, keeping the limit.
func (t *Timer) Reset() {
	t.count = 0
}
