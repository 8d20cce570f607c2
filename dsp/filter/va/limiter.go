package va

import "math"

// PeakLimiter is an instant-attack peak limiter that keeps resonant filter
// output below a ceiling.
type PeakLimiter struct {
	threshold    float64
	releaseCoeff float64
	envelope     float64
}

const (
	defaultLimiterThresholdDB = -3.0
	defaultLimiterReleaseMs   = 10.0
)

// NewPeakLimiter returns a limiter with a -3 dB ceiling and 10 ms release.
func NewPeakLimiter(sampleRate float64) (*PeakLimiter, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	l := &PeakLimiter{}
	l.SetThresholdDB(defaultLimiterThresholdDB)
	l.SetRelease(defaultLimiterReleaseMs, sampleRate)

	return l, nil
}

// SetThresholdDB sets the ceiling in dBFS.
func (l *PeakLimiter) SetThresholdDB(db float64) {
	l.threshold = math.Pow(10, db/20)
}

// Threshold returns the linear ceiling.
func (l *PeakLimiter) Threshold() float64 { return l.threshold }

// SetRelease sets the release time in milliseconds.
func (l *PeakLimiter) SetRelease(ms, sampleRate float64) {
	if ms <= 0 || sampleRate <= 0 {
		l.releaseCoeff = 0
		return
	}

	l.releaseCoeff = math.Exp(-1 / (ms * 0.001 * sampleRate))
}

// Reset clears the detector.
func (l *PeakLimiter) Reset() {
	l.envelope = 0
}

// Process limits one sample.
func (l *PeakLimiter) Process(x float64) float64 {
	a := math.Abs(x)
	if a > l.envelope {
		l.envelope = a
	} else {
		l.envelope = a + l.releaseCoeff*(l.envelope-a)
	}

	if l.envelope <= l.threshold {
		return x
	}

	return x * l.threshold / l.envelope
}

// ProcessBlock limits buf in place.
func (l *PeakLimiter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = l.Process(x)
	}
}
