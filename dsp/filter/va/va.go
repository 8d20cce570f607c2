package va

import (
	"errors"
	"fmt"
	"math"
)

// Cutoff limits applied by ClampCutoff.
const (
	MinCutoff = 20.0
	MaxCutoff = 18000.0

	// nyquistGuard keeps the prewarp tangent finite at low sample rates.
	nyquistGuard = 0.48
)

// ErrInvalidSampleRate reports a non-positive or non-finite sample rate.
var ErrInvalidSampleRate = errors.New("va: sample rate must be > 0 and finite")

func validateSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
	}

	return nil
}

// ClampCutoff limits fc to [MinCutoff, MaxCutoff] and below the Nyquist
// guard for the given sample rate.
func ClampCutoff(fc, sampleRate float64) float64 {
	hi := MaxCutoff
	if limit := nyquistGuard * sampleRate; limit < hi {
		hi = limit
	}

	if fc < MinCutoff {
		return MinCutoff
	}

	if fc > hi {
		return hi
	}

	return fc
}

// prewarp returns the bilinear integrator gain g = tan(pi*fc/fs).
func prewarp(fc, sampleRate float64) float64 {
	return math.Tan(math.Pi * ClampCutoff(fc, sampleRate) / sampleRate)
}

// QMap linearly remaps a user-facing resonance control in [1, 10] to a
// topology's native range.
type QMap struct {
	slope, offset float64
}

// Native resonance ranges for the user control [1, 10].
var (
	SVFQRange    = NewQMap(0.707, 25)
	Korg35KRange = NewQMap(0.01, 1.99)
	MoogKRange   = NewQMap(0, 3.9)
	DiodeKRange  = NewQMap(0, 16)
)

// NewQMap returns a map sending 1 to lo and 10 to hi.
func NewQMap(lo, hi float64) QMap {
	slope := (hi - lo) / 9
	return QMap{slope: slope, offset: lo - slope}
}

// Map converts a control value. Inputs outside [1, 10] clamp.
func (m QMap) Map(q float64) float64 {
	if q < 1 {
		q = 1
	} else if q > 10 {
		q = 10
	}

	return m.slope*q + m.offset
}

// Drive is the optional nonlinear saturation placed inside a feedback loop.
type Drive struct {
	Enabled    bool
	Saturation float64
}

func (d Drive) apply(x float64) float64 {
	if !d.Enabled {
		return x
	}

	s := d.Saturation
	if s <= 0 {
		s = 1
	}

	return math.Tanh(s*x) / math.Tanh(s)
}
