package biquad

import (
	"errors"
	"fmt"
	"math"
)

// Type selects a closed-form biquad design.
type Type int

const (
	LPF1 Type = iota
	HPF1
	LPF2
	HPF2
	BPF2
	BSF2
)

// ErrInvalidFrequency reports a cutoff outside (0, Nyquist).
var ErrInvalidFrequency = errors.New("biquad: frequency must be in (0, sampleRate/2)")

// ErrInvalidQ reports a non-positive Q.
var ErrInvalidQ = errors.New("biquad: Q must be > 0")

var typeNames = [...]string{
	LPF1: "lpf1",
	HPF1: "hpf1",
	LPF2: "lpf2",
	HPF2: "hpf2",
	BPF2: "bpf2",
	BSF2: "bsf2",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(typeNames) {
		return nil, fmt.Errorf("biquad: invalid type %d", int(t))
	}

	return []byte(typeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	for i, name := range typeNames {
		if name == string(text) {
			*t = Type(i)
			return nil
		}
	}

	return fmt.Errorf("biquad: unknown type %q", string(text))
}

// Design returns coefficients for the given type. Q is ignored by the
// first-order designs.
func Design(t Type, fc, q, sampleRate float64) (Coefficients, error) {
	if sampleRate <= 0 || fc <= 0 || fc >= sampleRate/2 {
		return Coefficients{}, fmt.Errorf("%w: fc=%g sampleRate=%g", ErrInvalidFrequency, fc, sampleRate)
	}

	switch t {
	case LPF1:
		return LowPass1(fc, sampleRate), nil
	case HPF1:
		return HighPass1(fc, sampleRate), nil
	}

	if q <= 0 {
		return Coefficients{}, fmt.Errorf("%w: %g", ErrInvalidQ, q)
	}

	switch t {
	case LPF2:
		return LowPass2(fc, q, sampleRate), nil
	case HPF2:
		return HighPass2(fc, q, sampleRate), nil
	case BPF2:
		return BandPass2(fc, q, sampleRate), nil
	case BSF2:
		return BandStop2(fc, q, sampleRate), nil
	default:
		return Coefficients{}, fmt.Errorf("biquad: unsupported type %v", t)
	}
}

func onePoleGamma(fc, sampleRate float64) float64 {
	theta := 2 * math.Pi * fc / sampleRate
	return math.Cos(theta) / (1 + math.Sin(theta))
}

// LowPass1 designs a first-order lowpass.
func LowPass1(fc, sampleRate float64) Coefficients {
	gamma := onePoleGamma(fc, sampleRate)
	a := (1 - gamma) / 2

	return Coefficients{A0: a, A1: a, B1: -gamma, C0: 1}
}

// HighPass1 designs a first-order highpass. For equal fc, HighPass1 and
// LowPass1 sum to the input sample by sample.
func HighPass1(fc, sampleRate float64) Coefficients {
	gamma := onePoleGamma(fc, sampleRate)
	a := (1 + gamma) / 2

	return Coefficients{A0: a, A1: -a, B1: -gamma, C0: 1}
}

func secondOrderTerms(fc, q, sampleRate float64) (beta, gamma float64) {
	theta := 2 * math.Pi * fc / sampleRate
	d := 1 / q
	s := (d / 2) * math.Sin(theta)
	beta = 0.5 * (1 - s) / (1 + s)
	gamma = (0.5 + beta) * math.Cos(theta)

	return beta, gamma
}

// LowPass2 designs a second-order resonant lowpass.
func LowPass2(fc, q, sampleRate float64) Coefficients {
	beta, gamma := secondOrderTerms(fc, q, sampleRate)
	alpha := (0.5 + beta - gamma) / 2

	return Coefficients{
		A0: alpha, A1: 2 * alpha, A2: alpha,
		B1: -2 * gamma, B2: 2 * beta,
		C0: 1,
	}
}

// HighPass2 designs a second-order resonant highpass.
func HighPass2(fc, q, sampleRate float64) Coefficients {
	beta, gamma := secondOrderTerms(fc, q, sampleRate)
	alpha := (0.5 + beta + gamma) / 2

	return Coefficients{
		A0: alpha, A1: -2 * alpha, A2: alpha,
		B1: -2 * gamma, B2: 2 * beta,
		C0: 1,
	}
}

// BandPass2 designs a constant-skirt bandpass with unity peak gain.
func BandPass2(fc, q, sampleRate float64) Coefficients {
	k := math.Tan(math.Pi * fc / sampleRate)
	k2 := k * k
	delta := k2*q + k + q

	return Coefficients{
		A0: k / delta, A2: -k / delta,
		B1: 2 * q * (k2 - 1) / delta,
		B2: (k2*q - k + q) / delta,
		C0: 1,
	}
}

// BandStop2 designs a second-order notch.
func BandStop2(fc, q, sampleRate float64) Coefficients {
	k := math.Tan(math.Pi * fc / sampleRate)
	k2 := k * k
	delta := k2*q + k + q
	a0 := q * (k2 + 1) / delta
	a1 := 2 * q * (k2 - 1) / delta

	return Coefficients{
		A0: a0, A1: a1, A2: a0,
		B1: a1,
		B2: (k2*q - k + q) / delta,
		C0: 1,
	}
}
