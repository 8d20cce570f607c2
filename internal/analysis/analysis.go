package analysis

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/dsp/window"
)

// ErrTooShort reports an input with too few samples to analyse.
var ErrTooShort = errors.New("analysis: signal too short")

// ZeroCrossings counts sign changes between consecutive samples. Zero
// counts as positive.
func ZeroCrossings(x []float64) int {
	n := 0
	for i := 1; i < len(x); i++ {
		if (x[i-1] < 0) != (x[i] < 0) {
			n++
		}
	}

	return n
}

// EstimateFrequency estimates the fundamental from the zero-crossing count.
// Its resolution is sampleRate/len(x).
func EstimateFrequency(x []float64, sampleRate float64) float64 {
	if len(x) < 2 || sampleRate <= 0 {
		return 0
	}

	return float64(ZeroCrossings(x)) * sampleRate / (2 * float64(len(x)))
}

// RMS returns the root-mean-square level of x.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return math.Sqrt(vecmath.DotProduct(x, x) / float64(len(x)))
}

// Peak returns the largest absolute sample value.
func Peak(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return vecmath.MaxAbs(x)
}

// PeakFrequency returns the frequency of the strongest non-DC spectral peak
// of x, refined by parabolic interpolation. The signal is Hann windowed and
// zero padded to the next power of two of at least 4096 points.
func PeakFrequency(x []float64, sampleRate float64) (float64, error) {
	return PeakFrequencyWindowed(x, sampleRate, window.TypeHann)
}

// PeakFrequencyWindowed is PeakFrequency with a caller-selected window.
func PeakFrequencyWindowed(x []float64, sampleRate float64, w window.Type) (float64, error) {
	if len(x) < 4 {
		return 0, fmt.Errorf("%w: %d samples", ErrTooShort, len(x))
	}

	size := 4096
	for size < len(x) {
		size <<= 1
	}

	windowed := append([]float64(nil), x...)
	window.Apply(w, windowed, window.WithPeriodic())

	in := make([]complex128, size)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return 0, fmt.Errorf("analysis: fft plan: %w", err)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("analysis: fft: %w", err)
	}

	half := size/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for i := range half {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	best := 1
	for i := 2; i < half-1; i++ {
		if mag[i] > mag[best] {
			best = i
		}
	}

	offset := 0.0
	if best > 0 && best < half-1 {
		a, b, c := mag[best-1], mag[best], mag[best+1]
		if d := a - 2*b + c; d != 0 {
			offset = 0.5 * (a - c) / d
		}
	}

	return (float64(best) + offset) * sampleRate / float64(size), nil
}
