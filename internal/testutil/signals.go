package testutil

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/signal"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise generates white noise with a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	n := signal.NewNoise(seed)
	for i := range out {
		out[i] = n.White() * amplitude
	}

	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// SteadyStatePeak drives process with a unit sine for n samples and returns
// the peak magnitude over the second half, after transients settle.
func SteadyStatePeak(process func(float64) float64, freqHz, sampleRate float64, n int) float64 {
	step := 2 * math.Pi * freqHz / sampleRate
	peak := 0.0
	for i := range n {
		y := process(math.Sin(step * float64(i)))
		if i >= n/2 {
			if a := math.Abs(y); a > peak {
				peak = a
			}
		}
	}

	return peak
}

// SettledDC drives process with a constant 1 for n samples and returns the
// last output.
func SettledDC(process func(float64) float64, n int) float64 {
	y := 0.0
	for range n {
		y = process(1)
	}

	return y
}
