package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// Filter integrators call this on their state registers.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// UnipolarToBipolar maps [0, 1] onto [-1, 1].
func UnipolarToBipolar(value float64) float64 {
	return 2*value - 1
}

// BipolarToUnipolar maps [-1, 1] onto [0, 1].
func BipolarToUnipolar(value float64) float64 {
	return 0.5*value + 0.5
}

// BipolarModulation maps a bipolar modulator onto [min, max] around the
// range midpoint. The modulator is clamped to [-1, 1] first.
func BipolarModulation(mod, min, max float64) float64 {
	mod = Clamp(mod, -1, 1)
	half := (max - min) / 2
	mid := half + min

	return mod*half + mid
}

// UnipolarModulationFromMin maps a unipolar modulator onto [min, max]
// starting at min.
func UnipolarModulationFromMin(mod, min, max float64) float64 {
	mod = Clamp(mod, 0, 1)

	return mod*(max-min) + min
}

// UnipolarModulationFromMax maps a unipolar modulator onto [min, max]
// starting at max and moving down.
func UnipolarModulationFromMax(mod, min, max float64) float64 {
	mod = Clamp(mod, 0, 1)

	return max - mod*(max-min)
}

// MIDIToUnipolar normalises a 7-bit MIDI value to [0, 1].
func MIDIToUnipolar(value uint32) float64 {
	if value > 127 {
		value = 127
	}

	return float64(value) / 127
}

// MIDIToBipolar normalises a 7-bit MIDI value to [-1, 1] with 64 as centre.
func MIDIToBipolar(value uint32) float64 {
	if value > 127 {
		value = 127
	}

	if value >= 64 {
		return float64(value-64) / 63
	}

	return (float64(value) - 64) / 64
}

// MIDIToAttenuation applies the MMA recommended amplitude curve (v/127)^2
// used for velocity and channel volume.
func MIDIToAttenuation(value uint32) float64 {
	u := MIDIToUnipolar(value)
	return u * u
}
