package mix

import "math"

// Pan returns constant-power left and right gains for a bipolar pan
// position in [-1, 1] (-1 hard left). Positions outside the range clamp.
// At centre both gains are 1/sqrt(2).
func Pan(pos float64) (left, right float64) {
	pos = clampBipolar(pos)
	angle := (pos + 1) * math.Pi / 4

	return math.Cos(angle), math.Sin(angle)
}

// PanBlock writes the panned mono signal into left and right. The slices
// must be at least as long as mono.
func PanBlock(left, right, mono []float64, pos float64) {
	gl, gr := Pan(pos)
	_ = left[len(mono)-1]
	_ = right[len(mono)-1]
	for i, x := range mono {
		left[i] = x * gl
		right[i] = x * gr
	}
}

// EqualPowerCrossfade returns gains for a and b at position in [0, 1]
// (0 is all a). ga^2+gb^2 == 1 for every position.
func EqualPowerCrossfade(position float64) (ga, gb float64) {
	if position < 0 {
		position = 0
	} else if position > 1 {
		position = 1
	}

	angle := position * math.Pi / 2

	return math.Cos(angle), math.Sin(angle)
}

// Crossfade mixes a and b with an equal-power law.
func Crossfade(a, b, position float64) float64 {
	ga, gb := EqualPowerCrossfade(position)
	return a*ga + b*gb
}

// Balance returns linear left/right gains for a bipolar balance in [-1, 1].
// Unlike Pan the favoured side keeps unity gain.
func Balance(pos float64) (left, right float64) {
	pos = clampBipolar(pos)
	left, right = 1, 1
	if pos > 0 {
		left = 1 - pos
	} else if pos < 0 {
		right = 1 + pos
	}

	return left, right
}

func clampBipolar(x float64) float64 {
	if x < -1 {
		return -1
	}

	if x > 1 {
		return 1
	}

	return x
}
