package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates the transfer function, wet/dry blend included, on the
// unit circle at freqHz.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	zInv := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate)
	num := complex(c.A0, 0) + zInv*(complex(c.A1, 0)+zInv*complex(c.A2, 0))
	den := 1 + zInv*(complex(c.B1, 0)+zInv*complex(c.B2, 0))

	return complex(c.D0, 0) + complex(c.C0, 0)*num/den
}

// MagnitudeDB returns the gain at freqHz in decibels.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}
