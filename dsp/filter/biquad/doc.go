// Package biquad provides the seven-coefficient second-order IIR section used
// by synthesizer filter cores, together with closed-form coefficient designs.
//
// A [Section] runs the transposed canonical recurrence
//
//	y  = A0*x + z1
//	z1 = A1*x - B1*y + z2
//	z2 = A2*x - B2*y
//	out = D0*x + C0*y
//
// where C0 and D0 blend the filtered ("wet") and input ("dry") paths. The
// design functions ([LowPass1], [HighPass1], [LowPass2], [HighPass2],
// [BandPass2], [BandStop2]) return [Coefficients] for a cutoff or centre
// frequency, Q and sample rate.
package biquad
