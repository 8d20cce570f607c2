package biquad

import "github.com/cwbudde/algo-synth/dsp/core"

// Coefficients holds one second-order section. A0..A2 are the feedforward
// terms, B1 and B2 the feedback terms (b0 is normalised to 1). C0 scales the
// filtered output and D0 the dry input.
type Coefficients struct {
	A0, A1, A2 float64
	B1, B2     float64
	C0, D0     float64
}

// Passthrough returns coefficients that copy input to output.
func Passthrough() Coefficients {
	return Coefficients{A0: 1, C0: 1}
}

// Section is a biquad with coefficients and two state registers.
type Section struct {
	Coefficients

	z1, z2 float64
}

// NewSection returns a Section with the given coefficients and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// SetCoefficients replaces the coefficients and keeps the state.
func (s *Section) SetCoefficients(c Coefficients) {
	s.Coefficients = c
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.A0*x + s.z1
	s.z1 = s.A1*x - s.B1*y + s.z2
	s.z2 = s.A2*x - s.B2*y

	return s.D0*x + s.C0*y
}

// ProcessBlockTo filters src into dst. dst must be at least as long as
// src and may alias it. Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1]

	a0, a1, a2 := s.A0, s.A1, s.A2
	b1, b2 := s.B1, s.B2
	c0, d0 := s.C0, s.D0
	z1, z2 := s.z1, s.z2

	for i, x := range src {
		y := a0*x + z1
		z1 = a1*x - b1*y + z2
		z2 = a2*x - b2*y
		dst[i] = d0*x + c0*y
	}

	s.z1, s.z2 = z1, z2
}

// Reset clears the state registers.
func (s *Section) Reset() {
	s.z1 = 0
	s.z2 = 0
}

// FlushDenormals zeroes state registers that decayed below the normal
// range. Call it once per block.
func (s *Section) FlushDenormals() {
	s.z1 = core.FlushDenormals(s.z1)
	s.z2 = core.FlushDenormals(s.z2)
}
