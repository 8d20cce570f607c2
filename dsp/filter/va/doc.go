// Package va implements zero-delay-feedback virtual-analog filter
// topologies built from trapezoidal one-pole integrators.
//
// Every topology solves its instantaneous feedback loop algebraically when
// its coefficients change (the alpha0 loop-gain terms), so per-sample
// processing is a fixed sequence of multiplies and adds with two or fewer
// state registers per integrator:
//
//   - [OnePole]: lowpass, highpass and allpass, with an analog-matched lowpass
//   - [SVF]: state-variable lowpass, highpass, bandpass and bandstop
//   - [Korg35]: Sallen-Key lowpass or highpass from three one-poles
//   - [Moog]: four-pole ladder with global feedback and mixed outputs
//   - [Diode]: four-pole diode ladder with coupled stages
//
// The self-resonant ladders can exceed unity at high resonance; callers
// follow them with a [PeakLimiter].
package va
