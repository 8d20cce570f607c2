// Package filter provides the voice filter module.
//
// The Module holds a zero-delay-feedback virtual-analog core (one-pole,
// state-variable, Korg35, Moog and diode ladders) and a biquad core. Both
// compute the cutoff in the semitone domain,
//
//	fc = cutoff * 2^((keyTrack + bipolarMod + egMod) / 12)
//
// clamped to [20 Hz, 18 kHz], remap the [1, 10] resonance control to the
// topology's native range, and recompute coefficients only when the
// cutoff, resonance or type actually changed.
//
// Without the dual-mono flag only the left channel is filtered and copied
// to the right.
package filter
