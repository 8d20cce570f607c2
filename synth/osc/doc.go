// Package osc provides the pitched audio oscillators of a voice.
//
// The Module holds a virtual-analog core (PolyBLEP saw and pulse, sine,
// triangle and noise) and a wavetable core reading band-limited tables from
// a wavetable.Database. Both share the same pitch path: note frequency,
// octave/coarse/fine offsets, pitch and EG modulation in semitones,
// portamento, MIDI pitch bend and master tuning.
package osc
