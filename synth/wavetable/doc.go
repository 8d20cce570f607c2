// Package wavetable provides band-limited single-cycle tables for the
// wavetable oscillator.
//
// A [Source] holds one waveform as a set of tables, one per octave band,
// each containing only the harmonics that stay below Nyquist for the
// highest note of its band. [Bank] is the in-memory Source; its tables
// are synthesised from a harmonic series with an inverse FFT. A
// [Database] looks sources up by name or index; [Registry] is the
// in-memory Database.
//
// Sources are read-only after construction and may be shared by every
// voice.
package wavetable
