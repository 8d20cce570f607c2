// Package module implements the container every voice component is built
// from.
//
// A [Module] owns up to [NumSlots] interchangeable [Core] implementations of
// the same category (four filter algorithms, two envelope contours, ...),
// its own audio buffer and one modulation input and output [ModPort]. The
// voice drives every module through the same five calls: Reset, Update,
// Render, NoteOn and NoteOff. Render always runs Update first.
//
// Cores receive a [ProcessData] borrowed for the duration of one call. It
// carries the sample rate, the number of samples in the block, the ports,
// the audio buffer, the typed parameter struct and the shared MIDI data.
//
// Polymorphism happens once per block per module, never per sample.
package module
