// Package voice composes the modules of one sounding note.
//
// A Voice owns two LFOs, an amplitude and a filter envelope, two
// oscillators, a filter and an amplifier, plus the modulation matrix that
// connects them. Each block is rendered in a fixed order:
//
//	high-priority routes -> LFOs, envelopes -> matrix -> oscillators ->
//	filter -> amplifier -> voice output
//
// Later stages read modulation values the matrix has just written, so the
// order is part of the contract.
//
// Sources and destinations have stable IDs and names; patches refer to
// routes by name. A few routes are hardwired at construction (amp
// envelope to amplifier, filter envelope to cutoff, LFO1 to pitch and
// cutoff) and only their intensities can change.
package voice
