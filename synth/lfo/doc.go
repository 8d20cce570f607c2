// Package lfo implements the low-frequency oscillator module.
//
// [ClassicCore] evaluates its waveform once per block from a modulo
// clock and advances the clock by the block length. Delay and fade-in
// are separate sample-counting timers and never reset the clock. A
// one-shot LFO stops after one cycle, holds its last value and raises
// the one-shot-complete output.
package lfo
