// Package signal provides the seeded real-time Noise source shared by
// oscillator noise waveforms and the random LFO shapes.
package signal
