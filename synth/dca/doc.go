// Package dca provides the voice amplifier. It has no cores and renders
// directly: the stereo input is scaled by the envelope, amplitude
// modulation, gain, velocity and MIDI volume, then placed with a
// constant-power pan.
package dca
