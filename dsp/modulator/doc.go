// Package modulator provides block-rate control ramps: a linear [Ramp] for
// fade-ins and a semitone-domain [Glide] for portamento.
package modulator
