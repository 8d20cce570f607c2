// Package moog implements a nonlinear four-stage Moog ladder lowpass with
// tanh stage saturation.
//
// Variants trade accuracy against cost: the classic ladder with exact or
// rational tanh, and a Huovilainen-style model with tuning and resonance
// compensation and a half-sample feedback estimate. Drive sets the
// saturation depth without moving the cutoff. The nonlinear core can run
// oversampled with biquad anti-alias filters around it.
package moog
