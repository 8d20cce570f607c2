// Package eg implements the envelope generator module.
//
// Two cores are provided. [AnalogCore] follows the classic RC-charging
// contour: each segment iterates y[n] = offset + y[n-1]*coeff towards a
// target overshot by a time-constant offset, so attack is fast-then-slow
// and decay and release fall off exponentially. [DXCore] uses straight
// line segments with extra Delay, Hold and Slope stages.
//
// Both cores advance their state machine once per sample but publish only
// the first sample of each block to the modulation outputs. The complete
// per-sample contour is written to audio output 0 for metering.
//
// Note-offs received while the sustain pedal is down are deferred until
// it is lifted, and a release in progress is frozen while it is down. A
// rising edge through 0.5 on the trigger input forces a release that
// restarts the attack when it completes.
package eg
