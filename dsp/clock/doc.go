// Package clock provides the sample-rate timing primitives used by oscillators,
// LFOs and envelope delays: a modulo phase accumulator ([SynthClock]) and a
// sample-counting [Timer].
package clock
