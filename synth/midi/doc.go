// Package midi defines the MIDI input data every voice reads: global
// controller state (pitch bend, tuning, last notes), the 128-entry CC table
// and non-MIDI auxiliary values such as tempo and engine flags.
//
// [Store] is the default provider. It starts from safe defaults (full
// volume, centred pan and pitch bend, two semitone bend range) and is
// updated from wire messages with [Store.HandleMessage].
package midi
