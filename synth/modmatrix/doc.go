// Package modmatrix routes modulation sources to modulation destinations.
//
// Sources and destinations are bound once, by small integer ID, to a
// channel of some module's [module.ModPort]. Every block [Matrix.Run]
// reads each bound source, multiplies it by the source intensity and the
// destination's per-route intensity, sums the enabled routes, scales the
// sum by the destination's aggregate intensity and writes it to the
// destination channel.
//
// Hardwired routes are added on top of that sum. They ignore the enable
// flags and intensities users edit and are not scaled by the aggregate
// intensity.
//
// A destination with neither an enabled route nor a hardwire is never
// written, so its default (for example 1 for amplitude inputs) survives.
package modmatrix
