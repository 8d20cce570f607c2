// Package lut provides process-wide lookup tables for the transcendental
// functions and transfer curves evaluated in render loops.
//
// Every function takes a [Mode] selecting direct calculation, table lookup
// with linear interpolation, or a fast approximation. Tables are immutable
// and built once on first use. The documented tolerances bound the
// difference between the table path and the closed form:
//
//   - [PitchRatio]: relative error below [PitchTableTolerance] over ±120 semitones
//   - [Sine]: absolute error below [SineTableTolerance]
//   - [Concave], [Convex]: absolute error below [TransformTableTolerance] on [0, 0.99] and [0.01, 1]
//   - [Hann]: absolute error below [SineTableTolerance]
//
// [ModeApprox] routes exponentials through algo-approx and stays within
// [ApproxTolerance] relative error; functions without an approximation fall
// back to the table.
package lut
