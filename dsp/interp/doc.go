// Package interp provides the fractional-index interpolators used by table
// lookups.
//
// Available methods, from cheapest to highest quality:
//
//   - [Linear]:   2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite
//
// [Mode] selects between them where the choice is a user parameter.
package interp
