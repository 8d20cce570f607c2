// Package mix provides the gain laws used when combining and placing
// signals: constant-power panning, equal-power crossfades and balance.
package mix
