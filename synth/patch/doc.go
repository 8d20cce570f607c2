// Package patch loads and saves voice patches as YAML.
//
// A patch holds the complete voice.Parameters (module settings, core
// selections and hardwire intensities) plus the user modulation routes,
// which are stored by source and destination name so patch files stay
// readable and survive reordering of the route tables.
package patch
