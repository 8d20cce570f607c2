// Package analysis measures rendered audio: zero crossings, crossing-based
// frequency estimates and FFT peak frequency. It backs voice-level tests and
// the synthrender command.
package analysis
