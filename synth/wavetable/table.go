package wavetable

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/interp"
)

// TableLength is the number of samples per cycle.
const TableLength = 2048

// Table is one band-limited cycle. The sample slice carries one guard
// sample equal to the first so interpolation never wraps.
type Table struct {
	samples   []float64
	topHz     float64
	harmonics int
}

// Read returns the interpolated sample at phase in cycles. Phases
// outside [0, 1) are wrapped.
func (t *Table) Read(phase float64, mode interp.Mode) float64 {
	if phase < 0 || phase >= 1 {
		phase -= math.Floor(phase)
	}

	pos := phase * TableLength
	i := int(pos)
	if i >= TableLength {
		i = TableLength - 1
	}

	frac := pos - float64(i)
	if mode == interp.ModeHermite {
		const mask = TableLength - 1

		return interp.Hermite4(frac,
			t.samples[(i-1)&mask], t.samples[i], t.samples[i+1], t.samples[(i+2)&mask])
	}

	return interp.Linear(frac, t.samples[i], t.samples[i+1])
}

// Length returns the cycle length in samples.
func (t *Table) Length() int { return TableLength }

// TopFrequency returns the highest fundamental the table is valid for.
func (t *Table) TopFrequency() float64 { return t.topHz }

// Harmonics returns the number of harmonics the table was built with.
func (t *Table) Harmonics() int { return t.harmonics }

// Source is a named waveform with band-limited tables.
type Source interface {
	Name() string
	Length() int
	// TableForFrequency returns the table for a fundamental in Hz.
	TableForFrequency(hz float64) *Table
	// TableForNote returns the table for a (fractional) MIDI note.
	TableForNote(note float64) *Table
}
