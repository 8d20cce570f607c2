package wavetable

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/synth/midi"
)

// Band layout: one table per octave starting at FirstBandNote.
const (
	FirstBandNote = 12
	NumBands      = 10
)

var (
	// ErrInvalidSampleRate is returned for non-positive sample rates.
	ErrInvalidSampleRate = errors.New("wavetable: invalid sample rate")
	// ErrSilentSeries is returned when a harmonic series has no energy.
	ErrSilentSeries = errors.New("wavetable: harmonic series is silent")
)

// Harmonic describes partial k (k >= 1) as a sine amplitude and a phase
// offset in radians.
type Harmonic func(k int) (amplitude, phase float64)

// Bank is the in-memory Source.
type Bank struct {
	name   string
	tables [NumBands]*Table
}

// NewBank synthesises a source from a harmonic series. With halfRate the
// tables are limited to a quarter of the sample rate instead of half.
func NewBank(name string, sampleRate float64, halfRate bool, series Harmonic) (*Bank, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
	}

	nyquist := sampleRate / 2
	if halfRate {
		nyquist = sampleRate / 4
	}

	plan, err := algofft.NewPlan64(TableLength)
	if err != nil {
		return nil, fmt.Errorf("wavetable: fft plan: %w", err)
	}

	spectrum := make([]complex128, TableLength)
	cycle := make([]complex128, TableLength)

	b := &Bank{name: name}
	for band := range b.tables {
		top := midi.NoteToFrequency(float64(FirstBandNote + 12*(band+1)))
		h := int(nyquist / top)
		if h < 1 {
			h = 1
		}

		if h > TableLength/2-1 {
			h = TableLength/2 - 1
		}

		for i := range spectrum {
			spectrum[i] = 0
		}

		for k := 1; k <= h; k++ {
			amp, phase := series(k)
			// sin(x+phase) = Im(e^{i(x+phase)}); bin k carries -i*amp/2*e^{i*phase}.
			c := complex(amp/2, 0) * complex(math.Sin(phase), -math.Cos(phase))
			spectrum[k] = c
			spectrum[TableLength-k] = complex(real(c), -imag(c))
		}

		if err := plan.Inverse(cycle, spectrum); err != nil {
			return nil, fmt.Errorf("wavetable: inverse fft: %w", err)
		}

		samples := make([]float64, TableLength+1)
		for i := range TableLength {
			samples[i] = real(cycle[i])
		}

		peak := vecmath.MaxAbs(samples[:TableLength])
		if peak == 0 {
			return nil, fmt.Errorf("%w: %s", ErrSilentSeries, name)
		}

		vecmath.ScaleBlock(samples[:TableLength], samples[:TableLength], 1/peak)
		samples[TableLength] = samples[0]

		b.tables[band] = &Table{samples: samples, topHz: top, harmonics: h}
	}

	return b, nil
}

// Name implements Source.
func (b *Bank) Name() string { return b.name }

// Length implements Source.
func (b *Bank) Length() int { return TableLength }

// TableForFrequency implements Source. Frequencies above the top band
// use the top band.
func (b *Bank) TableForFrequency(hz float64) *Table {
	hz = math.Abs(hz)
	for _, t := range b.tables {
		if hz <= t.topHz {
			return t
		}
	}

	return b.tables[NumBands-1]
}

// TableForNote implements Source.
func (b *Bank) TableForNote(note float64) *Table {
	return b.TableForFrequency(midi.NoteToFrequency(note))
}

// Standard harmonic series, each normalised to unit peak by NewBank.
var (
	SineSeries Harmonic = func(k int) (float64, float64) {
		if k == 1 {
			return 1, 0
		}

		return 0, 0
	}

	SawSeries Harmonic = func(k int) (float64, float64) {
		return 1 / float64(k), 0
	}

	SquareSeries Harmonic = func(k int) (float64, float64) {
		if k%2 == 0 {
			return 0, 0
		}

		return 1 / float64(k), 0
	}

	TriangleSeries Harmonic = func(k int) (float64, float64) {
		if k%2 == 0 {
			return 0, 0
		}

		amp := 1 / float64(k*k)
		if (k/2)%2 == 1 {
			amp = -amp
		}

		return amp, 0
	}
)
