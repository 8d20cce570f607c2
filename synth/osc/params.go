package osc

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/interp"
	"github.com/cwbudde/algo-synth/dsp/lut"
)

// Waveform selects the virtual-analog waveform.
type Waveform int

const (
	Sine Waveform = iota
	Saw
	Square
	Triangle
	Noise
)

var waveformNames = [...]string{"sine", "saw", "square", "triangle", "noise"}

func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformNames) {
		return fmt.Sprintf("Waveform(%d)", int(w))
	}

	return waveformNames[w]
}

// MarshalText implements encoding.TextMarshaler.
func (w Waveform) MarshalText() ([]byte, error) {
	if w < 0 || int(w) >= len(waveformNames) {
		return nil, fmt.Errorf("osc: unknown waveform %d", int(w))
	}

	return []byte(waveformNames[w]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Waveform) UnmarshalText(text []byte) error {
	for i, name := range waveformNames {
		if name == string(text) {
			*w = Waveform(i)
			return nil
		}
	}

	return fmt.Errorf("osc: unknown waveform %q", text)
}

// Parameter limits.
const (
	MinPulseWidth = 0.02
	MaxPulseWidth = 0.98
	MinFrequency  = 1.0
)

// Parameters configure an oscillator.
//
// PitchModSemitones and EGModSemitones scale the bipolar pitch input and
// the envelope input. ShapeMod moves PulseWidth by up to half a cycle.
// PhaseModIndex scales the phase modulation input in cycles and FMIndex
// scales linear FM as a fraction of the carrier frequency. Pan is a
// balance in [-1, 1]; Level is a linear gain. Interpolation applies to
// wavetable reads.
type Parameters struct {
	Waveform          Waveform    `yaml:"waveform"`
	Octave            int         `yaml:"octave"`
	Coarse            int         `yaml:"coarse"`
	Fine              float64     `yaml:"fine_cents"`
	PitchModSemitones float64     `yaml:"pitch_mod_semitones"`
	EGModSemitones    float64     `yaml:"eg_mod_semitones"`
	PortamentoMs      float64     `yaml:"portamento_ms"`
	PulseWidth        float64     `yaml:"pulse_width"`
	PhaseModIndex     float64     `yaml:"phase_mod_index"`
	FMIndex           float64     `yaml:"fm_index"`
	Pan               float64     `yaml:"pan"`
	Level             float64     `yaml:"level"`
	Table             string      `yaml:"table"`
	Math              lut.Mode    `yaml:"math"`
	Interpolation     interp.Mode `yaml:"interpolation"`
}

// DefaultParameters returns a unity-level centred saw.
func DefaultParameters() Parameters {
	return Parameters{
		Waveform:          Saw,
		PitchModSemitones: 1,
		PulseWidth:        0.5,
		Level:             1,
		Table:             "saw",
	}
}
