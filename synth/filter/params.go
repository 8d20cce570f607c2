package filter

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/filter/moog"
	"github.com/cwbudde/algo-synth/dsp/lut"
)

// Type selects the filter response and topology.
type Type int

const (
	Bypass Type = iota
	LPF1
	HPF1
	APF1
	LPF2
	HPF2
	BPF2
	BSF2
	Korg35LPF
	Korg35HPF
	MoogLPF2
	MoogLPF4
	MoogBPF2
	MoogBPF4
	MoogHPF2
	MoogHPF4
	DiodeLPF4
)

var typeNames = [...]string{
	"bypass", "lpf1", "hpf1", "apf1", "lpf2", "hpf2", "bpf2", "bsf2",
	"k35_lpf", "k35_hpf", "moog_lpf2", "moog_lpf4", "moog_bpf2",
	"moog_bpf4", "moog_hpf2", "moog_hpf4", "diode_lpf4",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return typeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(typeNames) {
		return nil, fmt.Errorf("filter: unknown type %d", int(t))
	}

	return []byte(typeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	for i, name := range typeNames {
		if name == string(text) {
			*t = Type(i)
			return nil
		}
	}

	return fmt.Errorf("filter: unknown type %q", text)
}

// SelfResonant reports whether the topology has global feedback that can
// push the output past unity.
func (t Type) SelfResonant() bool {
	return t >= Korg35LPF && t <= DiodeLPF4
}

// KeyTrackCenter is the note at which key tracking leaves the cutoff
// unchanged.
const KeyTrackCenter = 60

// Parameters configure the filter.
//
// Q is the user resonance control in [1, 10]. KeyTrack is the fraction of
// the note distance from KeyTrackCenter added to the cutoff in semitones.
// QModRange scales the bipolar resonance input in control units.
// Saturation > 0 enables the in-loop tanh drive of the resonant
// topologies. GainCompensation restores the passband lost to ladder
// feedback. LadderModel and LadderOversampling configure the nonlinear
// ladder core.
type Parameters struct {
	Type                Type         `yaml:"type"`
	CutoffHz            float64      `yaml:"cutoff_hz"`
	Q                   float64      `yaml:"q"`
	KeyTrack            float64      `yaml:"key_track"`
	BipolarModSemitones float64      `yaml:"bipolar_mod_semitones"`
	EGModSemitones      float64      `yaml:"eg_mod_semitones"`
	QModRange           float64      `yaml:"q_mod_range"`
	GainCompensation    bool         `yaml:"gain_compensation"`
	AnalogMatch         bool         `yaml:"analog_match"`
	Saturation          float64      `yaml:"saturation"`
	OutputDB            float64      `yaml:"output_db"`
	Math                lut.Mode     `yaml:"math"`
	LadderModel         moog.Variant `yaml:"ladder_model"`
	LadderOversampling  int          `yaml:"ladder_oversampling"`
}

// DefaultParameters returns an open state-variable lowpass.
func DefaultParameters() Parameters {
	return Parameters{
		Type:                LPF2,
		CutoffHz:            1000,
		Q:                   1,
		BipolarModSemitones: 24,
		EGModSemitones:      48,
		QModRange:           4.5,
		LadderModel:         moog.VariantHuovilainen,
		LadderOversampling:  2,
	}
}
