package lfo

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/lut"
)

// Waveform selects the LFO shape.
type Waveform int

const (
	Triangle Waveform = iota
	Sine
	RampUp
	RampDown
	ExpRampUp
	ExpRampDown
	ExpTriangle
	Square
	RandomSampleHold
	// Pluck is a unipolar Hann-window pulse, intended for one-shot mode.
	Pluck
)

var waveformNames = [...]string{
	"triangle", "sine", "ramp_up", "ramp_down", "exp_ramp_up",
	"exp_ramp_down", "exp_triangle", "square", "random_sh", "pluck",
}

func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformNames) {
		return fmt.Sprintf("Waveform(%d)", int(w))
	}

	return waveformNames[w]
}

// MarshalText implements encoding.TextMarshaler.
func (w Waveform) MarshalText() ([]byte, error) {
	if w < 0 || int(w) >= len(waveformNames) {
		return nil, fmt.Errorf("lfo: unknown waveform %d", int(w))
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

	return fmt.Errorf("lfo: unknown waveform %q", text)
}

// Mode controls what note-on does to the clock.
type Mode int

const (
	// Sync restarts the cycle on note-on.
	Sync Mode = iota
	// OneShot restarts on note-on and stops after one cycle.
	OneShot
	// FreeRun never restarts the clock.
	FreeRun
)

var modeNames = [...]string{"sync", "one_shot", "free_run"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(modeNames) {
		return nil, fmt.Errorf("lfo: unknown mode %d", int(m))
	}

	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	for i, name := range modeNames {
		if name == string(text) {
			*m = Mode(i)
			return nil
		}
	}

	return fmt.Errorf("lfo: unknown mode %q", text)
}

// Frequency limits in Hz.
const (
	MinFrequency = 0.02
	MaxFrequency = 20.0
)

// Parameters configure the LFO.
//
// Shape in [-1, 1] morphs the waveform towards its concave (negative) or
// convex (positive) transform. Quantize > 1 steps the output into that
// many levels. RateModOctaves scales the bipolar rate modulation input.
// With TempoSync the frequency is one cycle per Beats at the host tempo.
type Parameters struct {
	Waveform       Waveform `yaml:"waveform"`
	Mode           Mode     `yaml:"mode"`
	FrequencyHz    float64  `yaml:"frequency_hz"`
	Amplitude      float64  `yaml:"amplitude"`
	Quantize       int      `yaml:"quantize"`
	Shape          float64  `yaml:"shape"`
	DelayMs        float64  `yaml:"delay_ms"`
	FadeInMs       float64  `yaml:"fade_in_ms"`
	RateModOctaves float64  `yaml:"rate_mod_octaves"`
	TempoSync      bool     `yaml:"tempo_sync"`
	Beats          float64  `yaml:"beats"`
	Math           lut.Mode `yaml:"math"`
}

// DefaultParameters returns a 1 Hz full-scale sine.
func DefaultParameters() Parameters {
	return Parameters{
		Waveform:       Sine,
		Mode:           Sync,
		FrequencyHz:    1,
		Amplitude:      1,
		RateModOctaves: 1,
		Beats:          1,
	}
}
