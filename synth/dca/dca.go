package dca

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/mix"
	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/module"
)

// Parameters configure the amplifier.
//
// EGIntensity in [0, 1] blends between unity (0) and full envelope
// control (1). AmpModDB scales the bipolar InAmpMod input. Velocity in
// [0, 1] blends in the MIDI attenuation curve of the note velocity.
type Parameters struct {
	GainDB      float64 `yaml:"gain_db"`
	EGIntensity float64 `yaml:"eg_intensity"`
	AmpModDB    float64 `yaml:"amp_mod_db"`
	Velocity    float64 `yaml:"velocity"`
	Pan         float64 `yaml:"pan"`
}

// DefaultParameters returns a unity amplifier under full envelope control.
func DefaultParameters() Parameters {
	return Parameters{
		EGIntensity: 1,
		AmpModDB:    12,
		Velocity:    1,
	}
}

// Module is the amplifier.
type Module struct {
	*module.Module[Parameters]

	gain        float64
	left, right float64
}

// New creates an amplifier. A nil params uses DefaultParameters.
func New(params *Parameters, data midi.InputData, opts ...module.Option) (*Module, error) {
	if params == nil {
		p := DefaultParameters()
		params = &p
	}

	opts = append([]module.Option{module.WithChannels(2, 2)}, opts...)
	m, err := module.New[Parameters](module.TypeDCA, params, data, opts...)
	if err != nil {
		return nil, err
	}

	return &Module{Module: m}, nil
}

// Gain returns the amplitude computed by the last update, before panning.
func (m *Module) Gain() float64 { return m.gain }

// PanGains returns the left and right pan gains of the last update.
func (m *Module) PanGains() (left, right float64) { return m.left, m.right }

// Update computes gain and pan for the next block.
func (m *Module) Update() bool {
	d := m.Data()
	p := d.Params
	in := d.ModIn

	eg := 1 + core.Clamp(p.EGIntensity, 0, 1)*(in[module.InEGMod]-1)
	maxDown := core.Clamp(in[module.InMaxDownAmpMod], 0, 1)
	db := p.GainDB + core.Clamp(in[module.InAmpMod], -1, 1)*p.AmpModDB

	vel := core.Clamp(p.Velocity, 0, 1)
	velGain := 1 - vel + vel*core.MIDIToAttenuation(uint32(d.Note.Velocity))

	m.gain = core.DBToLinear(db) * eg * maxDown * velGain * midi.Volume(d.MIDI)

	pan := core.Clamp(p.Pan+in[module.InPanMod]+midi.Pan(d.MIDI), -1, 1)
	m.left, m.right = mix.Pan(pan)

	d.ModOut[module.OutNormal] = m.gain

	return true
}

// Render applies gain and pan to the input block.
func (m *Module) Render(samples int) bool {
	m.SetSamples(samples)
	m.Update()
	a := m.Audio()
	if samples <= 0 || a.NumOutputs() == 0 || a.NumInputs() == 0 {
		return false
	}

	vecmath.ScaleBlock(a.Output(0), a.Input(0), m.gain*m.left)
	if a.NumOutputs() > 1 {
		src := a.Input(0)
		if a.NumInputs() > 1 {
			src = a.Input(1)
		}

		vecmath.ScaleBlock(a.Output(1), src, m.gain*m.right)
	}

	return true
}

var _ module.Renderer = (*Module)(nil)
