package filter

import (
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/filter/va"
	"github.com/cwbudde/algo-synth/dsp/lut"
	"github.com/cwbudde/algo-synth/synth/module"
)

// Cutoff returns the modulated, key-tracked and clamped cutoff in Hz.
func Cutoff(d *module.ProcessData[Parameters]) float64 {
	p := d.Params
	semis := p.KeyTrack * (float64(d.Note.Note) - KeyTrackCenter)
	semis += d.ModIn[module.InBipolarMod] * p.BipolarModSemitones
	semis += d.ModIn[module.InEGMod] * p.EGModSemitones
	fc := p.CutoffHz
	if semis != 0 {
		fc *= lut.PitchRatio(semis, p.Math)
	}

	return va.ClampCutoff(fc, d.SampleRate)
}

// Resonance returns the modulated resonance control in [1, 10].
func Resonance(d *module.ProcessData[Parameters]) float64 {
	p := d.Params
	return core.Clamp(p.Q+d.ModIn[module.InQMod]*p.QModRange, 1, 10)
}

// nativeQ maps the resonance control to the native Q or feedback gain of
// the topology.
func nativeQ(t Type, q float64) float64 {
	switch t {
	case LPF2, HPF2, BPF2, BSF2:
		return va.SVFQRange.Map(q)
	case Korg35LPF, Korg35HPF:
		return va.Korg35KRange.Map(q)
	case MoogLPF2, MoogLPF4, MoogBPF2, MoogBPF4, MoogHPF2, MoogHPF4:
		return va.MoogKRange.Map(q)
	case DiodeLPF4:
		return va.DiodeKRange.Map(q)
	}

	return 0
}

// coeffKey identifies a coefficient set. Coefficients are recomputed only
// when it changes.
type coeffKey struct {
	typ Type
	fc  float64
	q   float64
}

func keyFor(d *module.ProcessData[Parameters]) coeffKey {
	t := d.Params.Type
	return coeffKey{typ: t, fc: Cutoff(d), q: nativeQ(t, Resonance(d))}
}

// channels returns the filter's stereo input and output channels. The right
// slices are nil for mono buffers.
func channels(d *module.ProcessData[Parameters]) (inL, inR, outL, outR []float64) {
	a := d.Audio
	inL = a.Input(0)
	outL = a.Output(0)
	if a.NumInputs() > 1 {
		inR = a.Input(1)
	}

	if a.NumOutputs() > 1 {
		outR = a.Output(1)
	}

	return inL, inR, outL, outR
}

// outputGain returns the linear output gain.
func outputGain(p *Parameters) float64 {
	if p.OutputDB == 0 {
		return 1
	}

	return core.DBToLinear(p.OutputDB)
}
