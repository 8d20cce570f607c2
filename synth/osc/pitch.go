package osc

import (
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/lut"
	"github.com/cwbudde/algo-synth/dsp/modulator"
	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/module"
)

// pitch tracks the note and portamento shared by every oscillator core.
type pitch struct {
	glide    modulator.Glide
	lastNote float64
	haveNote bool
}

func (p *pitch) reset() {
	p.glide.Stop()
	p.haveNote = false
}

func (p *pitch) noteOn(d *module.ProcessData[Parameters]) {
	note := float64(d.Note.Note)
	if d.Params.PortamentoMs > 0 && p.haveNote && note != p.lastNote {
		p.glide.Start(p.lastNote, note, d.Params.PortamentoMs/1000, d.SampleRate)
	} else {
		p.glide.Stop()
	}

	p.lastNote = note
	p.haveNote = true
}

func (p *pitch) advance(n int) {
	if p.glide.Active() {
		p.glide.Advance(n)
	}
}

// Semitones returns the total pitch offset applied to the note frequency.
func Semitones(d *module.ProcessData[Parameters], glide float64) float64 {
	prm := d.Params
	s := float64(prm.Octave*12+prm.Coarse) + prm.Fine/100
	s += d.ModIn[module.InPitchMod] * prm.PitchModSemitones
	s += d.ModIn[module.InEGMod] * prm.EGModSemitones
	s += glide
	if d.MIDI != nil {
		s += midi.PitchBendSemitones(d.MIDI) + midi.MasterTuneSemitones(d.MIDI)
	}

	return s
}

// frequency returns the oscillator frequency, limited to [MinFrequency,
// Nyquist].
func (p *pitch) frequency(d *module.ProcessData[Parameters]) float64 {
	hz := d.Note.PitchHz * lut.PitchRatio(Semitones(d, p.glide.Offset()), d.Params.Math)
	nyquist := d.SampleRate / 2
	if nyquist < MinFrequency {
		return MinFrequency
	}

	return core.Clamp(hz, MinFrequency, nyquist)
}
