package lfo

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/clock"
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/lut"
	"github.com/cwbudde/algo-synth/dsp/modulator"
	"github.com/cwbudde/algo-synth/dsp/signal"
	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/module"
)

// ClassicCore is the block-rate LFO.
type ClassicCore struct {
	clk   clock.SynthClock
	delay clock.Timer
	fade  modulator.Ramp
	noise *signal.Noise

	held         float64
	oneShotDone  bool
	lastOutput   float64
	lastUnipolar float64
}

// NewClassicCore returns an LFO core whose sample-and-hold waveform is
// driven by a noise source with the given seed.
func NewClassicCore(seed int64) *ClassicCore {
	c := &ClassicCore{noise: signal.NewNoise(seed)}
	c.held = c.noise.White()

	return c
}

// Info implements module.Core.
func (c *ClassicCore) Info() module.CoreInfo {
	return module.CoreInfo{Type: module.TypeLFO, Name: "classic", PreferredSlot: 0}
}

// Phase returns the clock position in cycles.
func (c *ClassicCore) Phase() float64 { return c.clk.Counter() }

// Complete reports whether a one-shot cycle has finished.
func (c *ClassicCore) Complete() bool { return c.oneShotDone }

// Reset implements module.Core.
func (c *ClassicCore) Reset(d *module.ProcessData[Parameters]) bool {
	c.clk.Reset(0)
	c.restartNote(d)

	return true
}

// Update implements module.Core.
func (c *ClassicCore) Update(d *module.ProcessData[Parameters]) bool {
	c.clk.SetFrequency(Frequency(d.Params, d.ModIn[module.InFreqMod], midi.BPM(d.MIDI)), d.SampleRate)
	return true
}

// Frequency returns the modulated, clamped LFO rate.
func Frequency(p *Parameters, rateMod, bpm float64) float64 {
	hz := p.FrequencyHz
	if p.TempoSync && p.Beats > 0 && bpm > 0 {
		hz = bpm / 60 / p.Beats
	}

	if rateMod != 0 && p.RateModOctaves != 0 {
		hz *= math.Exp2(core.Clamp(rateMod, -1, 1) * p.RateModOctaves)
	}

	return core.Clamp(hz, MinFrequency, MaxFrequency)
}

// Render implements module.Core.
func (c *ClassicCore) Render(d *module.ProcessData[Parameters]) bool {
	p := d.Params
	n := d.Samples

	if c.oneShotDone {
		c.publish(d, c.lastOutput, c.lastUnipolar, true)
		return true
	}

	if !c.delay.Expired() {
		c.delay.Advance(n)
		c.advance(n)
		c.publish(d, 0, 0, false)

		return true
	}

	if p.Mode == OneShot && c.clk.WillWrap(n) {
		c.oneShotDone = true
		c.publish(d, c.lastOutput, c.lastUnipolar, true)

		return true
	}

	raw := Waveshape(p.Waveform, c.clk.Counter(), c.held, p.Math)
	raw = applyShape(raw, p.Shape, p.Math)
	raw = quantize(raw, p.Quantize)

	gain := p.Amplitude * c.fade.Value()
	c.fade.Advance(n)

	out := raw * gain
	uni := core.BipolarToUnipolar(raw) * gain
	if p.Waveform == Pluck {
		uni = raw * gain
	}

	c.lastOutput = out
	c.lastUnipolar = uni
	c.publish(d, out, uni, false)

	c.advance(n)

	return true
}

func (c *ClassicCore) advance(n int) {
	c.clk.AdvanceBy(n)
	if c.clk.Wrap() {
		c.held = c.noise.White()
	}
}

func (c *ClassicCore) publish(d *module.ProcessData[Parameters], out, uni float64, complete bool) {
	d.ModOut[module.OutNormal] = out
	d.ModOut[module.OutInverted] = -out
	d.ModOut[module.OutUnipolarFromMin] = uni
	d.ModOut[module.OutUnipolarFromMax] = 1 - uni
	if complete {
		d.ModOut[module.OutOneShotComplete] = 1
	} else {
		d.ModOut[module.OutOneShotComplete] = 0
	}
}

// NoteOn implements module.Core.
func (c *ClassicCore) NoteOn(d *module.ProcessData[Parameters]) bool {
	if d.Params.Mode != FreeRun {
		c.clk.Reset(0)
		c.held = c.noise.White()
	}

	c.restartNote(d)

	return true
}

// NoteOff implements module.Core.
func (c *ClassicCore) NoteOff(*module.ProcessData[Parameters]) bool {
	return true
}

func (c *ClassicCore) restartNote(d *module.ProcessData[Parameters]) {
	c.oneShotDone = false
	c.lastOutput = 0
	c.lastUnipolar = 0
	c.delay.SetLimitSeconds(d.Params.DelayMs/1000, d.SampleRate)
	c.delay.Reset()
	c.fade.StartSeconds(0, 1, d.Params.FadeInMs/1000, d.SampleRate)
}

// Waveshape evaluates a waveform at phase in [0, 1). held is the current
// sample-and-hold value. Pluck is unipolar; every other shape is bipolar.
func Waveshape(w Waveform, phase, held float64, mode lut.Mode) float64 {
	switch w {
	case Triangle:
		return 1 - 4*math.Abs(phase-0.5)
	case Sine:
		return lut.Sine(phase, mode)
	case RampUp:
		return 2*phase - 1
	case RampDown:
		return 1 - 2*phase
	case ExpRampUp:
		return core.UnipolarToBipolar(lut.Concave(phase, mode))
	case ExpRampDown:
		return core.UnipolarToBipolar(lut.Concave(1-phase, mode))
	case ExpTriangle:
		tri := 1 - 2*math.Abs(phase-0.5)
		return core.UnipolarToBipolar(lut.Concave(tri, mode))
	case Square:
		if phase < 0.5 {
			return 1
		}

		return -1
	case RandomSampleHold:
		return held
	case Pluck:
		return lut.Hann(phase, mode)
	default:
		return 0
	}
}

// applyShape blends x with its convex (shape > 0) or concave (shape < 0)
// transform.
func applyShape(x, shape float64, mode lut.Mode) float64 {
	if shape == 0 {
		return x
	}

	shape = core.Clamp(shape, -1, 1)
	u := core.BipolarToUnipolar(x)
	var t float64
	if shape > 0 {
		t = lut.Convex(u, mode)
	} else {
		t = lut.Concave(u, mode)
		shape = -shape
	}

	return (1-shape)*x + shape*core.UnipolarToBipolar(t)
}

// quantize steps x into levels evenly spaced values over [-1, 1].
func quantize(x float64, levels int) float64 {
	if levels < 2 {
		return x
	}

	steps := float64(levels - 1)
	u := core.BipolarToUnipolar(x)
	u = math.Round(u*steps) / steps

	return core.UnipolarToBipolar(u)
}
