package osc

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/clock"
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/lut"
	"github.com/cwbudde/algo-synth/dsp/mix"
	"github.com/cwbudde/algo-synth/dsp/signal"
	"github.com/cwbudde/algo-synth/synth/module"
)

// VACore renders virtual-analog waveforms with PolyBLEP band limiting.
type VACore struct {
	clk   clock.SynthClock
	noise *signal.Noise
	seed  int64
	pitch pitch
}

// NewVACore returns a virtual-analog core. seed drives the noise waveform.
func NewVACore(seed int64) *VACore {
	return &VACore{noise: signal.NewNoise(seed), seed: seed}
}

// Info implements module.Core.
func (c *VACore) Info() module.CoreInfo {
	return module.CoreInfo{Type: module.TypeOscillator, Name: "va", PreferredSlot: 0}
}

// Frequency returns the current clock frequency in Hz.
func (c *VACore) Frequency() float64 { return c.clk.Frequency() }

// Reset implements module.Core.
func (c *VACore) Reset(d *module.ProcessData[Parameters]) bool {
	c.clk.Reset(0)
	c.noise.Reseed(c.seed)
	c.pitch.reset()

	return true
}

// Update implements module.Core.
func (c *VACore) Update(d *module.ProcessData[Parameters]) bool {
	c.clk.SetFrequency(c.pitch.frequency(d), d.SampleRate)
	return true
}

// Render implements module.Core.
func (c *VACore) Render(d *module.ProcessData[Parameters]) bool {
	p := d.Params
	n := d.Samples
	if n <= 0 {
		return false
	}

	left, right := outputs(d)
	gl, gr := mix.Balance(core.Clamp(p.Pan+d.ModIn[module.InPanMod], -1, 1))
	pw := core.Clamp(p.PulseWidth+0.5*d.ModIn[module.InShapeMod], MinPulseWidth, MaxPulseWidth)
	pm := d.ModIn[module.InPhaseMod] * p.PhaseModIndex
	fm := d.ModIn[module.InFreqMod] * p.FMIndex * c.clk.Frequency()

	if fm != 0 {
		c.clk.AddFrequencyOffset(fm)
	}

	for i := 0; i < n; i++ {
		if pm != 0 {
			c.clk.Save()
			c.clk.AddPhaseOffset(pm, true)
		}

		v := c.sample(p.Waveform, pw, p.Math) * p.Level
		if pm != 0 {
			c.clk.Restore()
		}

		c.clk.AdvanceWrap()

		left[i] = v * gl
		if right != nil {
			right[i] = v * gr
		}
	}

	if fm != 0 {
		c.clk.RemoveFrequencyOffset()
	}

	c.pitch.advance(n)

	return true
}

func (c *VACore) sample(w Waveform, pw float64, mode lut.Mode) float64 {
	t := c.clk.Counter()
	dt := math.Abs(c.clk.Increment())
	switch w {
	case Saw:
		return 2*t - 1 - polyBLEP(t, dt)
	case Square:
		v := -1.0
		if t < pw {
			v = 1
		}

		v += polyBLEP(t, dt)
		v -= polyBLEP(clock.Wrap(t+1-pw), dt)

		return v
	case Triangle:
		return 1 - 2*math.Abs(2*clock.Wrap(t+0.25)-1)
	case Noise:
		return c.noise.White()
	default:
		return lut.Sine(t, mode)
	}
}

// polyBLEP returns the two-sample polynomial residual of a unit step at
// phase 0 for a phase t and increment dt.
func polyBLEP(t, dt float64) float64 {
	if dt <= 0 {
		return 0
	}

	switch {
	case t < dt:
		t /= dt
		return t + t - t*t - 1
	case t > 1-dt:
		t = (t - 1) / dt
		return t*t + t + t + 1
	}

	return 0
}

// NoteOn implements module.Core.
func (c *VACore) NoteOn(d *module.ProcessData[Parameters]) bool {
	c.clk.Reset(0)
	c.pitch.noteOn(d)

	return true
}

// NoteOff implements module.Core.
func (c *VACore) NoteOff(d *module.ProcessData[Parameters]) bool { return true }

// outputs returns the left and right output channels. right is nil for a
// mono buffer.
func outputs(d *module.ProcessData[Parameters]) (left, right []float64) {
	left = d.Audio.Output(0)
	if d.Audio.NumOutputs() > 1 {
		right = d.Audio.Output(1)
	}

	return left, right
}
