package eg

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/lut"
	"github.com/cwbudde/algo-synth/synth/module"
)

// Time-constant offsets. Attack charges towards 1+attackTCO and decay and
// release discharge towards their floor minus decayTCO.
var (
	attackTCO = math.Exp(-1.5)
	decayTCO  = math.Exp(-4.95)
)

type segmentKey struct {
	attackMs, decayMs, releaseMs, sustain, sampleRate float64
	mode                                              lut.Mode
}

// AnalogCore is the exponential RC-style envelope.
type AnalogCore struct {
	envelope

	attackCoeff, attackOffset   float64
	decayCoeff, decayOffset     float64
	releaseCoeff, releaseOffset float64

	attackMs, decayMs, releaseMs float64
	sustain                      float64
	contour                      Contour

	key   segmentKey
	valid bool
}

// NewAnalogCore returns an analog envelope core.
func NewAnalogCore() *AnalogCore {
	return &AnalogCore{}
}

// Info implements module.Core.
func (c *AnalogCore) Info() module.CoreInfo {
	return module.CoreInfo{Type: module.TypeEG, Name: "analog", PreferredSlot: 0}
}

// State returns the current state.
func (c *AnalogCore) State() State { return c.state }

// Output returns the most recent envelope value.
func (c *AnalogCore) Output() float64 { return c.out }

// IsActive reports whether the envelope is not Off.
func (c *AnalogCore) IsActive() bool { return c.state != Off }

// Reset implements module.Core.
func (c *AnalogCore) Reset(d *module.ProcessData[Parameters]) bool {
	c.envelope.reset(d)
	c.valid = false

	return true
}

// segmentCoeff returns the one-pole coefficient that crosses from the
// start to the target (tco away from the asymptote) in samples. The
// coefficient must stay inside (0, 1) or the segment never ends.
func segmentCoeff(samples, tco float64, mode lut.Mode) float64 {
	x := -math.Log((1+tco)/tco) / samples
	c := lut.Exp(x, mode)
	if c <= 0 || c >= 1 {
		c = math.Exp(x)
	}

	return c
}

// Update implements module.Core. Coefficients are recomputed only when
// a time, the sustain level or the sample rate changed.
func (c *AnalogCore) Update(d *module.ProcessData[Parameters]) bool {
	p := d.Params
	if c.envelope.poll(d) {
		c.state = Release
	}

	c.contour = p.Contour

	key := segmentKey{
		attackMs:   p.AttackMs * c.attackScalar,
		decayMs:    p.DecayMs * c.decayScalar,
		releaseMs:  p.ReleaseMs,
		sustain:    p.SustainLevel,
		sampleRate: d.SampleRate,
		mode:       p.Math,
	}

	if c.valid && key == c.key {
		return true
	}

	c.key = key
	c.valid = true
	c.sampleRate = d.SampleRate
	c.attackMs, c.decayMs, c.releaseMs = key.attackMs, key.decayMs, key.releaseMs
	c.sustain = key.sustain

	if n := key.attackMs * d.SampleRate / 1000; n > 0 {
		c.attackCoeff = segmentCoeff(n, attackTCO, key.mode)
		c.attackOffset = (1 + attackTCO) * (1 - c.attackCoeff)
	}

	if n := key.decayMs * d.SampleRate / 1000; n > 0 {
		c.decayCoeff = segmentCoeff(n, decayTCO, key.mode)
		c.decayOffset = (c.sustain - decayTCO) * (1 - c.decayCoeff)
	}

	if n := key.releaseMs * d.SampleRate / 1000; n > 0 {
		c.releaseCoeff = segmentCoeff(n, decayTCO, key.mode)
		c.releaseOffset = -decayTCO * (1 - c.releaseCoeff)
	}

	return true
}

// Render implements module.Core.
func (c *AnalogCore) Render(d *module.ProcessData[Parameters]) bool {
	c.envelope.render(d, c.tick)
	return true
}

// NoteOn implements module.Core.
func (c *AnalogCore) NoteOn(d *module.ProcessData[Parameters]) bool {
	if c.envelope.startNote(d) {
		c.state = Attack
	}

	c.valid = false

	return true
}

// NoteOff implements module.Core.
func (c *AnalogCore) NoteOff(d *module.ProcessData[Parameters]) bool {
	if c.envelope.stopNote(d) {
		c.state = Release
	}

	return true
}

// Shutdown implements module.Shutdowner.
func (c *AnalogCore) Shutdown() bool {
	return c.envelope.shutdown()
}

func (c *AnalogCore) tick() float64 {
	switch c.state {
	case Off:
		c.out = 0

	case Attack:
		if c.attackMs <= 0 {
			c.out = 1
			c.endAttack()
			if c.state == Decay {
				return c.tickDecay()
			}

			return c.out
		}

		c.out = c.attackOffset + c.out*c.attackCoeff
		if c.out >= 1 {
			c.out = 1
			c.endAttack()
		}

	case Decay:
		return c.tickDecay()

	case Sustain:
		c.out = c.sustain

	case Release:
		if c.pedal {
			return c.out
		}

		if c.releaseMs > 0 {
			c.out = c.releaseOffset + c.out*c.releaseCoeff
		}

		if c.out <= 0 || c.releaseMs <= 0 {
			c.endRelease()
		}

	case Shutdown:
		c.tickShutdown()
	}

	return c.out
}

func (c *AnalogCore) endAttack() {
	if c.contour == AR {
		c.state = Release
		return
	}

	c.state = Decay
}

func (c *AnalogCore) tickDecay() float64 {
	if c.decayMs > 0 {
		c.out = c.decayOffset + c.out*c.decayCoeff
	}

	if c.out <= c.sustain || c.decayMs <= 0 {
		c.out = c.sustain
		c.state = Sustain
	}

	return c.out
}

func (c *AnalogCore) endRelease() {
	if c.retriggered {
		c.retriggered = false
		c.out = c.start
		c.state = Attack

		return
	}

	c.out = 0
	c.state = Off
}
