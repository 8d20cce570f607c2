package eg

import (
	"github.com/cwbudde/algo-synth/dsp/clock"
	"github.com/cwbudde/algo-synth/dsp/modulator"
	"github.com/cwbudde/algo-synth/synth/module"
)

// DXCore is the linear-segment envelope with Delay, Hold and Slope stages.
// Segment lengths are latched when a segment starts.
type DXCore struct {
	envelope

	timer clock.Timer
	ramp  modulator.Ramp

	params Parameters
}

// NewDXCore returns a linear envelope core.
func NewDXCore() *DXCore {
	return &DXCore{}
}

// Info implements module.Core.
func (c *DXCore) Info() module.CoreInfo {
	return module.CoreInfo{Type: module.TypeEG, Name: "dx", PreferredSlot: 1}
}

// State returns the current state.
func (c *DXCore) State() State { return c.state }

// Output returns the most recent envelope value.
func (c *DXCore) Output() float64 { return c.out }

// IsActive reports whether the envelope is not Off.
func (c *DXCore) IsActive() bool { return c.state != Off }

// Reset implements module.Core.
func (c *DXCore) Reset(d *module.ProcessData[Parameters]) bool {
	c.envelope.reset(d)
	c.params = *d.Params
	c.ramp.Finish()
	c.timer.Reset()

	return true
}

// Update implements module.Core.
func (c *DXCore) Update(d *module.ProcessData[Parameters]) bool {
	c.params = *d.Params
	c.sampleRate = d.SampleRate
	if c.envelope.poll(d) {
		c.enterRelease()
	}

	return true
}

// Render implements module.Core.
func (c *DXCore) Render(d *module.ProcessData[Parameters]) bool {
	c.envelope.render(d, c.tick)
	return true
}

// NoteOn implements module.Core.
func (c *DXCore) NoteOn(d *module.ProcessData[Parameters]) bool {
	c.params = *d.Params
	c.sampleRate = d.SampleRate
	if c.envelope.startNote(d) {
		c.enterDelay()
	}

	return true
}

// NoteOff implements module.Core.
func (c *DXCore) NoteOff(d *module.ProcessData[Parameters]) bool {
	if c.envelope.stopNote(d) {
		c.enterRelease()
	}

	return true
}

// Shutdown implements module.Shutdowner.
func (c *DXCore) Shutdown() bool {
	return c.envelope.shutdown()
}

func (c *DXCore) samples(ms float64) int {
	if ms <= 0 {
		return 0
	}

	return int(ms*c.sampleRate/1000 + 0.5)
}

func (c *DXCore) enterDelay() {
	c.state = Delay
	c.timer.SetLimit(c.samples(c.params.DelayMs))
	c.timer.Reset()
}

func (c *DXCore) enterAttack() {
	c.state = Attack
	c.ramp.Start(c.out, 1, c.samples(c.params.AttackMs*c.attackScalar))
}

func (c *DXCore) enterHold() {
	c.state = Hold
	c.timer.SetLimit(c.samples(c.params.HoldMs))
	c.timer.Reset()
}

func (c *DXCore) enterDecay() {
	if c.params.Contour == AR {
		c.enterRelease()
		return
	}

	c.state = Decay
	c.ramp.Start(c.out, c.params.DecayLevel, c.samples(c.params.DecayMs*c.decayScalar))
}

func (c *DXCore) enterSlope() {
	c.state = Slope
	c.ramp.Start(c.out, c.params.SustainLevel, c.samples(c.params.SlopeMs))
}

func (c *DXCore) enterRelease() {
	c.state = Release
	c.ramp.Start(c.out, 0, c.samples(c.params.ReleaseMs))
}

// tick advances one sample. Zero-length segments fall through to the
// next state within the same sample.
//
//nolint:cyclop
func (c *DXCore) tick() float64 {
	for {
		switch c.state {
		case Off:
			c.out = 0
			return c.out

		case Delay:
			if c.timer.Expired() {
				c.enterAttack()
				continue
			}

			c.timer.Advance(1)

			return c.out

		case Attack:
			if !c.ramp.Active() {
				c.out = c.ramp.Value()
				c.enterHold()
				continue
			}

			c.out = c.ramp.Advance(1)

			return c.out

		case Hold:
			if c.timer.Expired() {
				c.enterDecay()
				continue
			}

			c.timer.Advance(1)

			return c.out

		case Decay:
			if !c.ramp.Active() {
				c.out = c.ramp.Value()
				c.enterSlope()
				continue
			}

			c.out = c.ramp.Advance(1)

			return c.out

		case Slope:
			if !c.ramp.Active() {
				c.out = c.ramp.Value()
				c.state = Sustain
				continue
			}

			c.out = c.ramp.Advance(1)

			return c.out

		case Sustain:
			c.out = c.params.SustainLevel
			return c.out

		case Release:
			if c.pedal {
				return c.out
			}

			if c.ramp.Active() {
				c.out = c.ramp.Advance(1)
				if c.ramp.Active() {
					return c.out
				}
			}

			if c.retriggered {
				c.retriggered = false
				c.out = c.start
				c.enterAttack()

				return c.out
			}

			c.out = 0
			c.state = Off

			return c.out

		case Shutdown:
			c.tickShutdown()
			return c.out

		default:
			return c.out
		}
	}
}
