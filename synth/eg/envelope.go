package eg

import (
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/module"
)

// envelope holds the note, pedal and trigger bookkeeping shared by both
// cores.
type envelope struct {
	state State
	out   float64
	start float64

	sampleRate float64

	noteOff        bool
	releasePending bool
	retriggered    bool
	pedal          bool
	lastTrigger    float64

	attackScalar float64
	decayScalar  float64

	shutdownInc float64
}

func (e *envelope) reset(d *module.ProcessData[Parameters]) {
	e.sampleRate = d.SampleRate
	e.state = Off
	e.out = 0
	e.noteOff = false
	e.releasePending = false
	e.retriggered = false
	e.lastTrigger = 0
	e.attackScalar = 1
	e.decayScalar = 1
}

func pedalDown(d *module.ProcessData[Parameters]) bool {
	return d.Params.SustainOverride || midi.SustainPedal(d.MIDI)
}

// startNote prepares a note-on. It returns false when legato keeps the
// running segment or a shutdown fade is in progress.
func (e *envelope) startNote(d *module.ProcessData[Parameters]) bool {
	if e.state == Shutdown {
		return false
	}

	p := d.Params
	e.start = p.StartLevel
	legatoHold := p.Legato && (e.state == Attack || e.state == Decay ||
		e.state == Slope || e.state == Hold || e.state == Sustain)

	e.noteOff = false
	e.releasePending = false
	e.retriggered = false
	// A trigger held high across the note-on must fall before it can fire.
	e.lastTrigger = 1

	e.attackScalar = 1
	if p.VelocityToAttack {
		e.attackScalar = 1 - core.MIDIToUnipolar(uint32(d.Note.Velocity))
	}

	e.decayScalar = 1
	if p.NoteToDecay {
		e.decayScalar = 1 - core.MIDIToUnipolar(uint32(d.Note.Note))
	}

	if legatoHold {
		return false
	}

	if p.ResetToZero || e.state == Off {
		e.out = e.start
	}

	return true
}

// stopNote handles a note-off. It returns true when the release should
// start now.
func (e *envelope) stopNote(d *module.ProcessData[Parameters]) bool {
	e.noteOff = true
	if e.state == Off || e.state == Shutdown {
		return false
	}

	if pedalDown(d) {
		e.releasePending = true
		return false
	}

	return true
}

// poll runs the once-per-block checks. It returns true when a deferred
// note-off or a trigger edge requires entering Release.
func (e *envelope) poll(d *module.ProcessData[Parameters]) bool {
	e.pedal = pedalDown(d)
	e.start = d.Params.StartLevel
	release := false

	if e.releasePending && !e.pedal {
		e.releasePending = false
		release = true
	}

	trig := d.ModIn[module.InTrigger]
	if trig > 0.5 && e.lastTrigger <= 0.5 && !e.noteOff &&
		e.state != Off && e.state != Shutdown {
		e.retriggered = true
		release = true
	}

	e.lastTrigger = trig

	return release
}

func (e *envelope) shutdown() bool {
	if e.state == Off {
		return false
	}

	samples := ShutdownSeconds * e.sampleRate
	if samples < 1 {
		samples = 1
	}

	e.shutdownInc = -e.out / samples
	e.state = Shutdown

	return true
}

func (e *envelope) tickShutdown() {
	e.out += e.shutdownInc
	if e.out <= 0 || e.shutdownInc >= 0 {
		e.out = 0
		e.state = Off
	}
}

// render runs tick for every sample of the block, writes the contour to
// audio output 0 and publishes the first sample.
func (e *envelope) render(d *module.ProcessData[Parameters], tick func() float64) {
	var trace []float64
	if d.Audio != nil && d.Audio.NumOutputs() > 0 {
		trace = d.Audio.Output(0)
	}

	if d.Samples <= 0 {
		e.publish(d, e.out)
		return
	}

	for i := 0; i < d.Samples; i++ {
		v := tick()
		if i == 0 {
			e.publish(d, v)
		}

		if i < len(trace) {
			trace[i] = v
		}
	}
}

func (e *envelope) publish(d *module.ProcessData[Parameters], v float64) {
	d.ModOut[module.OutNormal] = v
	d.ModOut[module.OutInverted] = -v
	d.ModOut[module.OutBiased] = v - d.Params.SustainLevel
	d.ModOut[module.OutUnipolarFromMax] = 1 - v
	d.ModOut[module.OutUnipolarFromMin] = v
}
