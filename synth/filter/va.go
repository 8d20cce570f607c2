package filter

import (
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/filter/va"
	"github.com/cwbudde/algo-synth/synth/module"
)

// vaChannel holds one instance of every topology for one audio channel.
type vaChannel struct {
	onePole *va.OnePole
	svf     *va.SVF
	korg    *va.Korg35
	moog    *va.Moog
	diode   *va.Diode
	limiter *va.PeakLimiter
}

func newVAChannel(sampleRate float64) (vaChannel, error) {
	var ch vaChannel
	var err error
	if ch.onePole, err = va.NewOnePole(sampleRate); err != nil {
		return ch, err
	}

	if ch.svf, err = va.NewSVF(sampleRate); err != nil {
		return ch, err
	}

	if ch.korg, err = va.NewKorg35(sampleRate, false); err != nil {
		return ch, err
	}

	if ch.moog, err = va.NewMoog(sampleRate); err != nil {
		return ch, err
	}

	if ch.diode, err = va.NewDiode(sampleRate); err != nil {
		return ch, err
	}

	if ch.limiter, err = va.NewPeakLimiter(sampleRate); err != nil {
		return ch, err
	}

	return ch, nil
}

func (ch *vaChannel) setSampleRate(sampleRate float64) bool {
	if ch.onePole.SetSampleRate(sampleRate) != nil {
		return false
	}

	ch.svf.SetSampleRate(sampleRate)
	ch.korg.SetSampleRate(sampleRate)
	ch.moog.SetSampleRate(sampleRate)
	ch.diode.SetSampleRate(sampleRate)
	ch.limiter.SetRelease(10, sampleRate)

	return true
}

func (ch *vaChannel) reset() {
	ch.onePole.Reset()
	ch.svf.Reset()
	ch.korg.Reset()
	ch.moog.Reset()
	ch.diode.Reset()
	ch.limiter.Reset()
}

// setCoefficients updates only the topology the type uses.
func (ch *vaChannel) setCoefficients(k coeffKey) {
	switch k.typ {
	case LPF1, HPF1, APF1:
		ch.onePole.SetCutoff(k.fc)
	case LPF2, HPF2, BPF2, BSF2:
		ch.svf.SetParams(k.fc, k.q)
	case Korg35LPF, Korg35HPF:
		ch.korg.SetHighpass(k.typ == Korg35HPF)
		ch.korg.SetParams(k.fc, k.q)
	case MoogLPF2, MoogLPF4, MoogBPF2, MoogBPF4, MoogHPF2, MoogHPF4:
		ch.moog.SetParams(k.fc, k.q)
	case DiodeLPF4:
		ch.diode.SetParams(k.fc, k.q)
	}
}

func (ch *vaChannel) setDrive(d va.Drive, analog bool) {
	ch.svf.Drive = d
	ch.korg.Drive = d
	ch.moog.Drive = d
	ch.diode.Drive = d
	ch.diode.AnalogMatch = analog
}

func (ch *vaChannel) compensation(t Type) float64 {
	switch t {
	case MoogLPF2, MoogLPF4, MoogBPF2, MoogBPF4, MoogHPF2, MoogHPF4:
		return ch.moog.GainCompensation()
	case DiodeLPF4:
		return ch.diode.GainCompensation()
	}

	return 1
}

//nolint:cyclop
func (ch *vaChannel) process(t Type, x float64, analog bool) float64 {
	switch t {
	case LPF1:
		o := ch.onePole.Process(x)
		if analog {
			return o.AnalogLPF
		}

		return o.LPF
	case HPF1:
		return ch.onePole.Process(x).HPF
	case APF1:
		return ch.onePole.Process(x).APF
	case LPF2:
		o := ch.svf.Process(x)
		if analog {
			return o.AnalogLPF
		}

		return o.LPF
	case HPF2:
		return ch.svf.Process(x).HPF
	case BPF2:
		return ch.svf.Process(x).BPF
	case BSF2:
		return ch.svf.Process(x).BSF
	case Korg35LPF, Korg35HPF:
		return ch.korg.Process(x)
	case MoogLPF2:
		return ch.moog.Process(x).LPF2
	case MoogLPF4:
		return ch.moog.Process(x).LPF4
	case MoogBPF2:
		return ch.moog.Process(x).BPF2
	case MoogBPF4:
		return ch.moog.Process(x).BPF4
	case MoogHPF2:
		return ch.moog.Process(x).HPF2
	case MoogHPF4:
		return ch.moog.Process(x).HPF4
	case DiodeLPF4:
		return ch.diode.Process(x)
	}

	return x
}

func (ch *vaChannel) processBlock(dst, src []float64, t Type, analog bool, gain float64) {
	for i, x := range src {
		dst[i] = ch.process(t, x, analog) * gain
	}

	if t.SelfResonant() {
		ch.limiter.ProcessBlock(dst[:len(src)])
	}
}

// VACore runs the zero-delay-feedback topologies.
type VACore struct {
	ch       [2]vaChannel
	dualMono bool
	analog   bool

	key     coeffKey
	valid   bool
	updates int
}

// NewVACore returns a VA filter core. dualMono filters both channels
// independently; analogMatch forces the analog-matched responses.
func NewVACore(dualMono, analogMatch bool) (*VACore, error) {
	c := &VACore{dualMono: dualMono, analog: analogMatch}
	sr := core.DefaultProcessorConfig().SampleRate
	for i := range c.ch {
		ch, err := newVAChannel(sr)
		if err != nil {
			return nil, err
		}

		c.ch[i] = ch
	}

	return c, nil
}

// Info implements module.Core.
func (c *VACore) Info() module.CoreInfo {
	return module.CoreInfo{Type: module.TypeFilter, Name: "va", PreferredSlot: 0}
}

// CoefficientUpdates returns how many times coefficients were recomputed.
func (c *VACore) CoefficientUpdates() int { return c.updates }

// Reset implements module.Core.
func (c *VACore) Reset(d *module.ProcessData[Parameters]) bool {
	ok := true
	for i := range c.ch {
		if !c.ch[i].setSampleRate(d.SampleRate) {
			ok = false
		}

		c.ch[i].reset()
	}

	c.valid = false

	return ok
}

// Update implements module.Core.
func (c *VACore) Update(d *module.ProcessData[Parameters]) bool {
	p := d.Params
	analog := c.analog || p.AnalogMatch
	drive := va.Drive{Enabled: p.Saturation > 0, Saturation: p.Saturation}
	for i := range c.ch {
		c.ch[i].setDrive(drive, analog)
	}

	k := keyFor(d)
	if c.valid && k == c.key {
		return true
	}

	for i := range c.ch {
		c.ch[i].setCoefficients(k)
	}

	c.key = k
	c.valid = true
	c.updates++

	return true
}

// Render implements module.Core.
func (c *VACore) Render(d *module.ProcessData[Parameters]) bool {
	if d.Samples <= 0 {
		return false
	}

	p := d.Params
	t := p.Type
	analog := c.analog || p.AnalogMatch
	gain := outputGain(p)
	if p.GainCompensation {
		gain *= c.ch[0].compensation(t)
	}

	inL, inR, outL, outR := channels(d)
	c.ch[0].processBlock(outL, inL, t, analog, gain)
	if outR == nil {
		return true
	}

	if c.dualMono && inR != nil {
		c.ch[1].processBlock(outR, inR, t, analog, gain)
	} else {
		copy(outR, outL)
	}

	return true
}

// NoteOn implements module.Core.
func (c *VACore) NoteOn(d *module.ProcessData[Parameters]) bool { return true }

// NoteOff implements module.Core.
func (c *VACore) NoteOff(d *module.ProcessData[Parameters]) bool { return true }
