package filter

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/filter/moog"
	"github.com/cwbudde/algo-synth/synth/module"
)

// LadderCore runs the nonlinear Moog ladder on the Moog lowpass types.
// Other types pass audio through at the output gain.
type LadderCore struct {
	ch       [2]*moog.Filter
	dualMono bool

	key     coeffKey
	valid   bool
	updates int
}

// NewLadderCore returns a nonlinear ladder core.
func NewLadderCore(dualMono bool) (*LadderCore, error) {
	c := &LadderCore{dualMono: dualMono}
	sr := core.DefaultProcessorConfig().SampleRate

	for i := range c.ch {
		f, err := moog.New(sr, moog.WithVariant(moog.VariantHuovilainen), moog.WithOversampling(2))
		if err != nil {
			return nil, err
		}

		c.ch[i] = f
	}

	return c, nil
}

// Info implements module.Core.
func (c *LadderCore) Info() module.CoreInfo {
	return module.CoreInfo{Type: module.TypeFilter, Name: "moog_nl", PreferredSlot: SlotLadder}
}

// CoefficientUpdates returns how many times coefficients were recomputed.
func (c *LadderCore) CoefficientUpdates() int { return c.updates }

// Filter returns the ladder of channel i.
func (c *LadderCore) Filter(i int) *moog.Filter { return c.ch[i] }

func ladderType(t Type) bool { return t == MoogLPF2 || t == MoogLPF4 }

// Reset implements module.Core.
func (c *LadderCore) Reset(d *module.ProcessData[Parameters]) bool {
	ok := true

	for _, f := range c.ch {
		if err := f.SetSampleRate(d.SampleRate); err != nil {
			ok = false
		}

		f.Reset()
	}

	c.valid = false

	return ok
}

// Update implements module.Core. An invalid ladder model or oversampling
// factor keeps the previous setting.
func (c *LadderCore) Update(d *module.ProcessData[Parameters]) bool {
	p := d.Params

	poles := 4
	if p.Type == MoogLPF2 {
		poles = 2
	}

	for _, f := range c.ch {
		_ = f.SetVariant(p.LadderModel)
		_ = f.SetOversampling(p.LadderOversampling)
		_ = f.SetPoles(poles)
		f.SetDrive(1 + p.Saturation)
	}

	k := keyFor(d)
	if c.valid && k == c.key {
		return true
	}

	if ladderType(k.typ) {
		for _, f := range c.ch {
			f.SetParams(k.fc, k.q)
		}
	}

	c.key = k
	c.valid = true
	c.updates++

	return true
}

// Render implements module.Core.
func (c *LadderCore) Render(d *module.ProcessData[Parameters]) bool {
	if d.Samples <= 0 {
		return false
	}

	gain := outputGain(d.Params)
	active := ladderType(d.Params.Type)
	inL, inR, outL, outR := channels(d)

	processLadder(c.ch[0], outL, inL, gain, active)
	if outR == nil {
		return true
	}

	if c.dualMono && inR != nil {
		processLadder(c.ch[1], outR, inR, gain, active)
	} else {
		copy(outR, outL)
	}

	return true
}

func processLadder(f *moog.Filter, dst, src []float64, gain float64, active bool) {
	if active {
		f.ProcessBlockTo(dst, src)
	} else {
		copy(dst, src)
	}

	if gain != 1 {
		vecmath.ScaleBlockInPlace(dst[:len(src)], gain)
	}
}

// NoteOn implements module.Core.
func (c *LadderCore) NoteOn(d *module.ProcessData[Parameters]) bool { return true }

// NoteOff implements module.Core.
func (c *LadderCore) NoteOff(d *module.ProcessData[Parameters]) bool { return true }
