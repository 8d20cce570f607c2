package filter

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/dsp/filter/biquad"
	"github.com/cwbudde/algo-synth/synth/module"
)

// BiquadCore runs the closed-form biquad designs. Types without a biquad
// design pass audio through.
type BiquadCore struct {
	sec      [2]biquad.Section
	dualMono bool

	key     coeffKey
	valid   bool
	updates int
}

// NewBiquadCore returns a biquad filter core.
func NewBiquadCore(dualMono bool) *BiquadCore {
	c := &BiquadCore{dualMono: dualMono}
	for i := range c.sec {
		c.sec[i].SetCoefficients(biquad.Passthrough())
	}

	return c
}

// Info implements module.Core.
func (c *BiquadCore) Info() module.CoreInfo {
	return module.CoreInfo{Type: module.TypeFilter, Name: "biquad", PreferredSlot: 1}
}

// CoefficientUpdates returns how many times coefficients were recomputed.
func (c *BiquadCore) CoefficientUpdates() int { return c.updates }

// Coefficients returns the active coefficient set.
func (c *BiquadCore) Coefficients() biquad.Coefficients { return c.sec[0].Coefficients }

func biquadType(t Type) (biquad.Type, bool) {
	switch t {
	case LPF1:
		return biquad.LPF1, true
	case HPF1:
		return biquad.HPF1, true
	case LPF2:
		return biquad.LPF2, true
	case HPF2:
		return biquad.HPF2, true
	case BPF2:
		return biquad.BPF2, true
	case BSF2:
		return biquad.BSF2, true
	}

	return 0, false
}

// Reset implements module.Core.
func (c *BiquadCore) Reset(d *module.ProcessData[Parameters]) bool {
	for i := range c.sec {
		c.sec[i].Reset()
	}

	c.valid = false

	return true
}

// Update implements module.Core.
func (c *BiquadCore) Update(d *module.ProcessData[Parameters]) bool {
	k := keyFor(d)
	if c.valid && k == c.key {
		return true
	}

	coeffs := biquad.Passthrough()
	if bt, ok := biquadType(k.typ); ok {
		if designed, err := biquad.Design(bt, k.fc, k.q, d.SampleRate); err == nil {
			coeffs = designed
		}
	}

	for i := range c.sec {
		c.sec[i].SetCoefficients(coeffs)
	}

	c.key = k
	c.valid = true
	c.updates++

	return true
}

// Render implements module.Core.
func (c *BiquadCore) Render(d *module.ProcessData[Parameters]) bool {
	if d.Samples <= 0 {
		return false
	}

	gain := outputGain(d.Params)
	inL, inR, outL, outR := channels(d)
	processSection(&c.sec[0], outL, inL, gain)
	if outR == nil {
		return true
	}

	if c.dualMono && inR != nil {
		processSection(&c.sec[1], outR, inR, gain)
	} else {
		copy(outR, outL)
	}

	return true
}

func processSection(s *biquad.Section, dst, src []float64, gain float64) {
	s.ProcessBlockTo(dst, src)
	if gain != 1 {
		vecmath.ScaleBlockInPlace(dst[:len(src)], gain)
	}

	s.FlushDenormals()
}

// NoteOn implements module.Core.
func (c *BiquadCore) NoteOn(d *module.ProcessData[Parameters]) bool { return true }

// NoteOff implements module.Core.
func (c *BiquadCore) NoteOff(d *module.ProcessData[Parameters]) bool { return true }
