package osc

import (
	"github.com/cwbudde/algo-synth/dsp/clock"
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/mix"
	"github.com/cwbudde/algo-synth/synth/module"
	"github.com/cwbudde/algo-synth/synth/wavetable"
)

// WavetableCore reads band-limited tables selected by Parameters.Table.
// An unknown table name renders silence.
type WavetableCore struct {
	db    wavetable.Database
	src   wavetable.Source
	name  string
	table *wavetable.Table
	clk   clock.SynthClock
	pitch pitch
}

// NewWavetableCore returns a core reading from db. The database is
// borrowed, not owned.
func NewWavetableCore(db wavetable.Database) *WavetableCore {
	return &WavetableCore{db: db}
}

// Info implements module.Core.
func (c *WavetableCore) Info() module.CoreInfo {
	return module.CoreInfo{Type: module.TypeOscillator, Name: "wavetable", PreferredSlot: 1}
}

// Table returns the table used by the last update, or nil.
func (c *WavetableCore) Table() *wavetable.Table { return c.table }

// Reset implements module.Core.
func (c *WavetableCore) Reset(d *module.ProcessData[Parameters]) bool {
	c.clk.Reset(0)
	c.pitch.reset()
	c.name = ""
	c.src = nil

	return true
}

// Update implements module.Core.
func (c *WavetableCore) Update(d *module.ProcessData[Parameters]) bool {
	if c.src == nil || d.Params.Table != c.name {
		c.name = d.Params.Table
		c.src = nil
		if c.db != nil {
			if src, ok := c.db.Source(c.name); ok {
				c.src = src
			}
		}
	}

	hz := c.pitch.frequency(d)
	c.clk.SetFrequency(hz, d.SampleRate)
	c.table = nil
	if c.src != nil {
		c.table = c.src.TableForFrequency(hz)
	}

	return c.table != nil
}

// Render implements module.Core.
func (c *WavetableCore) Render(d *module.ProcessData[Parameters]) bool {
	p := d.Params
	n := d.Samples
	if n <= 0 {
		return false
	}

	left, right := outputs(d)
	if c.table == nil {
		core.Zero(left)
		core.Zero(right)

		return false
	}

	gl, gr := mix.Balance(core.Clamp(p.Pan+d.ModIn[module.InPanMod], -1, 1))
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

		v := c.table.Read(c.clk.Counter(), p.Interpolation) * p.Level
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

// NoteOn implements module.Core.
func (c *WavetableCore) NoteOn(d *module.ProcessData[Parameters]) bool {
	c.clk.Reset(0)
	c.pitch.noteOn(d)

	return true
}

// NoteOff implements module.Core.
func (c *WavetableCore) NoteOff(d *module.ProcessData[Parameters]) bool { return true }
