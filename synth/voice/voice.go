package voice

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-synth/dsp/buffer"
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/synth/dca"
	"github.com/cwbudde/algo-synth/synth/eg"
	"github.com/cwbudde/algo-synth/synth/filter"
	"github.com/cwbudde/algo-synth/synth/lfo"
	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/modmatrix"
	"github.com/cwbudde/algo-synth/synth/module"
	"github.com/cwbudde/algo-synth/synth/osc"
	"github.com/cwbudde/algo-synth/synth/wavetable"
)

type config struct {
	proc   []core.ProcessorOption
	logger *slog.Logger
	tables wavetable.Database
	seed   int64
}

// Option configures a Voice.
type Option func(*config) error

// WithProcessor sets sample rate and block size.
func WithProcessor(opts ...core.ProcessorOption) Option {
	return func(c *config) error {
		c.proc = append(c.proc, opts...)
		return nil
	}
}

// WithLogger reports construction-time fallbacks. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		if l == nil {
			return fmt.Errorf("voice: nil logger")
		}

		c.logger = l

		return nil
	}
}

// WithWavetables shares a wavetable database between voices. Without it
// each voice builds the standard tables.
func WithWavetables(db wavetable.Database) Option {
	return func(c *config) error {
		c.tables = db
		return nil
	}
}

// WithSeed seeds the noise sources.
func WithSeed(seed int64) Option {
	return func(c *config) error {
		c.seed = seed
		return nil
	}
}

// Voice renders one note through the full module graph. It is not safe
// for concurrent use.
type Voice struct {
	lfo1, lfo2      *lfo.Module
	ampEG, filterEG *eg.Module
	osc1, osc2      *osc.Module
	filter          *filter.Module
	dca             *dca.Module

	modules []module.Renderer
	matrix  *modmatrix.Matrix

	controls module.ModPort
	params   *Parameters
	midi     midi.InputData
	out      *buffer.AudioBuffer
	proc     core.ProcessorConfig
	logger   *slog.Logger
}

// New builds a voice. A nil params uses DefaultParameters and a nil MIDI
// provider a default midi.Store; both fallbacks are logged. The aux flags
// of the MIDI provider are read here and not again.
//
//nolint:cyclop,funlen
func New(params *Parameters, data midi.InputData, opts ...Option) (*Voice, error) {
	cfg := config{logger: slog.New(slog.DiscardHandler), seed: 1}
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	proc := core.ApplyProcessorOptions(cfg.proc...)
	if err := proc.Validate(); err != nil {
		return nil, fmt.Errorf("voice: %w", err)
	}

	log := cfg.logger

	if params == nil {
		p := DefaultParameters()
		params = &p
		log.Info("voice: no parameters given, using defaults")
	}

	if s, ok := data.(*midi.Store); data == nil || (ok && s == nil) {
		data = midi.NewStore()
		log.Info("voice: no MIDI input data given, using a local store")
	}

	flags := data.Flags()

	tables := cfg.tables
	if tables == nil {
		reg, err := wavetable.NewStandardRegistry(proc.SampleRate, flags.Has(midi.FlagHalfRateTables))
		if err != nil {
			log.Warn("voice: wavetable core disabled", "err", err)
		} else {
			tables = reg
		}
	}

	v := &Voice{
		matrix: modmatrix.New(),
		params: params,
		midi:   data,
		out:    buffer.New(0, 2, proc.BlockSize),
		proc:   proc,
		logger: log,
	}

	mopt := module.WithProcessor(cfg.proc...)

	var err error
	if v.lfo1, err = lfo.New(&params.LFO1, data, cfg.seed, mopt); err != nil {
		return nil, fmt.Errorf("voice: lfo1: %w", err)
	}

	if v.lfo2, err = lfo.New(&params.LFO2, data, cfg.seed+1, mopt); err != nil {
		return nil, fmt.Errorf("voice: lfo2: %w", err)
	}

	if v.ampEG, err = eg.New(&params.AmpEG, data, mopt); err != nil {
		return nil, fmt.Errorf("voice: amp eg: %w", err)
	}

	if v.filterEG, err = eg.New(&params.FilterEG, data, mopt); err != nil {
		return nil, fmt.Errorf("voice: filter eg: %w", err)
	}

	if v.osc1, err = osc.New(&params.Osc1, data, tables, cfg.seed+2, mopt); err != nil {
		return nil, fmt.Errorf("voice: osc1: %w", err)
	}

	if v.osc2, err = osc.New(&params.Osc2, data, tables, cfg.seed+3, mopt); err != nil {
		return nil, fmt.Errorf("voice: osc2: %w", err)
	}

	if v.filter, err = filter.New(&params.Filter, data, mopt); err != nil {
		return nil, fmt.Errorf("voice: filter: %w", err)
	}

	if v.dca, err = dca.New(&params.DCA, data, mopt); err != nil {
		return nil, fmt.Errorf("voice: dca: %w", err)
	}

	v.modules = []module.Renderer{
		v.lfo1, v.lfo2, v.ampEG, v.filterEG, v.osc1, v.osc2, v.filter, v.dca,
	}

	if err := v.bind(); err != nil {
		return nil, fmt.Errorf("voice: %w", err)
	}

	if err := v.ApplyHardwires(); err != nil {
		return nil, fmt.Errorf("voice: %w", err)
	}

	v.Reset(proc.SampleRate)
	for name, ok := range v.selectCores() {
		if !ok {
			log.Warn("voice: unknown core", "module", name, "core", v.coreName(name))
		}
	}

	return v, nil
}

// selector is the part of a module used for name-based core selection.
type selector interface {
	Selected() int
	CoreNames() [module.NumSlots]string
	FindCore(name string) (int, bool)
	SelectCore(index int) bool
}

func selectByName(m selector, name string) bool {
	if name == "" {
		return true
	}

	if i := m.Selected(); i >= 0 && m.CoreNames()[i] == name {
		return true
	}

	i, ok := m.FindCore(name)
	if !ok {
		return false
	}

	return m.SelectCore(i)
}

func (v *Voice) selectors() map[string]selector {
	return map[string]selector{
		"lfo1": v.lfo1, "lfo2": v.lfo2, "amp_eg": v.ampEG, "filter_eg": v.filterEG,
		"osc1": v.osc1, "osc2": v.osc2, "filter": v.filter,
	}
}

func (v *Voice) coreName(mod string) string {
	c := v.params.Cores
	switch mod {
	case "lfo1":
		return c.LFO1
	case "lfo2":
		return c.LFO2
	case "amp_eg":
		return c.AmpEG
	case "filter_eg":
		return c.FilterEG
	case "osc1":
		return c.Osc1
	case "osc2":
		return c.Osc2
	case "filter":
		return c.Filter
	}

	return ""
}

// selectCores applies the core names in the parameters and reports which
// modules accepted them.
func (v *Voice) selectCores() map[string]bool {
	res := make(map[string]bool, 7)
	for name, m := range v.selectors() {
		res[name] = selectByName(m, v.coreName(name))
	}

	return res
}

// applyCores is the allocation-free form of selectCores used per block.
func (v *Voice) applyCores() {
	c := &v.params.Cores
	selectByName(v.lfo1, c.LFO1)
	selectByName(v.lfo2, c.LFO2)
	selectByName(v.ampEG, c.AmpEG)
	selectByName(v.filterEG, c.FilterEG)
	selectByName(v.osc1, c.Osc1)
	selectByName(v.osc2, c.Osc2)
	selectByName(v.filter, c.Filter)
}

// Reset propagates a sample rate change to every module.
func (v *Voice) Reset(sampleRate float64) bool {
	if sampleRate > 0 {
		v.proc.SampleRate = sampleRate
	}

	for _, m := range v.modules {
		m.Reset(v.proc.SampleRate)
	}

	v.out.Flush()

	return true
}

// NoteOn starts a note on every module.
func (v *Voice) NoteOn(ev midi.NoteEvent) bool {
	v.controls[ctlVelocity] = core.MIDIToUnipolar(uint32(ev.Velocity))
	v.controls[ctlKey] = core.MIDIToBipolar(uint32(ev.Note))
	for _, m := range v.modules {
		m.NoteOn(ev)
	}

	v.matrix.RestoreDefaults()

	return true
}

// NoteOff releases the note on every module.
func (v *Voice) NoteOff(ev midi.NoteEvent) bool {
	for _, m := range v.modules {
		m.NoteOff(ev)
	}

	return true
}

// Shutdown fades both envelopes out quickly ahead of voice reuse.
func (v *Voice) Shutdown() bool {
	amp := v.ampEG.Shutdown()
	v.filterEG.Shutdown()

	return amp
}

// IsActive reports whether the amplitude envelope is still sounding.
func (v *Voice) IsActive() bool { return v.ampEG.IsActive() }

// Render renders samples into the voice output. samples must not exceed
// the block size.
func (v *Voice) Render(samples int) bool {
	if samples <= 0 {
		return false
	}

	v.applyCores()
	v.controls[ctlModWheel] = core.MIDIToUnipolar(v.midi.CC(midi.CCModWheel))

	v.matrix.RunHighPriority()
	v.lfo1.Render(samples)
	v.lfo2.Render(samples)
	v.ampEG.Render(samples)
	v.filterEG.Render(samples)

	v.matrix.Run()

	osc2 := v.params.Osc2.Level != 0
	v.osc1.Render(samples)
	if osc2 {
		v.osc2.Render(samples)
	}

	v.filter.SetSamples(samples)
	fa := v.filter.Audio()
	core.CopyChannels(fa.Inputs(), v.osc1.Audio().Outputs(), samples)
	if osc2 {
		core.AddChannels(fa.Inputs(), v.osc2.Audio().Outputs(), samples)
	}

	v.filter.Render(samples)

	v.dca.SetSamples(samples)
	da := v.dca.Audio()
	core.CopyChannels(da.Inputs(), fa.Outputs(), samples)
	v.dca.Render(samples)

	v.out.SetSamplesInBlock(samples)
	v.out.FlushOutputs()
	core.AddChannels(v.out.Outputs(), da.Outputs(), samples)

	return true
}

// Output returns the stereo voice output of the last block.
func (v *Voice) Output() *buffer.AudioBuffer { return v.out }

// Matrix returns the modulation matrix.
func (v *Voice) Matrix() *modmatrix.Matrix { return v.matrix }

// Params returns the live parameters. Changes apply from the next block.
func (v *Voice) Params() *Parameters { return v.params }

// SampleRate returns the processing sample rate.
func (v *Voice) SampleRate() float64 { return v.proc.SampleRate }

// BlockSize returns the maximum block size.
func (v *Voice) BlockSize() int { return v.proc.BlockSize }

// LFO1 returns the first LFO module.
func (v *Voice) LFO1() *lfo.Module { return v.lfo1 }

// LFO2 returns the second LFO module.
func (v *Voice) LFO2() *lfo.Module { return v.lfo2 }

// AmpEG returns the amplitude envelope module.
func (v *Voice) AmpEG() *eg.Module { return v.ampEG }

// FilterEG returns the filter envelope module.
func (v *Voice) FilterEG() *eg.Module { return v.filterEG }

// Osc1 returns the first oscillator module.
func (v *Voice) Osc1() *osc.Module { return v.osc1 }

// Osc2 returns the second oscillator module.
func (v *Voice) Osc2() *osc.Module { return v.osc2 }

// Filter returns the filter module.
func (v *Voice) Filter() *filter.Module { return v.filter }

// DCA returns the amplifier module.
func (v *Voice) DCA() *dca.Module { return v.dca }
