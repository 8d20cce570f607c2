package module

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/buffer"
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/synth/midi"
)

// NumSlots is the number of core slots per module.
const NumSlots = 4

// NoSelection is returned by Selected when no core is active.
const NoSelection = -1

// ErrInvalidChannels is returned for negative audio channel counts.
var ErrInvalidChannels = errors.New("module: invalid channel count")

type config struct {
	proc          core.ProcessorConfig
	numInputs     int
	numOutputs    int
	inputDefaults ModPort
}

// Option configures a Module.
type Option func(*config) error

// WithProcessor sets sample rate and block size.
func WithProcessor(opts ...core.ProcessorOption) Option {
	return func(cfg *config) error {
		cfg.proc = core.ApplyProcessorOptions(opts...)
		return cfg.proc.Validate()
	}
}

// WithChannels sets the number of audio input and output channels.
func WithChannels(inputs, outputs int) Option {
	return func(cfg *config) error {
		if inputs < 0 || outputs < 0 {
			return fmt.Errorf("%w: %d in, %d out", ErrInvalidChannels, inputs, outputs)
		}

		cfg.numInputs = inputs
		cfg.numOutputs = outputs

		return nil
	}
}

// WithInputDefaults replaces the modulation input values restored on
// note-on.
func WithInputDefaults(p ModPort) Option {
	return func(cfg *config) error {
		cfg.inputDefaults = p
		return nil
	}
}

// Module owns up to NumSlots cores, one audio buffer and the modulation
// ports. Exactly one core is selected once Reset has run and slot 0 is
// occupied.
type Module[P any] struct {
	typ      Type
	cores    [NumSlots]Core[P]
	selected int

	modIn         ModPort
	modOut        ModPort
	inputDefaults ModPort
	audio         *buffer.AudioBuffer
	data          ProcessData[P]
	blockSize     int

	defaultParams bool
	defaultMIDI   bool
}

// New creates a module. A nil params pointer is replaced by a zero P and a
// nil MIDI provider by a default midi.Store; UsedDefaultParams and
// UsedDefaultMIDI report when that happened.
func New[P any](typ Type, params *P, data midi.InputData, opts ...Option) (*Module[P], error) {
	cfg := config{
		proc:          core.DefaultProcessorConfig(),
		numInputs:     2,
		numOutputs:    2,
		inputDefaults: DefaultInputs(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	m := &Module[P]{
		typ:           typ,
		selected:      NoSelection,
		inputDefaults: cfg.inputDefaults,
		audio:         buffer.New(cfg.numInputs, cfg.numOutputs, cfg.proc.BlockSize),
		blockSize:     cfg.proc.BlockSize,
	}

	if params == nil {
		params = new(P)
		m.defaultParams = true
	}

	if s, ok := data.(*midi.Store); data == nil || (ok && s == nil) {
		data = midi.NewStore()
		m.defaultMIDI = true
	}

	m.modIn = m.inputDefaults
	m.data = ProcessData[P]{
		SampleRate: cfg.proc.SampleRate,
		Samples:    cfg.proc.BlockSize,
		ModIn:      &m.modIn,
		ModOut:     &m.modOut,
		Audio:      m.audio,
		Params:     params,
		MIDI:       data,
	}

	return m, nil
}

// Type returns the module category.
func (m *Module[P]) Type() Type { return m.typ }

// UsedDefaultParams reports whether New substituted a zero parameter set.
func (m *Module[P]) UsedDefaultParams() bool { return m.defaultParams }

// UsedDefaultMIDI reports whether New substituted a default MIDI store.
func (m *Module[P]) UsedDefaultMIDI() bool { return m.defaultMIDI }

// AddCore inserts c into its preferred slot if free, else the first free
// slot. It returns false when c is nil or all slots are taken.
func (m *Module[P]) AddCore(c Core[P]) bool {
	if c == nil {
		return false
	}

	slot := c.Info().PreferredSlot
	if slot >= 0 && slot < NumSlots && m.cores[slot] == nil {
		m.cores[slot] = c
		return true
	}

	for i := range m.cores {
		if m.cores[i] == nil {
			m.cores[i] = c
			return true
		}
	}

	return false
}

// SelectCore activates the core in slot index. Selecting an empty or
// out-of-range slot fails and keeps the previous selection.
func (m *Module[P]) SelectCore(index int) bool {
	if index < 0 || index >= NumSlots || m.cores[index] == nil {
		return false
	}

	m.selected = index

	return true
}

// SelectDefaultCore activates slot 0.
func (m *Module[P]) SelectDefaultCore() bool {
	return m.SelectCore(0)
}

// Selected returns the active slot or NoSelection.
func (m *Module[P]) Selected() int { return m.selected }

// SelectedCore returns the active core or nil.
func (m *Module[P]) SelectedCore() Core[P] {
	if m.selected == NoSelection {
		return nil
	}

	return m.cores[m.selected]
}

// Core returns the core in slot index or nil.
func (m *Module[P]) Core(index int) Core[P] {
	if index < 0 || index >= NumSlots {
		return nil
	}

	return m.cores[index]
}

// CoreNames lists core names by slot; empty slots are "".
func (m *Module[P]) CoreNames() [NumSlots]string {
	var names [NumSlots]string
	for i, c := range m.cores {
		if c != nil {
			names[i] = c.Info().Name
		}
	}

	return names
}

// FindCore returns the slot of the core with the given name.
func (m *Module[P]) FindCore(name string) (int, bool) {
	for i, c := range m.cores {
		if c != nil && c.Info().Name == name {
			return i, true
		}
	}

	return NoSelection, false
}

// Reset propagates a sample rate change to every core and selects the
// default core when none is active.
func (m *Module[P]) Reset(sampleRate float64) bool {
	if sampleRate > 0 {
		m.data.SampleRate = sampleRate
	}

	m.modOut = ModPort{}
	for _, c := range m.cores {
		if c != nil {
			c.Reset(&m.data)
		}
	}

	if m.selected == NoSelection {
		m.SelectDefaultCore()
	}

	return true
}

// Update forwards to the selected core. It returns false when no core is
// selected.
func (m *Module[P]) Update() bool {
	c := m.SelectedCore()
	if c == nil {
		return false
	}

	return c.Update(&m.data)
}

// Render updates and renders samples through the selected core.
//
// samples must not exceed the block size; the audio buffer is not
// resized and access past its capacity panics.
func (m *Module[P]) Render(samples int) bool {
	m.SetSamples(samples)
	c := m.SelectedCore()
	if c == nil {
		return false
	}

	c.Update(&m.data)

	return c.Render(&m.data)
}

// SetSamples sets the sample count of the next block without rendering.
func (m *Module[P]) SetSamples(samples int) {
	m.data.Samples = samples
	m.audio.SetSamplesInBlock(samples)
}

// NoteOn restores the modulation input defaults and forwards the event to
// every core.
func (m *Module[P]) NoteOn(ev midi.NoteEvent) bool {
	m.modIn = m.inputDefaults
	m.data.Note = ev
	did := false
	for _, c := range m.cores {
		if c != nil && c.NoteOn(&m.data) {
			did = true
		}
	}

	return did
}

// NoteOff forwards the event to every core. The note-on event stays in
// the process data so the release keeps its pitch and velocity.
func (m *Module[P]) NoteOff(ev midi.NoteEvent) bool {
	m.data.NoteOff = ev
	did := false
	for _, c := range m.cores {
		if c != nil && c.NoteOff(&m.data) {
			did = true
		}
	}

	return did
}

// Shutdown asks the selected core to fade out. It returns false when the
// core does not support it.
func (m *Module[P]) Shutdown() bool {
	s, ok := m.SelectedCore().(Shutdowner)
	if !ok {
		return false
	}

	return s.Shutdown()
}

// ModIn returns the modulation input port.
func (m *Module[P]) ModIn() *ModPort { return &m.modIn }

// ModOut returns the modulation output port.
func (m *Module[P]) ModOut() *ModPort { return &m.modOut }

// Audio returns the module's audio buffer.
func (m *Module[P]) Audio() *buffer.AudioBuffer { return m.audio }

// Params returns the parameter struct shared with the cores.
func (m *Module[P]) Params() *P { return m.data.Params }

// MIDI returns the MIDI input data.
func (m *Module[P]) MIDI() midi.InputData { return m.data.MIDI }

// Data returns the process data bundle. Zero-core modules use it to run
// their own processing with the same view a core would get.
func (m *Module[P]) Data() *ProcessData[P] { return &m.data }

// SampleRate returns the current sample rate.
func (m *Module[P]) SampleRate() float64 { return m.data.SampleRate }

// BlockSize returns the fixed maximum block size.
func (m *Module[P]) BlockSize() int { return m.blockSize }
