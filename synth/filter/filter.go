package filter

import (
	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/module"
)

// Core slots.
const (
	SlotVA     = 0
	SlotBiquad = 1
	SlotLadder = 2
)

// Module is a stereo filter with the VA, biquad and nonlinear ladder cores
// installed.
type Module struct {
	*module.Module[Parameters]
}

// New creates a filter module. A nil params uses DefaultParameters. The
// dual-mono and analog-filter flags of the MIDI data are read here.
func New(params *Parameters, data midi.InputData, opts ...module.Option) (*Module, error) {
	if params == nil {
		p := DefaultParameters()
		params = &p
	}

	opts = append([]module.Option{module.WithChannels(2, 2)}, opts...)
	m, err := module.New[Parameters](module.TypeFilter, params, data, opts...)
	if err != nil {
		return nil, err
	}

	flags := m.MIDI().Flags()
	dual := flags.Has(midi.FlagDualMonoFilters)

	vc, err := NewVACore(dual, flags.Has(midi.FlagAnalogFilters))
	if err != nil {
		return nil, err
	}

	lc, err := NewLadderCore(dual)
	if err != nil {
		return nil, err
	}

	m.AddCore(vc)
	m.AddCore(NewBiquadCore(dual))
	m.AddCore(lc)

	return &Module{Module: m}, nil
}

// CoefficientUpdates returns the recompute count of the selected core.
func (m *Module) CoefficientUpdates() int {
	switch c := m.SelectedCore().(type) {
	case *VACore:
		return c.CoefficientUpdates()
	case *BiquadCore:
		return c.CoefficientUpdates()
	case *LadderCore:
		return c.CoefficientUpdates()
	}

	return 0
}
