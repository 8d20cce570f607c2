package lfo

import (
	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/module"
)

// Module is an LFO module with the classic core installed.
type Module struct {
	*module.Module[Parameters]
}

// New creates an LFO module. A nil params uses DefaultParameters. seed
// drives the sample-and-hold waveform.
func New(params *Parameters, data midi.InputData, seed int64, opts ...module.Option) (*Module, error) {
	if params == nil {
		p := DefaultParameters()
		params = &p
	}

	opts = append([]module.Option{module.WithChannels(0, 0)}, opts...)
	m, err := module.New[Parameters](module.TypeLFO, params, data, opts...)
	if err != nil {
		return nil, err
	}

	m.AddCore(NewClassicCore(seed))

	return &Module{Module: m}, nil
}

// Complete reports whether a one-shot cycle has finished.
func (m *Module) Complete() bool {
	if c, ok := m.SelectedCore().(*ClassicCore); ok {
		return c.Complete()
	}

	return false
}
