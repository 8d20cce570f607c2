package osc

import (
	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/module"
	"github.com/cwbudde/algo-synth/synth/wavetable"
)

// Core slots.
const (
	SlotVA        = 0
	SlotWavetable = 1
)

// Module is a stereo oscillator with the VA core and, when a database is
// given, the wavetable core.
type Module struct {
	*module.Module[Parameters]
}

// New creates an oscillator module. A nil params uses DefaultParameters
// and a nil db leaves the wavetable slot empty.
func New(params *Parameters, data midi.InputData, db wavetable.Database, seed int64, opts ...module.Option) (*Module, error) {
	if params == nil {
		p := DefaultParameters()
		params = &p
	}

	opts = append([]module.Option{module.WithChannels(0, 2)}, opts...)
	m, err := module.New[Parameters](module.TypeOscillator, params, data, opts...)
	if err != nil {
		return nil, err
	}

	m.AddCore(NewVACore(seed))
	if db != nil {
		m.AddCore(NewWavetableCore(db))
	}

	return &Module{Module: m}, nil
}
