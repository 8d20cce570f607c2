package eg

import (
	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/module"
)

// Core slots.
const (
	SlotAnalog = 0
	SlotDX     = 1
)

type stateCore interface {
	State() State
	IsActive() bool
	Output() float64
}

// Module is an envelope generator module with the analog and DX cores
// installed. Audio output 0 carries the per-sample contour.
type Module struct {
	*module.Module[Parameters]
}

// New creates an envelope module. A nil params uses DefaultParameters.
func New(params *Parameters, data midi.InputData, opts ...module.Option) (*Module, error) {
	if params == nil {
		p := DefaultParameters()
		params = &p
	}

	opts = append([]module.Option{module.WithChannels(0, 1)}, opts...)
	m, err := module.New[Parameters](module.TypeEG, params, data, opts...)
	if err != nil {
		return nil, err
	}

	m.AddCore(NewAnalogCore())
	m.AddCore(NewDXCore())

	return &Module{Module: m}, nil
}

// State returns the selected core's state, or Off without a core.
func (m *Module) State() State {
	if c, ok := m.SelectedCore().(stateCore); ok {
		return c.State()
	}

	return Off
}

// IsActive reports whether the selected core is producing a contour.
func (m *Module) IsActive() bool {
	if c, ok := m.SelectedCore().(stateCore); ok {
		return c.IsActive()
	}

	return false
}

// Output returns the most recent per-sample value of the selected core.
func (m *Module) Output() float64 {
	if c, ok := m.SelectedCore().(stateCore); ok {
		return c.Output()
	}

	return 0
}
