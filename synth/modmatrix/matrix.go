package modmatrix

import (
	"fmt"

	"github.com/cwbudde/algo-synth/synth/module"
)

// Table sizes.
const (
	MaxSources      = 32
	MaxDestinations = 32
)

// SourceID identifies a source row.
type SourceID int

// DestinationID identifies a destination column.
type DestinationID int

type binding struct {
	port    *module.ModPort
	channel int
}

func (b binding) bound() bool { return b.port != nil }

func newBinding(port *module.ModPort, channel int) (binding, error) {
	if port == nil {
		return binding{}, fmt.Errorf("%w: nil port", ErrInvalidBinding)
	}

	if channel < 0 || channel >= module.NumModChannels {
		return binding{}, fmt.Errorf("%w: channel %d", ErrInvalidBinding, channel)
	}

	return binding{port: port, channel: channel}, nil
}

type source struct {
	intensity float64
	at        binding
}

type destination struct {
	enabled           [MaxSources]bool
	intensity         [MaxSources]float64
	hardwired         [MaxSources]bool
	hardwireIntensity [MaxSources]float64
	aggregate         float64
	defaultValue      float64
	highPriority      bool
	at                binding
}

// DestinationOptions configure a bound destination.
type DestinationOptions struct {
	// Default is written to the destination when it is bound and on
	// RestoreDefaults.
	Default float64
	// HighPriority destinations are also run by RunHighPriority.
	HighPriority bool
}

// Route is one enabled user route.
type Route struct {
	Source      SourceID
	Destination DestinationID
	Intensity   float64
}

// Matrix is the routing table. It performs no allocation after New.
type Matrix struct {
	sources [MaxSources]source
	dests   [MaxDestinations]destination
}

// New returns an empty matrix with all intensities at 1.
func New() *Matrix {
	m := &Matrix{}
	for i := range m.sources {
		m.sources[i].intensity = 1
	}

	for i := range m.dests {
		d := &m.dests[i]
		d.aggregate = 1
		for s := range d.intensity {
			d.intensity[s] = 1
			d.hardwireIntensity[s] = 1
		}
	}

	return m
}

func (m *Matrix) source(id SourceID) (*source, error) {
	if id < 0 || int(id) >= MaxSources {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSource, id)
	}

	return &m.sources[id], nil
}

func (m *Matrix) destination(id DestinationID) (*destination, error) {
	if id < 0 || int(id) >= MaxDestinations {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDestination, id)
	}

	return &m.dests[id], nil
}

// AddSource binds source id to a channel of port.
func (m *Matrix) AddSource(id SourceID, port *module.ModPort, channel int) error {
	s, err := m.source(id)
	if err != nil {
		return err
	}

	b, err := newBinding(port, channel)
	if err != nil {
		return fmt.Errorf("modmatrix: source %d: %w", id, err)
	}

	s.at = b

	return nil
}

// AddDestination binds destination id to a channel of port and writes
// its default value.
func (m *Matrix) AddDestination(id DestinationID, port *module.ModPort, channel int, opts DestinationOptions) error {
	d, err := m.destination(id)
	if err != nil {
		return err
	}

	b, err := newBinding(port, channel)
	if err != nil {
		return fmt.Errorf("modmatrix: destination %d: %w", id, err)
	}

	d.at = b
	d.defaultValue = opts.Default
	d.highPriority = opts.HighPriority
	port[channel] = opts.Default

	return nil
}

// SetSourceIntensity scales every route out of a source.
func (m *Matrix) SetSourceIntensity(id SourceID, intensity float64) error {
	s, err := m.source(id)
	if err != nil {
		return err
	}

	s.intensity = intensity

	return nil
}

// SetAggregateIntensity scales the user-routed sum of a destination.
func (m *Matrix) SetAggregateIntensity(id DestinationID, intensity float64) error {
	d, err := m.destination(id)
	if err != nil {
		return err
	}

	d.aggregate = intensity

	return nil
}

// SetRoute enables or disables the route src -> dst and sets its
// intensity.
func (m *Matrix) SetRoute(src SourceID, dst DestinationID, enabled bool, intensity float64) error {
	if _, err := m.source(src); err != nil {
		return err
	}

	d, err := m.destination(dst)
	if err != nil {
		return err
	}

	d.enabled[src] = enabled
	d.intensity[src] = intensity

	return nil
}

// EnableRoute toggles a route without touching its intensity.
func (m *Matrix) EnableRoute(src SourceID, dst DestinationID, enabled bool) error {
	if _, err := m.source(src); err != nil {
		return err
	}

	d, err := m.destination(dst)
	if err != nil {
		return err
	}

	d.enabled[src] = enabled

	return nil
}

// RouteEnabled reports whether the user route src -> dst is enabled.
func (m *Matrix) RouteEnabled(src SourceID, dst DestinationID) bool {
	if src < 0 || int(src) >= MaxSources || dst < 0 || int(dst) >= MaxDestinations {
		return false
	}

	return m.dests[dst].enabled[src]
}

// SetHardwire installs a hardwired route.
func (m *Matrix) SetHardwire(src SourceID, dst DestinationID, intensity float64) error {
	if _, err := m.source(src); err != nil {
		return err
	}

	d, err := m.destination(dst)
	if err != nil {
		return err
	}

	d.hardwired[src] = true
	d.hardwireIntensity[src] = intensity

	return nil
}

// SetHardwireIntensity changes the intensity of an existing or future
// hardwire without installing it.
func (m *Matrix) SetHardwireIntensity(src SourceID, dst DestinationID, intensity float64) error {
	if _, err := m.source(src); err != nil {
		return err
	}

	d, err := m.destination(dst)
	if err != nil {
		return err
	}

	d.hardwireIntensity[src] = intensity

	return nil
}

// ClearHardwire removes a hardwired route.
func (m *Matrix) ClearHardwire(src SourceID, dst DestinationID) error {
	if _, err := m.source(src); err != nil {
		return err
	}

	d, err := m.destination(dst)
	if err != nil {
		return err
	}

	d.hardwired[src] = false

	return nil
}

// ClearRoutes disables every user route. Hardwires stay.
func (m *Matrix) ClearRoutes() {
	for i := range m.dests {
		m.dests[i].enabled = [MaxSources]bool{}
	}
}

// Routes appends the enabled user routes to dst and returns it.
func (m *Matrix) Routes(dst []Route) []Route {
	for d := range m.dests {
		for s := range m.dests[d].enabled {
			if m.dests[d].enabled[s] {
				dst = append(dst, Route{
					Source:      SourceID(s),
					Destination: DestinationID(d),
					Intensity:   m.dests[d].intensity[s],
				})
			}
		}
	}

	return dst
}

// RestoreDefaults writes every bound destination's default value.
func (m *Matrix) RestoreDefaults() {
	for i := range m.dests {
		d := &m.dests[i]
		if d.at.bound() {
			d.at.port[d.at.channel] = d.defaultValue
		}
	}
}

// Run sums every destination.
func (m *Matrix) Run() {
	for i := range m.dests {
		m.runDestination(&m.dests[i])
	}
}

// RunHighPriority sums only the high-priority destinations.
func (m *Matrix) RunHighPriority() {
	for i := range m.dests {
		if m.dests[i].highPriority {
			m.runDestination(&m.dests[i])
		}
	}
}

func (m *Matrix) runDestination(d *destination) {
	if !d.at.bound() {
		return
	}

	driven := false
	routed := 0.0
	wired := 0.0
	for s := range m.sources {
		src := &m.sources[s]
		if !src.at.bound() {
			continue
		}

		v := src.at.port[src.at.channel]
		if d.hardwired[s] {
			wired += v * d.hardwireIntensity[s]
			driven = true
		}

		if d.enabled[s] {
			routed += v * src.intensity * d.intensity[s]
			driven = true
		}
	}

	if !driven {
		return
	}

	d.at.port[d.at.channel] = d.aggregate*routed + wired
}
