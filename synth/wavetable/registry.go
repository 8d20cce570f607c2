package wavetable

import (
	"errors"
	"fmt"
)

// ErrDuplicateSource is returned when a name is registered twice.
var ErrDuplicateSource = errors.New("wavetable: duplicate source")

// Database looks up wavetable sources. Implementations must be safe for
// concurrent reads.
type Database interface {
	Source(name string) (Source, bool)
	SourceAt(index int) (Source, bool)
	Names() []string
}

// Registry is the in-memory Database. Add sources before sharing it.
type Registry struct {
	sources []Source
	byName  map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Add registers src under its name.
func (r *Registry) Add(src Source) error {
	if _, ok := r.byName[src.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSource, src.Name())
	}

	r.byName[src.Name()] = len(r.sources)
	r.sources = append(r.sources, src)

	return nil
}

// Source implements Database.
func (r *Registry) Source(name string) (Source, bool) {
	i, ok := r.byName[name]
	if !ok {
		return nil, false
	}

	return r.sources[i], true
}

// SourceAt implements Database.
func (r *Registry) SourceAt(index int) (Source, bool) {
	if index < 0 || index >= len(r.sources) {
		return nil, false
	}

	return r.sources[index], true
}

// Names implements Database.
func (r *Registry) Names() []string {
	names := make([]string, len(r.sources))
	for i, s := range r.sources {
		names[i] = s.Name()
	}

	return names
}

// Len returns the number of registered sources.
func (r *Registry) Len() int { return len(r.sources) }

// NewStandardRegistry builds sine, saw, square and triangle banks.
func NewStandardRegistry(sampleRate float64, halfRate bool) (*Registry, error) {
	r := NewRegistry()
	for _, std := range []struct {
		name   string
		series Harmonic
	}{
		{"sine", SineSeries},
		{"saw", SawSeries},
		{"square", SquareSeries},
		{"triangle", TriangleSeries},
	} {
		b, err := NewBank(std.name, sampleRate, halfRate, std.series)
		if err != nil {
			return nil, err
		}

		if err := r.Add(b); err != nil {
			return nil, err
		}
	}

	return r, nil
}
