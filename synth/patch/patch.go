package patch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/modmatrix"
	"github.com/cwbudde/algo-synth/synth/voice"
)

// ErrUnknownRoute is returned for a route naming an unknown source or
// destination.
var ErrUnknownRoute = errors.New("patch: unknown route")

// Route is one user modulation route.
type Route struct {
	Source      string  `yaml:"source"`
	Destination string  `yaml:"destination"`
	Intensity   float64 `yaml:"intensity"`
}

// Patch is a complete voice preset.
type Patch struct {
	Name   string           `yaml:"name,omitempty"`
	Voice  voice.Parameters `yaml:"voice"`
	Routes []Route          `yaml:"routes,omitempty"`
}

// Default returns an unnamed patch with default voice parameters and no
// routes.
func Default() Patch {
	return Patch{Voice: voice.DefaultParameters()}
}

// Load decodes a patch. Fields missing from the document keep their
// defaults; unknown fields are an error.
func Load(r io.Reader) (*Patch, error) {
	p := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return &p, nil
		}

		return nil, fmt.Errorf("patch: decode: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadFile reads a patch from path.
func LoadFile(path string) (*Patch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}

	defer f.Close()

	return Load(f)
}

// Save encodes p as YAML.
func Save(w io.Writer, p *Patch) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("patch: encode: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("patch: encode: %w", err)
	}

	return nil
}

// SaveFile writes p to path.
func SaveFile(path string, p *Patch) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("patch: %w", err)
	}

	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("patch: %w", cerr)
		}
	}()

	return Save(f, p)
}

// Validate checks that every route names a known source and destination.
func (p *Patch) Validate() error {
	for i, r := range p.Routes {
		if _, _, err := r.resolve(); err != nil {
			return fmt.Errorf("%w (route %d)", err, i)
		}
	}

	return nil
}

func (r Route) resolve() (modmatrix.SourceID, modmatrix.DestinationID, error) {
	s, ok := voice.LookupSource(r.Source)
	if !ok {
		return 0, 0, fmt.Errorf("%w: source %q", ErrUnknownRoute, r.Source)
	}

	d, ok := voice.LookupDestination(r.Destination)
	if !ok {
		return 0, 0, fmt.Errorf("%w: destination %q", ErrUnknownRoute, r.Destination)
	}

	return s, d, nil
}

// Apply copies the patch into v. Module parameters and hardwires take
// effect immediately, core selections on the next render. The user
// routes of v are replaced.
func (p *Patch) Apply(v *voice.Voice) error {
	if err := p.Validate(); err != nil {
		return err
	}

	*v.Params() = p.Voice
	if err := v.ApplyHardwires(); err != nil {
		return fmt.Errorf("patch: %w", err)
	}

	m := v.Matrix()
	m.ClearRoutes()
	for _, r := range p.Routes {
		src, dst, _ := r.resolve()
		if err := m.SetRoute(src, dst, true, r.Intensity); err != nil {
			return fmt.Errorf("patch: %w", err)
		}
	}

	return nil
}

// NewVoice builds a voice from the patch.
func (p *Patch) NewVoice(data midi.InputData, opts ...voice.Option) (*voice.Voice, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	params := p.Voice
	v, err := voice.New(&params, data, opts...)
	if err != nil {
		return nil, err
	}

	if err := p.Apply(v); err != nil {
		return nil, err
	}

	return v, nil
}

// Capture returns a patch holding the current state of v.
func Capture(v *voice.Voice, name string) *Patch {
	p := &Patch{Name: name, Voice: *v.Params()}
	for _, r := range v.Matrix().Routes(nil) {
		p.Routes = append(p.Routes, Route{
			Source:      voice.SourceName(r.Source),
			Destination: voice.DestinationName(r.Destination),
			Intensity:   r.Intensity,
		})
	}

	return p
}
