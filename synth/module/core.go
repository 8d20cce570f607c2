package module

import (
	"github.com/cwbudde/algo-synth/dsp/buffer"
	"github.com/cwbudde/algo-synth/synth/midi"
)

// Type tags a module or core category.
type Type int

const (
	TypeLFO Type = iota
	TypeEG
	TypeOscillator
	TypeFilter
	TypeDCA
)

// String returns the category name.
func (t Type) String() string {
	switch t {
	case TypeLFO:
		return "lfo"
	case TypeEG:
		return "eg"
	case TypeOscillator:
		return "osc"
	case TypeFilter:
		return "filter"
	case TypeDCA:
		return "dca"
	default:
		return "unknown"
	}
}

// CoreInfo is the identity of a core.
type CoreInfo struct {
	Type          Type
	Name          string
	PreferredSlot int
}

// ProcessData is the bundle a module hands to its cores. It is owned by
// the module, updated in place every call and must not be retained by a
// core beyond the call it was passed to.
type ProcessData[P any] struct {
	SampleRate float64
	Samples    int
	ModIn      *ModPort
	ModOut     *ModPort
	Audio      *buffer.AudioBuffer
	Params     *P
	MIDI       midi.InputData
	// Note is the sounding note of the last note-on. NoteOff is the event
	// of the last note-off; it does not replace Note.
	Note       midi.NoteEvent
	NoteOff    midi.NoteEvent
}

// Core is one concrete algorithm behind a module. All methods report
// whether they did any work; none of them fail.
type Core[P any] interface {
	Info() CoreInfo
	Reset(d *ProcessData[P]) bool
	Update(d *ProcessData[P]) bool
	Render(d *ProcessData[P]) bool
	NoteOn(d *ProcessData[P]) bool
	NoteOff(d *ProcessData[P]) bool
}

// Shutdowner is implemented by cores that can fade out on request ahead
// of voice reuse.
type Shutdowner interface {
	Shutdown() bool
}
