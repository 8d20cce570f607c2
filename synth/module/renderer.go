package module

import (
	"github.com/cwbudde/algo-synth/dsp/buffer"
	"github.com/cwbudde/algo-synth/synth/midi"
)

// Renderer is the uniform view a voice has of any module, with or without
// cores.
type Renderer interface {
	Reset(sampleRate float64) bool
	Update() bool
	Render(samples int) bool
	NoteOn(ev midi.NoteEvent) bool
	NoteOff(ev midi.NoteEvent) bool
	ModIn() *ModPort
	ModOut() *ModPort
	Audio() *buffer.AudioBuffer
}

var _ Renderer = (*Module[struct{}])(nil)
