package main

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/voice"
)

const bytesPerFrame = 2 * 4

// source renders the voice on demand as interleaved stereo float32 for
// the audio player. Events are applied at block boundaries.
type source struct {
	v      *voice.Voice
	store  *midi.Store
	events []event
	next   int
	pos    int
	end    int
	gain   float32

	// left and right hold rendered samples not yet read.
	left, right []float64
}

func newSource(v *voice.Voice, store *midi.Store, events []event, end int, gain float32) *source {
	return &source{
		v:      v,
		store:  store,
		events: events,
		end:    end,
		gain:   gain,
		left:   make([]float64, 0, v.BlockSize()),
		right:  make([]float64, 0, v.BlockSize()),
	}
}

// Read implements io.Reader.
func (s *source) Read(p []byte) (int, error) {
	n := 0
	for n+bytesPerFrame <= len(p) {
		if len(s.left) == 0 {
			if s.pos >= s.end {
				break
			}

			s.renderBlock()
		}

		l := float32(s.left[0]) * s.gain
		r := float32(s.right[0]) * s.gain
		s.left, s.right = s.left[1:], s.right[1:]
		binary.LittleEndian.PutUint32(p[n:], math.Float32bits(l))
		binary.LittleEndian.PutUint32(p[n+4:], math.Float32bits(r))
		n += bytesPerFrame
	}

	if n == 0 && s.pos >= s.end {
		return 0, io.EOF
	}

	return n, nil
}

func (s *source) renderBlock() {
	for s.next < len(s.events) && s.events[s.next].at <= s.pos {
		ev := s.store.HandleMessage(s.events[s.next].msg)
		switch ev.Kind {
		case midi.EventNoteOn:
			s.v.NoteOn(ev.Note)
		case midi.EventNoteOff:
			s.v.NoteOff(ev.Note)
		}

		s.next++
	}

	n := s.v.BlockSize()
	if s.next < len(s.events) {
		n = min(n, s.events[s.next].at-s.pos)
	}

	n = max(1, min(n, s.end-s.pos))
	s.v.Render(n)
	out := s.v.Output()
	s.left = append(s.left[:0], out.Output(0)...)
	s.right = append(s.right[:0], out.Output(1)...)
	s.pos += n
}
