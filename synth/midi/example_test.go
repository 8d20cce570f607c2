package midi_test

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/cwbudde/algo-synth/synth/midi"
)

func ExampleStore_HandleMessage() {
	s := midi.NewStore()
	ev := s.HandleMessage(gomidi.NoteOn(0, 69, 127))
	fmt.Printf("%.1f Hz note %d\n", ev.Note.PitchHz, ev.Note.Note)
	// Output: 440.0 Hz note 69
}

func ExampleFrequencyToNote() {
	fmt.Println(midi.FrequencyToNote(440), midi.FrequencyToNote(445))
	// Output: 69 70
}
