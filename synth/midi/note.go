package midi

import "math"

// NoteEvent carries a note-on or note-off to modules. PitchHz is already
// converted from Note.
type NoteEvent struct {
	PitchHz  float64
	Note     uint8
	Velocity uint8
}

// NewNoteEvent returns an event for the note with its equal-tempered pitch.
func NewNoteEvent(note, velocity uint8) NoteEvent {
	return NoteEvent{
		PitchHz:  NoteToFrequency(float64(note)),
		Note:     note,
		Velocity: velocity,
	}
}

// FrequencyTolerance is the semitone slack used by FrequencyToNote so that
// frequencies computed from a note map back to the same note.
const FrequencyTolerance = 1e-9

// NoteToFrequency returns the A440 equal-tempered frequency of a (possibly
// fractional) MIDI note number.
func NoteToFrequency(note float64) float64 {
	return 440 * math.Exp2((note-69)/12)
}

// FrequencyToNote returns the lowest MIDI note whose frequency is at or
// above hz: the ceiling of 12*log2(hz/440)+69, less FrequencyTolerance.
// Non-positive frequencies return 0.
func FrequencyToNote(hz float64) int {
	if hz <= 0 {
		return 0
	}

	return int(math.Ceil(12*math.Log2(hz/440)-FrequencyTolerance)) + 69
}
