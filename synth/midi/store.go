package midi

import (
	gomidi "gitlab.com/gomidi/midi/v2"
)

// Store is the default InputData. The zero value is not ready; use
// NewStore.
type Store struct {
	globals [NumGlobals]uint32
	ccs     [NumCCs]uint32
	aux     [NumAux]float64
	flags   AuxFlags
}

// NewStore returns a store with host-free defaults: volume and expression
// at maximum, pan and pitch bend centred, a two semitone bend range and
// 120 BPM.
func NewStore() *Store {
	s := &Store{}
	s.Reset()

	return s
}

// Reset restores the defaults of NewStore. Flags are kept.
func (s *Store) Reset() {
	s.globals = [NumGlobals]uint32{}
	s.ccs = [NumCCs]uint32{}
	s.aux = [NumAux]float64{}

	s.globals[PitchBendLSB] = 0
	s.globals[PitchBendMSB] = 64
	s.globals[MasterTuneCoarse] = 64
	s.globals[MasterTuneFine] = 64
	s.globals[BendRangeCoarse] = 2
	s.globals[BendRangeFine] = 0

	s.ccs[CCVolume] = 127
	s.ccs[CCPan] = 64
	s.ccs[CCExpression] = 127

	s.aux[AuxBPM] = 120
	s.aux[AuxTimeSigNumerator] = 4
	s.aux[AuxTimeSigDenominator] = 4
}

// Global implements InputData.
func (s *Store) Global(idx Global) uint32 {
	if idx < 0 || idx >= NumGlobals {
		return 0
	}

	return s.globals[idx]
}

// CC implements InputData.
func (s *Store) CC(n uint8) uint32 {
	if int(n) >= NumCCs {
		return 0
	}

	return s.ccs[n]
}

// AuxValue implements InputData.
func (s *Store) AuxValue(idx Aux) float64 {
	if idx < 0 || idx >= NumAux {
		return 0
	}

	return s.aux[idx]
}

// Flags implements InputData.
func (s *Store) Flags() AuxFlags { return s.flags }

// SetGlobal sets a global value. Out-of-range indices are ignored.
func (s *Store) SetGlobal(idx Global, v uint32) {
	if idx >= 0 && idx < NumGlobals {
		s.globals[idx] = v
	}
}

// SetCC sets a controller value.
func (s *Store) SetCC(n uint8, v uint32) {
	if int(n) < NumCCs {
		s.ccs[n] = v
	}
}

// SetAuxValue sets an auxiliary value.
func (s *Store) SetAuxValue(idx Aux, v float64) {
	if idx >= 0 && idx < NumAux {
		s.aux[idx] = v
	}
}

// SetFlags replaces the engine flags.
func (s *Store) SetFlags(f AuxFlags) { s.flags = f }

// SetPitchBend stores a 14-bit bend value (0..16383, 8192 centre).
func (s *Store) SetPitchBend(v int) {
	if v < 0 {
		v = 0
	} else if v > 16383 {
		v = 16383
	}

	s.globals[PitchBendLSB] = uint32(v & 0x7f)
	s.globals[PitchBendMSB] = uint32(v >> 7)
}

// EventKind classifies a decoded message.
type EventKind int

const (
	EventNone EventKind = iota
	EventNoteOn
	EventNoteOff
	EventControlChange
	EventPitchBend
)

// Event is the result of HandleMessage.
type Event struct {
	Kind    EventKind
	Channel uint8
	Note    NoteEvent
}

// HandleMessage updates the store from a channel voice message and
// returns the decoded event. A note-on with zero velocity is a note-off.
// Unsupported messages return EventNone and leave the store unchanged.
func (s *Store) HandleMessage(msg gomidi.Message) Event {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		s.globals[LastNote] = s.globals[CurrentNote]
		s.globals[LastVelocity] = s.globals[CurrentVelocity]
		s.globals[CurrentNote] = uint32(key)
		s.globals[CurrentVelocity] = uint32(vel)

		return Event{Kind: EventNoteOn, Channel: ch, Note: NewNoteEvent(key, vel)}

	case msg.GetNoteEnd(&ch, &key):
		return Event{Kind: EventNoteOff, Channel: ch, Note: NewNoteEvent(key, 0)}
	}

	var cc, val uint8
	if msg.GetControlChange(&ch, &cc, &val) {
		s.SetCC(cc, uint32(val))
		if cc == CCAllNotesOff {
			s.ccs[CCSustainPedal] = 0
		}

		return Event{Kind: EventControlChange, Channel: ch}
	}

	var rel int16
	var abs uint16
	if msg.GetPitchBend(&ch, &rel, &abs) {
		s.SetPitchBend(int(abs))
		return Event{Kind: EventPitchBend, Channel: ch}
	}

	return Event{}
}
