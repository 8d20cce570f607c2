package midi

import (
	"github.com/cwbudde/algo-synth/dsp/core"
)

// Global indexes the non-CC MIDI state.
type Global int

const (
	PitchBendLSB Global = iota
	PitchBendMSB
	MasterTuneCoarse
	MasterTuneFine
	BendRangeCoarse
	BendRangeFine
	CurrentNote
	CurrentVelocity
	LastNote
	LastVelocity

	NumGlobals
)

// Controllers read by the engine.
const (
	CCModWheel     = 1
	CCVolume       = 7
	CCPan          = 10
	CCExpression   = 11
	CCSustainPedal = 64
	CCAllNotesOff  = 123

	NumCCs = 128
)

// Aux indexes auxiliary host values.
type Aux int

const (
	AuxBPM Aux = iota
	AuxTimeSigNumerator
	AuxTimeSigDenominator

	NumAux
)

// AuxFlags are construction-time engine switches.
type AuxFlags uint32

const (
	// FlagDualMonoFilters processes both filter channels independently.
	FlagDualMonoFilters AuxFlags = 1 << iota
	// FlagAnalogFilters selects analog-matched filter responses.
	FlagAnalogFilters
	// FlagHalfRateTables builds wavetables for half the sample rate.
	FlagHalfRateTables
	// FlagReducedUnison lowers the unison voice count.
	FlagReducedUnison
)

// Has reports whether all bits of f are set.
func (a AuxFlags) Has(f AuxFlags) bool { return a&f == f }

// InputData is the read-only view of MIDI and host state shared by all
// voices. Implementations must be non-blocking.
type InputData interface {
	Global(idx Global) uint32
	CC(n uint8) uint32
	AuxValue(idx Aux) float64
	Flags() AuxFlags
}

// PitchBend returns the 14-bit pitch-bend value (8192 is centre).
func PitchBend(d InputData) int {
	return int(d.Global(PitchBendMSB)&0x7f)<<7 | int(d.Global(PitchBendLSB)&0x7f)
}

// PitchBendSemitones converts the current pitch bend and bend range to a
// signed semitone offset.
func PitchBendSemitones(d InputData) float64 {
	bend := PitchBend(d) - 8192
	var norm float64
	if bend >= 0 {
		norm = float64(bend) / 8191
	} else {
		norm = float64(bend) / 8192
	}

	rng := float64(d.Global(BendRangeCoarse)) + float64(d.Global(BendRangeFine))/100

	return norm * rng
}

// MasterTuneSemitones returns the master tuning offset. Coarse is
// centred on 64 in whole semitones; fine spans ±1 semitone.
func MasterTuneSemitones(d InputData) float64 {
	coarse := float64(int(d.Global(MasterTuneCoarse)) - 64)
	fine := core.MIDIToBipolar(d.Global(MasterTuneFine))

	return coarse + fine
}

// Volume returns the CC7 volume as a linear attenuation in [0, 1].
func Volume(d InputData) float64 {
	return core.MIDIToAttenuation(d.CC(CCVolume))
}

// Pan returns the CC10 pan as a bipolar value.
func Pan(d InputData) float64 {
	return core.MIDIToBipolar(d.CC(CCPan))
}

// SustainPedal reports whether CC64 is down.
func SustainPedal(d InputData) bool {
	return d.CC(CCSustainPedal) > 63
}

// BPM returns the host tempo.
func BPM(d InputData) float64 {
	return d.AuxValue(AuxBPM)
}
