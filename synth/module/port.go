package module

// NumModChannels is the size of every modulation port.
const NumModChannels = 16

// ModPort is a fixed set of modulation channels. Values persist between
// blocks until overwritten.
type ModPort [NumModChannels]float64

// Modulation input channels.
const (
	// InEGMod carries an envelope into amplitude or cutoff.
	InEGMod = iota
	// InBipolarMod is the general bipolar modulation input.
	InBipolarMod
	// InPitchMod is bipolar pitch modulation scaled by the module's range.
	InPitchMod
	// InMaxDownAmpMod is unipolar amplitude modulation where 1 means
	// unmodulated.
	InMaxDownAmpMod
	// InPanMod is bipolar pan modulation.
	InPanMod
	// InFreqMod modulates a modulator's own rate.
	InFreqMod
	// InShapeMod modulates waveform shape or pulse width.
	InShapeMod
	// InPhaseMod is block-rate phase modulation.
	InPhaseMod
	// InQMod is bipolar filter resonance modulation.
	InQMod
	// InTrigger retriggers an envelope on a rising edge through 0.5.
	InTrigger
	// InAmpMod is bipolar gain modulation in dB scaled by the module.
	InAmpMod
)

// Modulation output channels.
const (
	OutNormal = iota
	OutInverted
	OutUnipolarFromMax
	OutUnipolarFromMin
	// OutBiased is an envelope with its sustain level subtracted.
	OutBiased
	// OutOneShotComplete is 1 once a one-shot modulator has finished.
	OutOneShotComplete
)

// DefaultInputs returns the safe values restored on every note-on.
// Amplitude channels default to 1, everything else to 0.
func DefaultInputs() ModPort {
	var p ModPort
	p[InMaxDownAmpMod] = 1

	return p
}
