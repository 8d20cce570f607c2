package voice

import (
	"fmt"

	"github.com/cwbudde/algo-synth/synth/modmatrix"
	"github.com/cwbudde/algo-synth/synth/module"
)

// Modulation sources.
const (
	SourceLFO1 modmatrix.SourceID = iota
	SourceLFO1Unipolar
	SourceLFO2
	SourceLFO2Unipolar
	SourceAmpEG
	SourceFilterEG
	SourceFilterEGBiased
	SourceModWheel
	SourceVelocity
	SourceKey
	NumSources
)

// Modulation destinations.
const (
	DestOsc1Pitch modmatrix.DestinationID = iota
	DestOsc2Pitch
	DestOsc1Shape
	DestOsc2Shape
	DestOsc1EG
	DestOsc2EG
	DestOsc2FM
	DestFilterCutoff
	DestFilterEG
	DestFilterQ
	DestDCAEG
	DestDCAAmp
	DestDCAPan
	DestLFO1Rate
	DestLFO2Rate
	DestAmpEGTrigger
	DestFilterEGTrigger
	NumDestinations
)

var sourceNames = [NumSources]string{
	"lfo1", "lfo1_unipolar", "lfo2", "lfo2_unipolar", "amp_eg",
	"filter_eg", "filter_eg_biased", "mod_wheel", "velocity", "key",
}

var destinationNames = [NumDestinations]string{
	"osc1_pitch", "osc2_pitch", "osc1_shape", "osc2_shape", "osc1_eg",
	"osc2_eg", "osc2_fm", "filter_cutoff", "filter_eg", "filter_q",
	"dca_eg", "dca_amp", "dca_pan", "lfo1_rate", "lfo2_rate",
	"amp_eg_trigger", "filter_eg_trigger",
}

// SourceName returns the patch name of a source.
func SourceName(id modmatrix.SourceID) string {
	if id < 0 || id >= NumSources {
		return fmt.Sprintf("source(%d)", int(id))
	}

	return sourceNames[id]
}

// DestinationName returns the patch name of a destination.
func DestinationName(id modmatrix.DestinationID) string {
	if id < 0 || id >= NumDestinations {
		return fmt.Sprintf("destination(%d)", int(id))
	}

	return destinationNames[id]
}

// LookupSource resolves a source name.
func LookupSource(name string) (modmatrix.SourceID, bool) {
	for i, n := range sourceNames {
		if n == name {
			return modmatrix.SourceID(i), true
		}
	}

	return 0, false
}

// LookupDestination resolves a destination name.
func LookupDestination(name string) (modmatrix.DestinationID, bool) {
	for i, n := range destinationNames {
		if n == name {
			return modmatrix.DestinationID(i), true
		}
	}

	return 0, false
}

// Channels of the voice's controller port.
const (
	ctlModWheel = iota
	ctlVelocity
	ctlKey
)

type sourceBinding struct {
	id      modmatrix.SourceID
	port    *module.ModPort
	channel int
}

type destinationBinding struct {
	id      modmatrix.DestinationID
	port    *module.ModPort
	channel int
	opts    modmatrix.DestinationOptions
}

// bind registers every source and destination with the matrix.
func (v *Voice) bind() error {
	sources := []sourceBinding{
		{SourceLFO1, v.lfo1.ModOut(), module.OutNormal},
		{SourceLFO1Unipolar, v.lfo1.ModOut(), module.OutUnipolarFromMin},
		{SourceLFO2, v.lfo2.ModOut(), module.OutNormal},
		{SourceLFO2Unipolar, v.lfo2.ModOut(), module.OutUnipolarFromMin},
		{SourceAmpEG, v.ampEG.ModOut(), module.OutNormal},
		{SourceFilterEG, v.filterEG.ModOut(), module.OutNormal},
		{SourceFilterEGBiased, v.filterEG.ModOut(), module.OutBiased},
		{SourceModWheel, &v.controls, ctlModWheel},
		{SourceVelocity, &v.controls, ctlVelocity},
		{SourceKey, &v.controls, ctlKey},
	}

	for _, s := range sources {
		if err := v.matrix.AddSource(s.id, s.port, s.channel); err != nil {
			return err
		}
	}

	high := modmatrix.DestinationOptions{HighPriority: true}
	dests := []destinationBinding{
		{DestOsc1Pitch, v.osc1.ModIn(), module.InPitchMod, modmatrix.DestinationOptions{}},
		{DestOsc2Pitch, v.osc2.ModIn(), module.InPitchMod, modmatrix.DestinationOptions{}},
		{DestOsc1Shape, v.osc1.ModIn(), module.InShapeMod, modmatrix.DestinationOptions{}},
		{DestOsc2Shape, v.osc2.ModIn(), module.InShapeMod, modmatrix.DestinationOptions{}},
		{DestOsc1EG, v.osc1.ModIn(), module.InEGMod, modmatrix.DestinationOptions{}},
		{DestOsc2EG, v.osc2.ModIn(), module.InEGMod, modmatrix.DestinationOptions{}},
		{DestOsc2FM, v.osc2.ModIn(), module.InFreqMod, modmatrix.DestinationOptions{}},
		{DestFilterCutoff, v.filter.ModIn(), module.InBipolarMod, modmatrix.DestinationOptions{}},
		{DestFilterEG, v.filter.ModIn(), module.InEGMod, modmatrix.DestinationOptions{}},
		{DestFilterQ, v.filter.ModIn(), module.InQMod, modmatrix.DestinationOptions{}},
		{DestDCAEG, v.dca.ModIn(), module.InEGMod, modmatrix.DestinationOptions{}},
		{DestDCAAmp, v.dca.ModIn(), module.InMaxDownAmpMod, modmatrix.DestinationOptions{Default: 1}},
		{DestDCAPan, v.dca.ModIn(), module.InPanMod, modmatrix.DestinationOptions{}},
		{DestLFO1Rate, v.lfo1.ModIn(), module.InFreqMod, high},
		{DestLFO2Rate, v.lfo2.ModIn(), module.InFreqMod, high},
		{DestAmpEGTrigger, v.ampEG.ModIn(), module.InTrigger, high},
		{DestFilterEGTrigger, v.filterEG.ModIn(), module.InTrigger, high},
	}

	for _, d := range dests {
		if err := v.matrix.AddDestination(d.id, d.port, d.channel, d.opts); err != nil {
			return err
		}
	}

	return nil
}

// Hardwires holds the intensities of the fixed routes.
type Hardwires struct {
	AmpEGToDCA         float64 `yaml:"amp_eg_to_dca"`
	FilterEGToFilter   float64 `yaml:"filter_eg_to_filter"`
	LFO1ToOscPitch     float64 `yaml:"lfo1_to_osc_pitch"`
	LFO1ToFilterCutoff float64 `yaml:"lfo1_to_filter_cutoff"`
}

// DefaultHardwires routes both envelopes at full depth and leaves the LFO
// routes at zero.
func DefaultHardwires() Hardwires {
	return Hardwires{AmpEGToDCA: 1, FilterEGToFilter: 1}
}

type hardwire struct {
	src modmatrix.SourceID
	dst modmatrix.DestinationID
	amt float64
}

func (h Hardwires) routes() []hardwire {
	return []hardwire{
		{SourceAmpEG, DestDCAEG, h.AmpEGToDCA},
		{SourceFilterEG, DestFilterEG, h.FilterEGToFilter},
		{SourceLFO1, DestOsc1Pitch, h.LFO1ToOscPitch},
		{SourceLFO1, DestOsc2Pitch, h.LFO1ToOscPitch},
		{SourceLFO1, DestFilterCutoff, h.LFO1ToFilterCutoff},
	}
}

// ApplyHardwires installs the hardwired routes with the intensities in the
// voice parameters.
func (v *Voice) ApplyHardwires() error {
	for _, h := range v.params.Hardwires.routes() {
		if err := v.matrix.SetHardwire(h.src, h.dst, h.amt); err != nil {
			return err
		}
	}

	return nil
}
