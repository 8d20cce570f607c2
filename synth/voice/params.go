package voice

import (
	"github.com/cwbudde/algo-synth/synth/dca"
	"github.com/cwbudde/algo-synth/synth/eg"
	"github.com/cwbudde/algo-synth/synth/filter"
	"github.com/cwbudde/algo-synth/synth/lfo"
	"github.com/cwbudde/algo-synth/synth/osc"
)

// Cores names the selected core of each module. An empty name keeps the
// current selection; an unknown name is ignored.
type Cores struct {
	LFO1     string `yaml:"lfo1"`
	LFO2     string `yaml:"lfo2"`
	AmpEG    string `yaml:"amp_eg"`
	FilterEG string `yaml:"filter_eg"`
	Osc1     string `yaml:"osc1"`
	Osc2     string `yaml:"osc2"`
	Filter   string `yaml:"filter"`
}

// Parameters hold the complete state of a voice patch.
type Parameters struct {
	LFO1      lfo.Parameters    `yaml:"lfo1"`
	LFO2      lfo.Parameters    `yaml:"lfo2"`
	AmpEG     eg.Parameters     `yaml:"amp_eg"`
	FilterEG  eg.Parameters     `yaml:"filter_eg"`
	Osc1      osc.Parameters    `yaml:"osc1"`
	Osc2      osc.Parameters    `yaml:"osc2"`
	Filter    filter.Parameters `yaml:"filter"`
	DCA       dca.Parameters    `yaml:"dca"`
	Cores     Cores             `yaml:"cores"`
	Hardwires Hardwires         `yaml:"hardwires"`
}

// DefaultParameters returns a single saw through a lowpass, with the
// second oscillator muted.
func DefaultParameters() Parameters {
	lfo2 := lfo.DefaultParameters()
	lfo2.Waveform = lfo.Triangle
	lfo2.FrequencyHz = 0.5

	osc2 := osc.DefaultParameters()
	osc2.Level = 0
	osc2.Fine = 7

	flt := filter.DefaultParameters()
	flt.CutoffHz = 2000
	flt.EGModSemitones = 24

	return Parameters{
		LFO1:     lfo.DefaultParameters(),
		LFO2:     lfo2,
		AmpEG:    eg.DefaultParameters(),
		FilterEG: eg.DefaultParameters(),
		Osc1:     osc.DefaultParameters(),
		Osc2:     osc2,
		Filter:   flt,
		DCA:      dca.DefaultParameters(),
		Cores: Cores{
			LFO1:     "classic",
			LFO2:     "classic",
			AmpEG:    "analog",
			FilterEG: "analog",
			Osc1:     "va",
			Osc2:     "va",
			Filter:   "va",
		},
		Hardwires: DefaultHardwires(),
	}
}
