package eg

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/lut"
)

// Contour selects between sustaining and one-shot envelopes.
type Contour int

const (
	// ADSR sustains until note-off.
	ADSR Contour = iota
	// AR goes straight from attack to release.
	AR
)

func (c Contour) String() string {
	switch c {
	case ADSR:
		return "adsr"
	case AR:
		return "ar"
	default:
		return fmt.Sprintf("Contour(%d)", int(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Contour) MarshalText() ([]byte, error) {
	switch c {
	case ADSR, AR:
		return []byte(c.String()), nil
	default:
		return nil, fmt.Errorf("eg: unknown contour %d", int(c))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Contour) UnmarshalText(text []byte) error {
	switch string(text) {
	case "adsr":
		*c = ADSR
	case "ar":
		*c = AR
	default:
		return fmt.Errorf("eg: unknown contour %q", text)
	}

	return nil
}

// State is the envelope state machine position.
type State int

const (
	Off State = iota
	Delay
	Attack
	Hold
	Decay
	Slope
	Sustain
	Release
	Shutdown
)

func (s State) String() string {
	switch s {
	case Off:
		return "off"
	case Delay:
		return "delay"
	case Attack:
		return "attack"
	case Hold:
		return "hold"
	case Decay:
		return "decay"
	case Slope:
		return "slope"
	case Sustain:
		return "sustain"
	case Release:
		return "release"
	case Shutdown:
		return "shutdown"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ShutdownSeconds is the length of the linear fade forced by Shutdown.
const ShutdownSeconds = 0.005

// Parameters configure both envelope cores. Times are in milliseconds and
// levels in [0, 1]. Delay, Hold, Slope and DecayLevel only affect DXCore.
//
// VelocityToAttack shortens the attack by velocity/127 and NoteToDecay
// shortens the decay by note/127; both are applied once per note-on.
// SustainOverride acts as a held sustain pedal.
type Parameters struct {
	Contour          Contour  `yaml:"contour"`
	StartLevel       float64  `yaml:"start_level"`
	DelayMs          float64  `yaml:"delay_ms"`
	AttackMs         float64  `yaml:"attack_ms"`
	HoldMs           float64  `yaml:"hold_ms"`
	DecayMs          float64  `yaml:"decay_ms"`
	DecayLevel       float64  `yaml:"decay_level"`
	SlopeMs          float64  `yaml:"slope_ms"`
	SustainLevel     float64  `yaml:"sustain_level"`
	ReleaseMs        float64  `yaml:"release_ms"`
	Legato           bool     `yaml:"legato"`
	ResetToZero      bool     `yaml:"reset_to_zero"`
	VelocityToAttack bool     `yaml:"velocity_to_attack"`
	NoteToDecay      bool     `yaml:"note_to_decay"`
	SustainOverride  bool     `yaml:"sustain_override"`
	Math             lut.Mode `yaml:"math"`
}

// DefaultParameters returns a medium-speed ADSR.
func DefaultParameters() Parameters {
	return Parameters{
		Contour:      ADSR,
		AttackMs:     5,
		DecayMs:      200,
		DecayLevel:   0.7,
		SustainLevel: 0.7,
		ReleaseMs:    300,
	}
}
