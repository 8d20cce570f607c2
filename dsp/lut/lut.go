package lut

import (
	"fmt"
	"math"
	"sync"

	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-synth/dsp/interp"
	"github.com/cwbudde/algo-synth/dsp/window"
)

// Mode selects how a function is evaluated.
type Mode int

const (
	// ModeDirect evaluates the closed form with the math package.
	ModeDirect Mode = iota
	// ModeTable reads a precomputed table with linear interpolation.
	ModeTable
	// ModeApprox uses fast polynomial approximations where available.
	ModeApprox
)

// Documented worst-case errors of the table and approximation paths.
const (
	PitchTableTolerance     = 1e-5
	SineTableTolerance      = 1e-5
	TransformTableTolerance = 1e-3
	ApproxTolerance         = 5e-3
)

const (
	// MaxSemitones bounds the pitch table; PitchRatio clamps to ±MaxSemitones.
	MaxSemitones = 120

	pitchStepsPerSemitone = 16
	sineSize              = 2048
	transformSize         = 1024
	hannSize              = 1024

	ln2Over12 = math.Ln2 / 12
)

var (
	tablesOnce sync.Once

	pitchTable   []float64
	sineTable    []float64
	concaveTable []float64
	convexTable  []float64
	hannTable    []float64
)

func (m Mode) String() string {
	switch m {
	case ModeDirect:
		return "direct"
	case ModeTable:
		return "table"
	case ModeApprox:
		return "approx"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case ModeDirect, ModeTable, ModeApprox:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("lut: invalid mode %d", int(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "direct":
		*m = ModeDirect
	case "table":
		*m = ModeTable
	case "approx":
		*m = ModeApprox
	default:
		return fmt.Errorf("lut: unknown mode %q", string(text))
	}

	return nil
}

func buildTables() {
	n := 2*MaxSemitones*pitchStepsPerSemitone + 1
	pitchTable = make([]float64, n)
	for i := range pitchTable {
		s := float64(i)/pitchStepsPerSemitone - MaxSemitones
		pitchTable[i] = math.Exp2(s / 12)
	}

	sineTable = make([]float64, sineSize+1)
	for i := range sineTable {
		sineTable[i] = math.Sin(2 * math.Pi * float64(i) / sineSize)
	}

	concaveTable = make([]float64, transformSize+1)
	convexTable = make([]float64, transformSize+1)
	for i := range concaveTable {
		x := float64(i) / transformSize
		concaveTable[i] = concave(x)
		convexTable[i] = convex(x)
	}

	hannTable = window.Generate(window.TypeHann, hannSize+1)
}

// interpolate reads table at the fractional index pos in [0, len-1].
func interpolate(table []float64, pos float64) float64 {
	last := len(table) - 1
	if pos <= 0 {
		return table[0]
	}

	if pos >= float64(last) {
		return table[last]
	}

	i := int(pos)

	return interp.Linear(pos-float64(i), table[i], table[i+1])
}

// PitchRatio returns 2^(semitones/12), the frequency multiplier for a pitch
// offset. Offsets beyond ±MaxSemitones clamp.
func PitchRatio(semitones float64, mode Mode) float64 {
	if semitones > MaxSemitones {
		semitones = MaxSemitones
	} else if semitones < -MaxSemitones {
		semitones = -MaxSemitones
	}

	switch mode {
	case ModeTable:
		tablesOnce.Do(buildTables)
		return interpolate(pitchTable, (semitones+MaxSemitones)*pitchStepsPerSemitone)
	case ModeApprox:
		return approx.FastExp(semitones * ln2Over12)
	default:
		return math.Exp2(semitones / 12)
	}
}

// Exp returns e^x. ModeTable has no exponential table and calculates
// directly.
func Exp(x float64, mode Mode) float64 {
	if mode == ModeApprox {
		return approx.FastExp(x)
	}

	return math.Exp(x)
}

// Sine returns sin(2*pi*phase) for phase in cycles.
func Sine(phase float64, mode Mode) float64 {
	if mode == ModeDirect {
		return math.Sin(2 * math.Pi * phase)
	}

	tablesOnce.Do(buildTables)
	phase -= math.Floor(phase)

	return interpolate(sineTable, phase*sineSize)
}

// Concave maps a unipolar value through the analog-style concave curve
// -(5/12)log10(1-x), clamped to [0, 1]. Bipolar callers should map first.
func Concave(x float64, mode Mode) float64 {
	if mode == ModeDirect {
		return concave(x)
	}

	tablesOnce.Do(buildTables)

	return interpolate(concaveTable, x*transformSize)
}

// Convex maps a unipolar value through 1+(5/12)log10(x), clamped to [0, 1].
func Convex(x float64, mode Mode) float64 {
	if mode == ModeDirect {
		return convex(x)
	}

	tablesOnce.Do(buildTables)

	return interpolate(convexTable, x*transformSize)
}

// Hann returns the Hann window value 0.5(1-cos(2*pi*phase)) for phase in
// [0, 1]. Phases outside clamp to the window edges.
func Hann(phase float64, mode Mode) float64 {
	if phase < 0 {
		phase = 0
	} else if phase > 1 {
		phase = 1
	}

	if mode == ModeDirect {
		return window.At(window.TypeHann, phase)
	}

	tablesOnce.Do(buildTables)

	return interpolate(hannTable, phase*hannSize)
}

func concave(x float64) float64 {
	if x <= 0 {
		return 0
	}

	if x >= 1 {
		return 1
	}

	y := -(5.0 / 12.0) * math.Log10(1-x)
	if y > 1 {
		return 1
	}

	return y
}

func convex(x float64) float64 {
	if x <= 0 {
		return 0
	}

	if x >= 1 {
		return 1
	}

	y := 1 + (5.0/12.0)*math.Log10(x)
	if y < 0 {
		return 0
	}

	return y
}
