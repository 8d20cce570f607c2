package interp

import "fmt"

// Mode selects an interpolation method.
type Mode int

const (
	// ModeLinear reads between two neighbours.
	ModeLinear Mode = iota
	// ModeHermite fits a cubic through four neighbours.
	ModeHermite
)

func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeHermite:
		return "hermite"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case ModeLinear, ModeHermite:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("interp: invalid mode %d", int(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "linear":
		*m = ModeLinear
	case "hermite":
		*m = ModeHermite
	default:
		return fmt.Errorf("interp: unknown mode %q", string(text))
	}

	return nil
}

// Linear interpolates from x0 to x1 at t in [0, 1].
func Linear(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbour points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)

	return ((c3*t+c2)*t+c1)*t + c0
}
