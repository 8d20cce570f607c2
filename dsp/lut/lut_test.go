package lut

import (
	"math"
	"testing"
)

func TestPitchRatioModes(t *testing.T) {
	for s := -MaxSemitones; s <= MaxSemitones; s++ {
		for _, frac := range []float64{0, 0.03125, 0.37, 0.5} {
			semis := float64(s) + frac
			if semis > MaxSemitones {
				continue
			}

			want := math.Exp2(semis / 12)

			if got := PitchRatio(semis, ModeDirect); got != want {
				t.Fatalf("direct(%v) = %v, want %v", semis, got, want)
			}

			if got := PitchRatio(semis, ModeTable); math.Abs(got-want)/want > PitchTableTolerance {
				t.Fatalf("table(%v) = %v, want %v", semis, got, want)
			}

			if got := PitchRatio(semis, ModeApprox); math.Abs(got-want)/want > ApproxTolerance {
				t.Fatalf("approx(%v) = %v, want %v", semis, got, want)
			}
		}
	}
}

func TestPitchRatioClamps(t *testing.T) {
	if got, want := PitchRatio(500, ModeDirect), math.Exp2(10); got != want {
		t.Fatalf("PitchRatio(500) = %v, want %v", got, want)
	}

	if got := PitchRatio(12, ModeTable); math.Abs(got-2) > 1e-12 {
		t.Fatalf("octave = %v, want exactly 2", got)
	}
}

func TestSineTable(t *testing.T) {
	for i := range 10000 {
		phase := float64(i)/10000*3 - 1
		want := math.Sin(2 * math.Pi * phase)
		if got := Sine(phase, ModeTable); math.Abs(got-want) > SineTableTolerance {
			t.Fatalf("Sine(%v) = %v, want %v", phase, got, want)
		}
	}
}

func TestTransforms(t *testing.T) {
	for i := 0; i <= 990; i++ {
		x := float64(i) / 1000
		if got, want := Concave(x, ModeTable), concave(x); math.Abs(got-want) > TransformTableTolerance {
			t.Fatalf("Concave(%v) = %v, want %v", x, got, want)
		}

		y := 1 - x
		if got, want := Convex(y, ModeTable), convex(y); math.Abs(got-want) > TransformTableTolerance {
			t.Fatalf("Convex(%v) = %v, want %v", y, got, want)
		}
	}
}

func TestTransformShape(t *testing.T) {
	if Concave(0, ModeDirect) != 0 || Concave(1, ModeDirect) != 1 {
		t.Fatal("concave endpoints")
	}

	if Convex(0, ModeDirect) != 0 || Convex(1, ModeDirect) != 1 {
		t.Fatal("convex endpoints")
	}

	if Concave(0.5, ModeDirect) >= 0.5 {
		t.Fatalf("concave(0.5) = %v, want below diagonal", Concave(0.5, ModeDirect))
	}

	if Convex(0.5, ModeDirect) <= 0.5 {
		t.Fatalf("convex(0.5) = %v, want above diagonal", Convex(0.5, ModeDirect))
	}
	// The curves mirror each other.
	for _, x := range []float64{0.1, 0.3, 0.7} {
		if d := Convex(x, ModeDirect) - (1 - Concave(1-x, ModeDirect)); math.Abs(d) > 1e-12 {
			t.Fatalf("mirror mismatch at %v: %v", x, d)
		}
	}
}

func TestHann(t *testing.T) {
	for _, mode := range []Mode{ModeDirect, ModeTable} {
		if got := Hann(0.5, mode); math.Abs(got-1) > SineTableTolerance {
			t.Fatalf("%v: Hann(0.5) = %v, want 1", mode, got)
		}

		if got := Hann(0, mode); got != 0 {
			t.Fatalf("%v: Hann(0) = %v, want 0", mode, got)
		}

		if got := Hann(-1, mode); got != 0 {
			t.Fatalf("%v: Hann(-1) = %v, want 0", mode, got)
		}
	}

	for i := range 1000 {
		p := float64(i) / 1000
		if d := math.Abs(Hann(p, ModeTable) - Hann(p, ModeDirect)); d > SineTableTolerance {
			t.Fatalf("Hann(%v) table error %v", p, d)
		}
	}
}

func TestModeText(t *testing.T) {
	for _, m := range []Mode{ModeDirect, ModeTable, ModeApprox} {
		b, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", m, err)
		}

		var back Mode
		if err := back.UnmarshalText(b); err != nil || back != m {
			t.Fatalf("round trip %v -> %q -> %v (%v)", m, b, back, err)
		}
	}

	var m Mode
	if err := m.UnmarshalText([]byte("bogus")); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
