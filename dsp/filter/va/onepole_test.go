package va

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/internal/testutil"
)

func TestOnePoleComplementary(t *testing.T) {
	f, err := NewOnePole(fs)
	if err != nil {
		t.Fatal(err)
	}

	f.SetCutoff(1200)
	x := testutil.DeterministicNoise(3, 1, 512)
	for i, v := range x {
		out := f.Process(v)
		if math.Abs(out.LPF+out.HPF-v) > 1e-12 {
			t.Fatalf("sample %d: lpf+hpf = %v, want %v", i, out.LPF+out.HPF, v)
		}

		if math.Abs(out.APF-(out.LPF-out.HPF)) > 1e-12 {
			t.Fatalf("sample %d: apf mismatch", i)
		}
	}
}

func TestOnePoleResponse(t *testing.T) {
	f, _ := NewOnePole(fs)
	f.SetCutoff(1000)
	lpf := func(x float64) float64 { return f.Process(x).LPF }

	if dc := testutil.SettledDC(lpf, 4800); math.Abs(dc-1) > 1e-9 {
		t.Fatalf("dc gain = %v, want 1", dc)
	}

	f.Reset()
	if p := testutil.SteadyStatePeak(lpf, 1000, fs, 9600); math.Abs(p-math.Sqrt2/2) > 0.01 {
		t.Fatalf("cutoff gain = %v, want 0.707", p)
	}
}

func TestOnePoleAnalogMatchNearNyquist(t *testing.T) {
	f, _ := NewOnePole(fs)
	f.SetCutoff(10000)
	digital := testutil.SteadyStatePeak(func(x float64) float64 { return f.Process(x).LPF }, 20000, fs, 9600)
	f.Reset()
	analog := testutil.SteadyStatePeak(func(x float64) float64 { return f.Process(x).AnalogLPF }, 20000, fs, 9600)

	// An analog one-pole at twice its cutoff passes 1/sqrt(5).
	want := 1 / math.Sqrt(5)
	if math.Abs(analog-want) > math.Abs(digital-want) {
		t.Fatalf("analog-matched %v is not closer to %v than digital %v", analog, want, digital)
	}
}
