package va

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/internal/testutil"
)

func newTestSVF(t *testing.T, fc, q float64) *SVF {
	t.Helper()
	f, err := NewSVF(fs)
	if err != nil {
		t.Fatal(err)
	}

	f.SetParams(fc, q)

	return f
}

func TestSVFResponses(t *testing.T) {
	tests := []struct {
		name string
		q    float64
		freq float64
		pick func(SVFOutput) float64
		want float64
		tol  float64
	}{
		{"lpf dc", 0.707, 20, func(o SVFOutput) float64 { return o.LPF }, 1, 0.01},
		{"lpf cutoff", 0.707, 1000, func(o SVFOutput) float64 { return o.LPF }, 0.707, 0.01},
		{"lpf resonant", 25, 1000, func(o SVFOutput) float64 { return o.LPF }, 25, 0.5},
		{"hpf high", 0.707, 15000, func(o SVFOutput) float64 { return o.HPF }, 1, 0.02},
		{"bpf centre", 0.707, 1000, func(o SVFOutput) float64 { return o.BPF }, 0.707, 0.01},
		{"bsf centre", 0.707, 1000, func(o SVFOutput) float64 { return o.BSF }, 0, 0.01},
	}

	for _, tt := range tests {
		f := newTestSVF(t, 1000, tt.q)
		got := testutil.SteadyStatePeak(func(x float64) float64 { return tt.pick(f.Process(x)) }, tt.freq, fs, 48000)
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("%s: peak = %v, want %v±%v", tt.name, got, tt.want, tt.tol)
		}
	}
}

func TestSVFAnalogMatchLiftsTop(t *testing.T) {
	f := newTestSVF(t, 10000, 0.707)
	digital := testutil.SteadyStatePeak(func(x float64) float64 { return f.Process(x).LPF }, 20000, fs, 9600)
	f.Reset()
	analog := testutil.SteadyStatePeak(func(x float64) float64 { return f.Process(x).AnalogLPF }, 20000, fs, 9600)
	if analog <= digital {
		t.Fatalf("analog-matched %v should exceed digital %v near Nyquist", analog, digital)
	}

	f = newTestSVF(t, 1000, 0.707)
	if dc := testutil.SettledDC(func(x float64) float64 { return f.Process(x).AnalogLPF }, 48000); math.Abs(dc-1) > 1e-3 {
		t.Fatalf("analog-matched dc = %v, want 1", dc)
	}
}

func TestSVFDriveBounded(t *testing.T) {
	f := newTestSVF(t, 1000, 25)
	f.Drive = Drive{Enabled: true, Saturation: 3}
	out := make([]float64, 4800)
	for i := range out {
		out[i] = f.Process(math.Sin(2 * math.Pi * 1000 * float64(i) / fs)).LPF
	}

	testutil.RequireFinite(t, out)
}

func TestSVFZeroQFallsBack(t *testing.T) {
	f := newTestSVF(t, 1000, 0)
	out := make([]float64, 1000)
	for i := range out {
		out[i] = f.Process(1).LPF
	}

	testutil.RequireFinite(t, out)
}
