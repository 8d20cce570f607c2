package moog

import (
	"errors"
	"math"
	"testing"
)

const sampleRate = 48000.0

func newFilter(t *testing.T, opts ...Option) *Filter {
	t.Helper()
	f, err := New(sampleRate, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return f
}

// steadyToneRMS runs a sine through f and returns the output RMS after the
// first half.
func steadyToneRMS(f *Filter, freq, amp float64, n int) float64 {
	sum := 0.0
	for i := range n {
		y := f.ProcessSample(amp * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
		if i >= n/2 {
			sum += y * y
		}
	}

	return math.Sqrt(sum / float64(n-n/2))
}

func impulseTailEnergy(f *Filter, n int) float64 {
	f.ProcessSample(1)
	energy := 0.0
	for i := range n {
		y := f.ProcessSample(0)
		if i >= n/2 {
			energy += y * y
		}
	}

	return energy
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		opt  Option
	}{
		{"zero rate", 0, nil},
		{"nan rate", math.NaN(), nil},
		{"oversampling", sampleRate, WithOversampling(3)},
		{"variant", sampleRate, WithVariant(Variant(9))},
		{"drive", sampleRate, WithDrive(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.rate, tt.opt); !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("err = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestProcessBlockToMatchesSample(t *testing.T) {
	in := make([]float64, 384)
	for i := range in {
		in[i] = 0.65*math.Sin(2*math.Pi*float64(i)/47) + 0.12*math.Sin(2*math.Pi*float64(i)/11)
	}

	for v := VariantClassic; v <= VariantHuovilainen; v++ {
		for _, os := range []int{1, 4} {
			f1 := newFilter(t, WithVariant(v), WithDrive(2.5), WithOversampling(os))
			f2 := newFilter(t, WithVariant(v), WithDrive(2.5), WithOversampling(os))
			f1.SetParams(2400, 1.1)
			f2.SetParams(2400, 1.1)

			want := make([]float64, len(in))
			for i, x := range in {
				want[i] = f1.ProcessSample(x)
			}

			got := append([]float64(nil), in...)
			f2.ProcessBlockTo(got, got)

			for i := range got {
				if d := math.Abs(got[i] - want[i]); d > 1e-12 {
					t.Fatalf("%v x%d sample %d: got=%g want=%g", v, os, i, got[i], want[i])
				}
			}
		}
	}
}

func TestLowpassResponse(t *testing.T) {
	for v := VariantClassic; v <= VariantHuovilainen; v++ {
		for _, os := range []int{1, 2} {
			f := newFilter(t, WithVariant(v), WithOversampling(os))
			f.SetParams(1000, 0)
			low := steadyToneRMS(f, 100, 0.1, 9600)
			f.Reset()
			high := steadyToneRMS(f, 10000, 0.1, 9600)
			if low < 0.05 {
				t.Fatalf("%v x%d: passband RMS %g", v, os, low)
			}

			if high > 0.005 {
				t.Fatalf("%v x%d: stopband RMS %g", v, os, high)
			}
		}
	}
}

func TestTwoPoleRollsOffSlower(t *testing.T) {
	four := newFilter(t)
	four.SetParams(1000, 0)
	two := newFilter(t)
	two.SetParams(1000, 0)
	if err := two.SetPoles(2); err != nil {
		t.Fatal(err)
	}

	if err := two.SetPoles(3); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("SetPoles(3) err = %v", err)
	}

	r4 := steadyToneRMS(four, 8000, 0.1, 9600)
	r2 := steadyToneRMS(two, 8000, 0.1, 9600)
	if r2 < 4*r4 {
		t.Fatalf("two-pole %g not well above four-pole %g", r2, r4)
	}
}

func TestHighResonanceSustainsLongerTail(t *testing.T) {
	for v := VariantClassic; v <= VariantHuovilainen; v++ {
		low := newFilter(t, WithVariant(v))
		low.SetParams(1500, 0.1)
		high := newFilter(t, WithVariant(v))
		high.SetParams(1500, 3.8)
		if lo, hi := impulseTailEnergy(low, 4096), impulseTailEnergy(high, 4096); hi <= lo {
			t.Fatalf("%v: tail energy %g with resonance, %g without", v, hi, lo)
		}
	}
}

func TestSetParamsClamps(t *testing.T) {
	f := newFilter(t)
	f.SetParams(1e6, 9)
	if f.CutoffHz() > 0.49*sampleRate || f.Resonance() != maxResonance {
		t.Fatalf("cutoff %g resonance %g", f.CutoffHz(), f.Resonance())
	}

	f.SetParams(-5, -1)
	if f.CutoffHz() != minCutoffHz || f.Resonance() != 0 {
		t.Fatalf("cutoff %g resonance %g", f.CutoffHz(), f.Resonance())
	}
}

func TestRapidAutomationStaysFinite(t *testing.T) {
	f := newFilter(t, WithOversampling(2))
	for i := range 8192 {
		if i%32 == 0 {
			f.SetParams(50+float64(i%4096)*5, float64(i%5))
			f.SetDrive(float64(1 + i%20))
		}

		x := math.Sin(float64(i) * 0.37)
		if y := f.ProcessSample(x); math.IsNaN(y) || math.IsInf(y, 0) || math.Abs(y) > 100 {
			t.Fatalf("sample %d: %v", i, y)
		}
	}

	if y := f.ProcessSample(math.Inf(1)); math.IsNaN(y) || math.IsInf(y, 0) {
		t.Fatalf("infinite input gave %v", y)
	}
}

func TestSetters(t *testing.T) {
	f := newFilter(t)
	if f.Variant() != VariantHuovilainen || f.Oversampling() != 1 {
		t.Fatalf("defaults %v x%d", f.Variant(), f.Oversampling())
	}

	if err := f.SetVariant(VariantClassicLightweight); err != nil || f.Variant() != VariantClassicLightweight {
		t.Fatalf("SetVariant: %v", err)
	}

	if err := f.SetOversampling(8); err != nil || f.Oversampling() != 8 {
		t.Fatalf("SetOversampling: %v", err)
	}

	if err := f.SetVariant(-1); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("SetVariant(-1) err = %v", err)
	}

	if err := f.SetOversampling(5); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("SetOversampling(5) err = %v", err)
	}

	if err := f.SetSampleRate(0); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("SetSampleRate(0) err = %v", err)
	}
}

func TestVariantText(t *testing.T) {
	for v := VariantClassic; v <= VariantHuovilainen; v++ {
		text, err := v.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", v, err)
		}

		var back Variant
		if err := back.UnmarshalText(text); err != nil || back != v {
			t.Fatalf("round trip %q: %v %v", text, back, err)
		}
	}

	var v Variant
	if err := v.UnmarshalText([]byte("zdf")); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("unknown name err = %v", err)
	}
}

func TestFastTanh(t *testing.T) {
	for x := -4.0; x <= 4; x += 0.25 {
		if d := math.Abs(fastTanh(x) - math.Tanh(x)); d > 0.03 {
			t.Fatalf("fastTanh(%g) off by %g", x, d)
		}
	}
}
