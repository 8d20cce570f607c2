package biquad

import (
	"errors"
	"math"
	"testing"
)

const fs = 48000.0

func TestOnePoleComplementary(t *testing.T) {
	for _, fc := range []float64{50, 440, 2500, 12000} {
		lp := NewSection(LowPass1(fc, fs))
		hp := NewSection(HighPass1(fc, fs))
		for i := range 512 {
			x := math.Sin(float64(i)*0.37) + 0.3*math.Cos(float64(i)*2.1)
			if i == 0 {
				x = 1
			}

			l := lp.ProcessSample(x)
			h := hp.ProcessSample(x)
			if !almostEqual(h, x-l, 1e-12) {
				t.Fatalf("fc=%v sample %d: hpf=%v, input-lpf=%v", fc, i, h, x-l)
			}
		}
	}
}

func TestDesignResponses(t *testing.T) {
	const fc = 1000.0
	tests := []struct {
		name    string
		c       Coefficients
		freq    float64
		wantDB  float64
		tolDB   float64
		compare string
	}{
		{"lpf1 dc", LowPass1(fc, fs), 1, 0, 0.01, "eq"},
		{"lpf1 cutoff", LowPass1(fc, fs), fc, -3.01, 0.1, "eq"},
		{"hpf1 nyquist", HighPass1(fc, fs), fs/2 - 1, 0, 0.01, "eq"},
		{"hpf1 cutoff", HighPass1(fc, fs), fc, -3.01, 0.1, "eq"},
		{"lpf2 dc", LowPass2(fc, 0.707, fs), 1, 0, 0.01, "eq"},
		{"lpf2 stop", LowPass2(fc, 0.707, fs), 10 * fc, -39, 0, "lt"},
		{"lpf2 resonance", LowPass2(fc, 10, fs), fc, 20, 0.05, "eq"},
		{"hpf2 dc", HighPass2(fc, 0.707, fs), 10, -60, 0, "lt"},
		{"bpf2 centre", BandPass2(fc, 2, fs), fc, 0, 0.01, "eq"},
		{"bpf2 skirt", BandPass2(fc, 2, fs), 100, -15, 0, "lt"},
		{"bsf2 notch", BandStop2(fc, 2, fs), fc, -60, 0, "lt"},
		{"bsf2 dc", BandStop2(fc, 2, fs), 1, 0, 0.01, "eq"},
	}

	for _, tt := range tests {
		got := tt.c.MagnitudeDB(tt.freq, fs)
		switch tt.compare {
		case "eq":
			if math.Abs(got-tt.wantDB) > tt.tolDB {
				t.Errorf("%s: |H(%v)| = %.3f dB, want %.3f±%.2f", tt.name, tt.freq, got, tt.wantDB, tt.tolDB)
			}
		case "lt":
			if got > tt.wantDB {
				t.Errorf("%s: |H(%v)| = %.3f dB, want below %.1f", tt.name, tt.freq, got, tt.wantDB)
			}
		}
	}
}

func TestDesignDispatch(t *testing.T) {
	for ty := LPF1; ty <= BSF2; ty++ {
		c, err := Design(ty, 1000, 1, fs)
		if err != nil {
			t.Fatalf("Design(%v) error = %v", ty, err)
		}

		if c.C0 != 1 || c.D0 != 0 {
			t.Fatalf("Design(%v) wet/dry = %v/%v", ty, c.C0, c.D0)
		}
	}

	if _, err := Design(LPF2, fs, 1, fs); !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("fc above Nyquist: err = %v", err)
	}

	if _, err := Design(LPF2, 1000, 0, fs); !errors.Is(err, ErrInvalidQ) {
		t.Fatalf("Q=0: err = %v", err)
	}

	if _, err := Design(LPF1, 1000, 0, fs); err != nil {
		t.Fatalf("first order ignores Q: err = %v", err)
	}

	if _, err := Design(Type(99), 1000, 1, fs); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestTypeText(t *testing.T) {
	for ty := LPF1; ty <= BSF2; ty++ {
		b, err := ty.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) error = %v", ty, err)
		}

		var back Type
		if err := back.UnmarshalText(b); err != nil || back != ty {
			t.Fatalf("round trip %v -> %q -> %v", ty, b, back)
		}
	}

	var ty Type
	if err := ty.UnmarshalText([]byte("nope")); err == nil {
		t.Fatal("expected error")
	}

	if got := Type(42).String(); got != "Type(42)" {
		t.Fatalf("String() = %q", got)
	}
}
