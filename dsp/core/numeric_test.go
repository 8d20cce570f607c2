package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	for _, x := range []float64{0, -1, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		if !IsFinite(x) {
			t.Fatalf("IsFinite(%v) = false", x)
		}
	}

	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(x) {
			t.Fatalf("IsFinite(%v) = true", x)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}

	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}

	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}

	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestPolarityConversions(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 1} {
		if got := BipolarToUnipolar(UnipolarToBipolar(v)); !NearlyEqual(got, v, 1e-15) {
			t.Fatalf("round trip %v = %v", v, got)
		}
	}

	if got := UnipolarToBipolar(0); got != -1 {
		t.Fatalf("UnipolarToBipolar(0) = %v, want -1", got)
	}
}

func TestModulationMapping(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{name: "bipolar center", got: BipolarModulation(0, 20, 40), want: 30},
		{name: "bipolar max", got: BipolarModulation(1, 20, 40), want: 40},
		{name: "bipolar clamped", got: BipolarModulation(-3, 20, 40), want: 20},
		{name: "unipolar from min", got: UnipolarModulationFromMin(0.25, 0, 8), want: 2},
		{name: "unipolar from max", got: UnipolarModulationFromMax(0.25, 0, 8), want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !NearlyEqual(tt.got, tt.want, 1e-12) {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestMIDIScaling(t *testing.T) {
	if got := MIDIToUnipolar(127); got != 1 {
		t.Fatalf("MIDIToUnipolar(127) = %v, want 1", got)
	}

	if got := MIDIToUnipolar(200); got != 1 {
		t.Fatalf("MIDIToUnipolar(200) = %v, want clamped 1", got)
	}

	if got := MIDIToBipolar(64); got != 0 {
		t.Fatalf("MIDIToBipolar(64) = %v, want 0", got)
	}

	if got := MIDIToBipolar(0); got != -1 {
		t.Fatalf("MIDIToBipolar(0) = %v, want -1", got)
	}

	if got := MIDIToBipolar(127); got != 1 {
		t.Fatalf("MIDIToBipolar(127) = %v, want 1", got)
	}

	if got := MIDIToAttenuation(127); got != 1 {
		t.Fatalf("MIDIToAttenuation(127) = %v, want 1", got)
	}

	if got := MIDIToAttenuation(0); got != 0 {
		t.Fatalf("MIDIToAttenuation(0) = %v, want 0", got)
	}

	if got := MIDIToAttenuation(64); math.Abs(got-0.254) > 1e-3 {
		t.Fatalf("MIDIToAttenuation(64) = %v, want ~0.254", got)
	}
}
