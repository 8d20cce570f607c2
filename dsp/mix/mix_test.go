package mix

import (
	"math"
	"testing"
)

func TestPanConstantPower(t *testing.T) {
	for _, p := range []float64{-1, -0.5, 0, 0.3, 1} {
		l, r := Pan(p)
		if math.Abs(l*l+r*r-1) > 1e-12 {
			t.Fatalf("Pan(%v) power = %v, want 1", p, l*l+r*r)
		}
	}

	l, r := Pan(0)
	if math.Abs(l-math.Sqrt2/2) > 1e-12 || math.Abs(r-math.Sqrt2/2) > 1e-12 {
		t.Fatalf("centre gains = %v, %v", l, r)
	}

	l, r = Pan(-2)
	if math.Abs(l-1) > 1e-12 || math.Abs(r) > 1e-12 {
		t.Fatalf("clamped hard left = %v, %v", l, r)
	}
}

func TestPanBlock(t *testing.T) {
	mono := []float64{1, -1, 0.5}
	left := make([]float64, 3)
	right := make([]float64, 3)
	PanBlock(left, right, mono, 1)
	for i := range mono {
		if math.Abs(left[i]) > 1e-12 || math.Abs(right[i]-mono[i]) > 1e-12 {
			t.Fatalf("sample %d: l=%v r=%v", i, left[i], right[i])
		}
	}
}

func TestCrossfade(t *testing.T) {
	tests := []struct {
		pos  float64
		want float64
	}{
		{0, 1},
		{1, 2},
		{0.5, (1 + 2) * math.Sqrt2 / 2},
	}

	for _, tt := range tests {
		if got := Crossfade(1, 2, tt.pos); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("Crossfade(pos=%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestBalance(t *testing.T) {
	l, r := Balance(0.25)
	if l != 0.75 || r != 1 {
		t.Fatalf("Balance(0.25) = %v, %v", l, r)
	}

	l, r = Balance(-1)
	if l != 1 || r != 0 {
		t.Fatalf("Balance(-1) = %v, %v", l, r)
	}
}
