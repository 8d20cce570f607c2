package signal

import (
	"math"
	"testing"
)

func TestNoiseReseedRepeats(t *testing.T) {
	n := NewNoise(7)
	first := [4]float64{n.White(), n.White(), n.White(), n.White()}

	n.Reseed(7)
	for i, want := range first {
		if got := n.White(); got != want {
			t.Fatalf("sample %d = %v, want %v", i, got, want)
		}
	}

	if n.Seed() != 7 {
		t.Fatalf("Seed() = %d, want 7", n.Seed())
	}
}

func TestNoiseRanges(t *testing.T) {
	n := NewNoise(3)
	sum, sumSq := 0.0, 0.0
	const count = 20000
	for range count {
		w := n.White()
		if w < -1 || w >= 1 {
			t.Fatalf("White() = %v out of range", w)
		}

		u := n.Unipolar()
		if u < 0 || u >= 1 {
			t.Fatalf("Unipolar() = %v out of range", u)
		}

		g := n.Gaussian()
		sum += g
		sumSq += g * g
	}

	mean := sum / count
	variance := sumSq/count - mean*mean
	if math.Abs(mean) > 0.05 {
		t.Fatalf("gaussian mean = %v, want ~0", mean)
	}

	if math.Abs(variance-1) > 0.05 {
		t.Fatalf("gaussian variance = %v, want ~1", variance)
	}
}

func TestNoiseSeedsDiffer(t *testing.T) {
	a, b := NewNoise(1), NewNoise(2)
	same := 0
	for range 64 {
		if a.White() == b.White() {
			same++
		}
	}

	if same == 64 {
		t.Fatal("different seeds produced the same sequence")
	}
}

func TestGaussianSpareClearedOnReseed(t *testing.T) {
	n := NewNoise(5)
	first := n.Gaussian()
	n.Gaussian()
	n.Gaussian()
	n.Reseed(5)
	if got := n.Gaussian(); got != first {
		t.Fatalf("Gaussian after reseed = %v, want %v", got, first)
	}
}
