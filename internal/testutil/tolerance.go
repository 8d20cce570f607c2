package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t unless got and want have equal length
// and every pair is within eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	if i, d := worst(got, want); d > eps {
		t.Fatalf("index %d: got %v, want %v (|diff| %v > %v)", i, got[i], want[i], d, eps)
	}
}

// RequireFinite fails t on the first NaN or Inf in data.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest absolute element difference of a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("testutil: length mismatch %d vs %d", len(a), len(b))
	}

	_, d := worst(a, b)

	return d, nil
}

// worst returns the index and size of the largest difference. Equal
// length is assumed.
func worst(a, b []float64) (int, float64) {
	idx, largest := 0, 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > largest || math.IsNaN(d) {
			idx, largest = i, d
			if math.IsNaN(d) {
				break
			}
		}
	}

	return idx, largest
}

// RequireNonDecreasing fails t if an element falls more than eps below
// its predecessor.
func RequireNonDecreasing(t *testing.T, data []float64, eps float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1]-eps {
			t.Fatalf("index %d: %v < previous %v", i, data[i], data[i-1])
		}
	}
}

// RequireNonIncreasing fails t if an element rises more than eps above
// its predecessor.
func RequireNonIncreasing(t *testing.T, data []float64, eps float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if data[i] > data[i-1]+eps {
			t.Fatalf("index %d: %v > previous %v", i, data[i], data[i-1])
		}
	}
}
