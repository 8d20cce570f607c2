package window

import (
	"math"
	"testing"
)

func TestGenerate(t *testing.T) {
	for typ := TypeRectangular; typ <= TypeBlackmanHarris4Term; typ++ {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 65)
			if len(w) != 65 {
				t.Fatalf("len=%d, want 65", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) || v < -1e-12 || v > 1+1e-12 {
					t.Fatalf("coefficient[%d] out of range: %v", i, v)
				}

				if d := math.Abs(v - w[len(w)-1-i]); d > 1e-12 {
					t.Fatalf("not symmetric at %d: %v", i, d)
				}
			}

			if math.Abs(w[32]-1) > 1e-12 {
				t.Fatalf("centre %v, want 1", w[32])
			}
		})
	}
}

func TestHannEdges(t *testing.T) {
	w := Generate(TypeHann, 5)
	want := []float64{0, 0.5, 1, 0.5, 0}
	for i := range want {
		if math.Abs(w[i]-want[i]) > 1e-12 {
			t.Fatalf("w[%d]=%v want %v", i, w[i], want[i])
		}
	}

	p := Generate(TypeHann, 4, WithPeriodic())
	if p[0] != 0 || math.Abs(p[2]-1) > 1e-12 {
		t.Fatalf("periodic hann %v", p)
	}

	if Generate(TypeHann, 0) != nil || Generate(TypeHann, -1) != nil {
		t.Fatal("negative length generated coefficients")
	}
}

func TestAtClamps(t *testing.T) {
	if At(TypeHann, -0.5) != At(TypeHann, 0) || At(TypeHann, 2) != At(TypeHann, 1) {
		t.Fatal("At does not clamp")
	}

	if At(TypeRectangular, 0.3) != 1 {
		t.Fatal("rectangular not flat")
	}
}

func TestApply(t *testing.T) {
	buf := []float64{2, 2, 2, 2, 2}
	Apply(TypeHann, buf)
	want := []float64{0, 1, 2, 1, 0}
	for i := range want {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Fatalf("buf[%d]=%v want %v", i, buf[i], want[i])
		}
	}

	Apply(TypeHann, nil)
}

func TestTypeText(t *testing.T) {
	for typ := TypeRectangular; typ <= TypeBlackmanHarris4Term; typ++ {
		text, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", typ, err)
		}

		var back Type
		if err := back.UnmarshalText(text); err != nil || back != typ {
			t.Fatalf("round trip %q: %v %v", text, back, err)
		}
	}

	var typ Type
	if err := typ.UnmarshalText([]byte("kaiser")); err == nil {
		t.Fatal("unknown name accepted")
	}
}
