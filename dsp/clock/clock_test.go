package clock

import (
	"math"
	"testing"
)

func TestWrapRange(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{1.75, 0.75},
		{-0.25, 0.75},
		{-1, 0},
		{-3.5, 0.5},
		{12.125, 0.125},
		{-1e6 - 0.5, 0.5},
		{1e6 + 0.25, 0.25},
	}

	for _, tt := range tests {
		got := Wrap(tt.in)
		if got < 0 || got >= 1 {
			t.Fatalf("Wrap(%v) = %v outside [0,1)", tt.in, got)
		}

		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrapTinyNegative(t *testing.T) {
	got := Wrap(-1e-18)
	if got < 0 || got >= 1 {
		t.Fatalf("Wrap(-1e-18) = %v outside [0,1)", got)
	}
}

func TestWrapMatchesModuloForManyIncrements(t *testing.T) {
	starts := []float64{0, 0.1, 0.5, 0.999}
	incs := []float64{0.01, 0.3, 2.7, -0.4, -5.25, 37.5, -123.125}
	for _, s := range starts {
		for _, inc := range incs {
			var c SynthClock
			c.Reset(s)
			c.inc = inc
			c.Advance()
			c.Wrap()

			want := math.Mod(s+inc, 1)
			if want < 0 {
				want++
			}

			got := c.Counter()
			if got < 0 || got >= 1 {
				t.Fatalf("start=%v inc=%v: counter %v outside [0,1)", s, inc, got)
			}

			d := math.Abs(got - want)
			if d > 1e-9 && math.Abs(d-1) > 1e-9 {
				t.Fatalf("start=%v inc=%v: counter %v, want %v", s, inc, got, want)
			}
		}
	}
}

func TestAdvanceWrapReportsCycle(t *testing.T) {
	var c SynthClock
	c.SetFrequency(1000, 4000)
	wraps := 0
	for range 8 {
		if c.AdvanceWrap() {
			wraps++
		}
	}

	if wraps != 2 {
		t.Fatalf("wraps = %d, want 2", wraps)
	}
}

func TestNegativeFrequencyRunsBackwards(t *testing.T) {
	var c SynthClock
	c.SetFrequency(-1000, 4000)
	c.Reset(0.5)
	c.AdvanceWrap()
	if math.Abs(c.Counter()-0.25) > 1e-12 {
		t.Fatalf("counter = %v, want 0.25", c.Counter())
	}

	if c.AdvanceWrap() {
		t.Fatal("landing on 0 should not report a wrap")
	}

	if !c.AdvanceWrap() {
		t.Fatal("crossing below 0 should report a wrap")
	}

	if math.Abs(c.Counter()-0.75) > 1e-12 {
		t.Fatalf("counter = %v, want 0.75", c.Counter())
	}
}

func TestSaveRestore(t *testing.T) {
	var c SynthClock
	c.SetFrequency(440, 48000)
	c.Reset(0.3)
	c.Save()

	c.AddPhaseOffset(3.7, true)
	c.AddFrequencyOffset(1000)
	c.AdvanceBy(17)
	c.Wrap()

	c.Restore()
	if c.Counter() != 0.3 {
		t.Fatalf("counter = %v, want 0.3", c.Counter())
	}

	if c.Increment() != 440.0/48000 {
		t.Fatalf("inc = %v, want %v", c.Increment(), 440.0/48000)
	}
}

func TestPhaseOffsetRoundTrip(t *testing.T) {
	var c SynthClock
	c.Reset(0.2)
	c.AddPhaseOffset(0.9, true)
	if math.Abs(c.Counter()-0.1) > 1e-12 {
		t.Fatalf("counter = %v, want 0.1", c.Counter())
	}

	c.RemovePhaseOffset()
	if math.Abs(c.Counter()-0.2) > 1e-12 {
		t.Fatalf("counter = %v, want 0.2", c.Counter())
	}
}

func TestFrequencyOffset(t *testing.T) {
	var c SynthClock
	c.SetFrequency(100, 1000)
	c.AddFrequencyOffset(50)
	if math.Abs(c.Increment()-0.15) > 1e-12 {
		t.Fatalf("inc = %v, want 0.15", c.Increment())
	}

	c.RemoveFrequencyOffset()
	if math.Abs(c.Increment()-0.1) > 1e-12 {
		t.Fatalf("inc = %v, want 0.1", c.Increment())
	}
}

func TestWillWrap(t *testing.T) {
	var c SynthClock
	c.SetFrequency(1, 10)
	c.Reset(0.75)
	if c.WillWrap(2) {
		t.Fatal("WillWrap(2) = true, want false")
	}

	if !c.WillWrap(3) {
		t.Fatal("WillWrap(3) = false, want true")
	}
}

func TestZeroSampleRateStopsClock(t *testing.T) {
	var c SynthClock
	c.SetFrequency(440, 0)
	c.Reset(0.4)
	c.AdvanceBy(100)
	if c.Counter() != 0.4 {
		t.Fatalf("counter = %v, want 0.4", c.Counter())
	}
}
