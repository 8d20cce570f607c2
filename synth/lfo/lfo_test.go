package lfo

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/lut"
	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/module"
)

func newLFO(t *testing.T, p Parameters) *Module {
	t.Helper()
	m, err := New(&p, nil, 7)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m.Reset(44100)
	m.NoteOn(midi.NewNoteEvent(60, 100))

	return m
}

func output(m *Module) float64 { return m.ModOut()[module.OutNormal] }

func TestWaveshape(t *testing.T) {
	tests := []struct {
		w     Waveform
		phase float64
		want  float64
	}{
		{Triangle, 0, -1},
		{Triangle, 0.25, 0},
		{Triangle, 0.5, 1},
		{Sine, 0.25, 1},
		{RampUp, 0.75, 0.5},
		{RampDown, 0.75, -0.5},
		{ExpRampUp, 0, -1},
		{ExpRampDown, 0, 1},
		{ExpTriangle, 0.5, 1},
		{Square, 0.1, 1},
		{Square, 0.6, -1},
		{RandomSampleHold, 0.3, 0.42},
		{Pluck, 0.5, 1},
		{Pluck, 0, 0},
	}

	for _, tt := range tests {
		got := Waveshape(tt.w, tt.phase, 0.42, lut.ModeDirect)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("%v(%g)=%g want %g", tt.w, tt.phase, got, tt.want)
		}
	}
}

func TestExpRampIsConcave(t *testing.T) {
	linear := Waveshape(RampUp, 0.5, 0, lut.ModeDirect)
	exp := Waveshape(ExpRampUp, 0.5, 0, lut.ModeDirect)
	if exp >= linear {
		t.Fatalf("exp ramp %g not below linear %g at mid cycle", exp, linear)
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		x      float64
		levels int
		want   float64
	}{
		{0.3, 0, 0.3},
		{0.3, 1, 0.3},
		{0.3, 3, 0},
		{0.6, 3, 1},
		{-0.8, 3, -1},
		{0.1, 5, 0},
		{0.3, 5, 0.5},
	}

	for _, tt := range tests {
		if got := quantize(tt.x, tt.levels); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("quantize(%g, %d)=%g want %g", tt.x, tt.levels, got, tt.want)
		}
	}
}

func TestShapeKeepsEndpoints(t *testing.T) {
	for _, shape := range []float64{-1, -0.5, 0, 0.5, 1} {
		for _, x := range []float64{-1, 1} {
			if got := applyShape(x, shape, lut.ModeDirect); math.Abs(got-x) > 1e-12 {
				t.Fatalf("shape %g moved endpoint %g to %g", shape, x, got)
			}
		}
	}

	if got := applyShape(0, 1, lut.ModeDirect); got <= 0 {
		t.Fatalf("convex shape of 0 = %g, want > 0", got)
	}

	if got := applyShape(0, -1, lut.ModeDirect); got >= 0 {
		t.Fatalf("concave shape of 0 = %g, want < 0", got)
	}
}

func TestFrequency(t *testing.T) {
	p := DefaultParameters()
	p.FrequencyHz = 2
	if got := Frequency(&p, 0, 120); got != 2 {
		t.Fatalf("plain=%g", got)
	}

	if got := Frequency(&p, 1, 120); math.Abs(got-4) > 1e-12 {
		t.Fatalf("rate mod +1 octave=%g", got)
	}

	if got := Frequency(&p, -1, 120); math.Abs(got-1) > 1e-12 {
		t.Fatalf("rate mod -1 octave=%g", got)
	}

	p.FrequencyHz = 50
	if got := Frequency(&p, 0, 120); got != MaxFrequency {
		t.Fatalf("clamp=%g", got)
	}

	p.TempoSync = true
	p.Beats = 0.5
	if got := Frequency(&p, 0, 120); got != 4 {
		t.Fatalf("tempo sync=%g want 4", got)
	}
}

func TestClockAdvancesPerBlock(t *testing.T) {
	p := DefaultParameters()
	p.FrequencyHz = 10
	m := newLFO(t, p)
	for range 10 {
		m.Render(64)
	}

	c := m.SelectedCore().(*ClassicCore)
	want := math.Mod(640*10/44100.0, 1)
	if math.Abs(c.Phase()-want) > 1e-12 {
		t.Fatalf("phase=%g want %g", c.Phase(), want)
	}
}

func TestSyncRestartsOnNoteOn(t *testing.T) {
	p := DefaultParameters()
	p.Waveform = Triangle
	m := newLFO(t, p)
	for range 100 {
		m.Render(64)
	}

	m.NoteOn(midi.NewNoteEvent(62, 100))
	m.Render(64)
	if got := output(m); got != -1 {
		t.Fatalf("first value after sync=%g want -1", got)
	}

	p.Mode = FreeRun
	m = newLFO(t, p)
	for range 100 {
		m.Render(64)
	}

	before := m.SelectedCore().(*ClassicCore).Phase()
	m.NoteOn(midi.NewNoteEvent(62, 100))
	if after := m.SelectedCore().(*ClassicCore).Phase(); after != before {
		t.Fatalf("free-run phase reset %g -> %g", before, after)
	}
}

func TestDelayHoldsZeroWithoutResettingClock(t *testing.T) {
	p := DefaultParameters()
	p.DelayMs = 10
	m := newLFO(t, p)
	for i := range 7 {
		m.Render(64)
		if got := output(m); got != 0 {
			t.Fatalf("block %d: output %g during delay", i, got)
		}
	}

	m.Render(64)
	want := math.Sin(2 * math.Pi * 448 / 44100)
	if got := output(m); math.Abs(got-want) > 1e-12 {
		t.Fatalf("first output after delay=%g want %g", got, want)
	}
}

func TestFadeIn(t *testing.T) {
	p := DefaultParameters()
	p.Waveform = Square
	p.FadeInMs = 100
	m := newLFO(t, p)

	m.Render(64)
	if got := output(m); got != 0 {
		t.Fatalf("fade start=%g", got)
	}

	m.Render(64)
	if got, want := output(m), 64.0/4410; math.Abs(got-want) > 1e-12 {
		t.Fatalf("fade step=%g want %g", got, want)
	}

	prev := output(m)
	for range 60 {
		m.Render(64)
		if output(m) < prev {
			t.Fatal("fade-in decreased")
		}

		prev = output(m)
	}

	for range 20 {
		m.Render(64)
	}

	if got := output(m); got != 1 {
		t.Fatalf("after fade=%g want 1", got)
	}
}

func TestOneShotCompletes(t *testing.T) {
	p := DefaultParameters()
	p.Waveform = Pluck
	p.Mode = OneShot
	p.FrequencyHz = 10
	m := newLFO(t, p)

	blocks := 0
	for !m.Complete() && blocks < 200 {
		m.Render(64)
		blocks++
	}

	if blocks != 69 {
		t.Fatalf("one-shot completed after %d blocks, want 69", blocks)
	}

	if m.ModOut()[module.OutOneShotComplete] != 1 {
		t.Fatal("complete flag not published")
	}

	held := output(m)
	for range 10 {
		m.Render(64)
	}

	if output(m) != held {
		t.Fatal("one-shot output moved after completion")
	}

	if held < 0 || held > 0.01 {
		t.Fatalf("pluck end value=%g", held)
	}

	m.NoteOn(midi.NewNoteEvent(60, 100))
	if m.Complete() {
		t.Fatal("note-on did not rearm one-shot")
	}
}

func TestSampleAndHold(t *testing.T) {
	p := DefaultParameters()
	p.Waveform = RandomSampleHold
	p.FrequencyHz = 20
	m := newLFO(t, p)

	m.Render(64)
	first := output(m)
	if first < -1 || first >= 1 {
		t.Fatalf("random value %g out of range", first)
	}

	for i := 1; i < 34; i++ {
		m.Render(64)
		if output(m) != first {
			t.Fatalf("block %d: value changed within a cycle", i)
		}
	}

	m.Render(64)
	m.Render(64)
	if output(m) == first {
		t.Fatal("value did not change after the cycle wrapped")
	}
}

func TestUnipolarOutputs(t *testing.T) {
	p := DefaultParameters()
	p.Waveform = Triangle
	p.Amplitude = 0.5
	m := newLFO(t, p)
	m.Render(64)
	out := m.ModOut()
	if out[module.OutNormal] != -0.5 || out[module.OutInverted] != 0.5 {
		t.Fatalf("normal=%g inverted=%g", out[module.OutNormal], out[module.OutInverted])
	}

	if out[module.OutUnipolarFromMin] != 0 || out[module.OutUnipolarFromMax] != 1 {
		t.Fatalf("unipolar min=%g max=%g", out[module.OutUnipolarFromMin], out[module.OutUnipolarFromMax])
	}
}

func TestTextNames(t *testing.T) {
	for w := Triangle; w <= Pluck; w++ {
		text, err := w.MarshalText()
		if err != nil {
			t.Fatal(err)
		}

		var back Waveform
		if err := back.UnmarshalText(text); err != nil || back != w {
			t.Fatalf("%v round trip -> %v", w, back)
		}
	}

	var m Mode
	if err := m.UnmarshalText([]byte("one_shot")); err != nil || m != OneShot {
		t.Fatalf("mode=%v err=%v", m, err)
	}

	if err := m.UnmarshalText([]byte("nope")); err == nil {
		t.Fatal("unknown mode accepted")
	}
}
