package main

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
	"time"

	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/patch"
)

func TestSourceRendersSchedule(t *testing.T) {
	store := midi.NewStore()
	p := patch.Default()
	v, err := p.NewVoice(store)
	if err != nil {
		t.Fatalf("NewVoice: %v", err)
	}

	events := schedule([]uint8{60, 67}, 100, 50*time.Millisecond, 10*time.Millisecond, 44100)
	if len(events) != 4 || events[1].at != 2205 || events[2].at != 2646 {
		t.Fatalf("unexpected schedule %+v", events)
	}

	end := events[3].at + 441
	src := newSource(v, store, events, end, 1)

	data, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	if len(data) != end*bytesPerFrame {
		t.Fatalf("read %d bytes, want %d", len(data), end*bytesPerFrame)
	}

	if got := store.Global(midi.CurrentNote); got != 67 {
		t.Fatalf("current note %d, want 67", got)
	}

	var peak float64
	for i := 0; i < len(data); i += 4 {
		x := float64(math.Float32frombits(binary.LittleEndian.Uint32(data[i:])))
		if math.IsNaN(x) || math.IsInf(x, 0) {
			t.Fatalf("non-finite sample at byte %d", i)
		}

		peak = max(peak, math.Abs(x))
	}

	if peak == 0 {
		t.Fatal("rendered silence")
	}
}

func TestParseNotes(t *testing.T) {
	keys, err := parseNotes(" 60, 64,,67 ")
	if err != nil || len(keys) != 3 || keys[2] != 67 {
		t.Fatalf("parseNotes: %v %v", keys, err)
	}

	for _, bad := range []string{"", "x", "128", "-1"} {
		if _, err := parseNotes(bad); err == nil {
			t.Fatalf("parseNotes(%q) accepted", bad)
		}
	}
}
