// Command synthplay plays a sequence of notes on one voice through the
// default audio device.
//
// Usage:
//
//	synthplay [flags]
//
// Examples:
//
//	synthplay
//	synthplay -patch pad.yaml -notes 48,55,60,64 -length 800ms
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ebitengine/oto/v3"
	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/patch"
	"github.com/cwbudde/algo-synth/synth/voice"
)

func main() {
	var (
		patchPath  = flag.String("patch", "", "path to a YAML voice patch (default patch if empty)")
		notes      = flag.String("notes", "60,64,67,72", "comma separated MIDI notes")
		velocity   = flag.Int("velocity", 100, "MIDI velocity")
		length     = flag.Duration("length", 400*time.Millisecond, "note length")
		gap        = flag.Duration("gap", 100*time.Millisecond, "silence between notes")
		tail       = flag.Duration("tail", time.Second, "time rendered after the last note-off")
		sampleRate = flag.Int("sample-rate", 48000, "output sample rate")
		blockSize  = flag.Int("block", 64, "block size in samples")
		volume     = flag.Float64("volume", 0.5, "output gain")
	)
	flag.Parse()

	keys, err := parseNotes(*notes)
	if err != nil {
		log.Fatal(err)
	}

	if *velocity < 1 || *velocity > 127 {
		log.Fatalf("invalid -velocity %d (expected 1..127)", *velocity)
	}

	p := patch.Default()
	if *patchPath != "" {
		loaded, err := patch.LoadFile(*patchPath)
		if err != nil {
			log.Fatal(err)
		}

		p = *loaded
	}

	store := midi.NewStore()
	v, err := p.NewVoice(store, voice.WithProcessor(
		core.WithSampleRate(float64(*sampleRate)),
		core.WithBlockSize(*blockSize),
	))
	if err != nil {
		log.Fatal(err)
	}

	events := schedule(keys, uint8(*velocity), *length, *gap, *sampleRate)
	end := events[len(events)-1].at + int(tail.Seconds()*float64(*sampleRate))
	src := newSource(v, store, events, end, float32(*volume))

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   *sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		log.Fatal(err)
	}

	<-ready

	player := ctx.NewPlayer(src)
	player.Play()
	for player.IsPlaying() {
		time.Sleep(50 * time.Millisecond)
	}

	if err := player.Close(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("played %d notes, %d samples\n", len(keys), end)
}

func parseNotes(s string) ([]uint8, error) {
	var keys []uint8
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}

		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n > 127 {
			return nil, fmt.Errorf("invalid note %q (expected 0..127)", f)
		}

		keys = append(keys, uint8(n))
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("no notes given")
	}

	return keys, nil
}

// event is a MIDI message due at a sample position.
type event struct {
	at  int
	msg gomidi.Message
}

func schedule(keys []uint8, vel uint8, length, gap time.Duration, sampleRate int) []event {
	toSamples := func(d time.Duration) int { return int(math.Round(d.Seconds() * float64(sampleRate))) }
	events := make([]event, 0, 2*len(keys))
	at := 0
	for _, k := range keys {
		events = append(events, event{at: at, msg: gomidi.NoteOn(0, k, vel)})
		at += toSamples(length)
		events = append(events, event{at: at, msg: gomidi.NoteOff(0, k)})
		at += toSamples(gap)
	}

	return events
}
