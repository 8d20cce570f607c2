// Command synthrender renders one note of a voice patch offline and prints
// per-block statistics and the detected pitch.
//
// Usage:
//
//	synthrender [flags]
//
// Examples:
//
//	synthrender -note 69
//	synthrender -patch bass.yaml -note 36 -hold 0.5 -release 1
//	synthrender -analog -dual-mono -blocks 32
//	synthrender -window blackman_harris
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/window"
	"github.com/cwbudde/algo-synth/internal/analysis"
	"github.com/cwbudde/algo-synth/synth/midi"
	"github.com/cwbudde/algo-synth/synth/module"
	"github.com/cwbudde/algo-synth/synth/patch"
	"github.com/cwbudde/algo-synth/synth/voice"
)

func main() {
	var (
		patchPath  = flag.String("patch", "", "path to a YAML voice patch (default patch if empty)")
		note       = flag.Int("note", 69, "MIDI note number")
		velocity   = flag.Int("velocity", 100, "MIDI velocity")
		hold       = flag.Float64("hold", 1, "seconds between note-on and note-off")
		release    = flag.Float64("release", 0.5, "seconds rendered after note-off")
		sampleRate = flag.Float64("sample-rate", 44100, "sample rate in Hz")
		blockSize  = flag.Int("block", 64, "block size in samples")
		blocks     = flag.Int("blocks", 8, "number of leading blocks to print")
		analog     = flag.Bool("analog", false, "use analog-matched virtual analog filters")
		dualMono   = flag.Bool("dual-mono", false, "filter both channels independently")
		halfRate   = flag.Bool("half-rate", false, "build half-rate wavetables")
		spectral   = window.TypeHann
	)
	flag.TextVar(&spectral, "window", window.TypeHann,
		"spectral peak window (rectangular, hann, hamming, blackman, blackman_harris)")
	flag.Parse()

	if *note < 0 || *note > 127 || *velocity < 0 || *velocity > 127 {
		log.Fatalf("note and velocity must be in [0, 127]")
	}

	p, err := loadPatch(*patchPath)
	if err != nil {
		log.Fatal(err)
	}

	store := midi.NewStore()
	var flags midi.AuxFlags
	if *analog {
		flags |= midi.FlagAnalogFilters
	}

	if *dualMono {
		flags |= midi.FlagDualMonoFilters
	}

	if *halfRate {
		flags |= midi.FlagHalfRateTables
	}

	store.SetFlags(flags)

	v, err := p.NewVoice(store, voice.WithProcessor(
		core.WithSampleRate(*sampleRate),
		core.WithBlockSize(*blockSize),
	))
	if err != nil {
		log.Fatal(err)
	}

	ev := midi.NewNoteEvent(uint8(*note), uint8(*velocity))
	v.NoteOn(ev)

	heldSamples := int(*hold * v.SampleRate())
	releaseSamples := int(*release * v.SampleRate())
	held := renderSamples(v, heldSamples, *blocks)
	v.NoteOff(ev)
	tail := renderSamples(v, releaseSamples, 0)

	printSummary(v, held, tail, *note, spectral)
}

func loadPatch(path string) (*patch.Patch, error) {
	if path == "" {
		p := patch.Default()
		return &p, nil
	}

	return patch.LoadFile(path)
}

var tw = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

// renderSamples renders total samples and returns the left channel. The
// first printBlocks blocks are listed.
func renderSamples(v *voice.Voice, total, printBlocks int) []float64 {
	out := make([]float64, 0, total)
	if printBlocks > 0 {
		fmt.Fprintf(tw, "Block\tPeak L\tPeak R\tRMS L\tAmp EG\tFilter EG\n")
		fmt.Fprintf(tw, "-----\t------\t------\t-----\t------\t---------\n")
	}

	for blk := 0; len(out) < total; blk++ {
		n := min(total-len(out), v.BlockSize())
		v.Render(n)
		left := v.Output().Output(0)
		out = append(out, left...)
		if blk < printBlocks {
			fmt.Fprintf(tw, "%d\t%.5f\t%.5f\t%.5f\t%.5f\t%.5f\n",
				blk,
				analysis.Peak(left),
				analysis.Peak(v.Output().Output(1)),
				analysis.RMS(left),
				v.AmpEG().ModOut()[module.OutNormal],
				v.FilterEG().ModOut()[module.OutNormal],
			)
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	return out
}

func printSummary(v *voice.Voice, held, tail []float64, note int, w window.Type) {
	want := midi.NoteToFrequency(float64(note))
	fmt.Println()
	fmt.Fprintf(tw, "Samples\t%d held + %d release\n", len(held), len(tail))
	fmt.Fprintf(tw, "Peak\t%.5f\n", analysis.Peak(held))
	fmt.Fprintf(tw, "RMS\t%.5f\n", analysis.RMS(held))
	fmt.Fprintf(tw, "Expected pitch\t%.2f Hz\n", want)
	if hz, err := analysis.PeakFrequencyWindowed(held, v.SampleRate(), w); err == nil {
		fmt.Fprintf(tw, "Spectral peak (%s)\t%.2f Hz\n", w, hz)
	} else {
		fmt.Fprintf(tw, "Spectral peak\tn/a (%v)\n", err)
	}

	fmt.Fprintf(tw, "Zero-crossing estimate\t%.2f Hz\n", analysis.EstimateFrequency(held, v.SampleRate()))
	fmt.Fprintf(tw, "Tail peak\t%.5f\n", analysis.Peak(tail))
	fmt.Fprintf(tw, "Active after release\t%v\n", v.IsActive())
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
