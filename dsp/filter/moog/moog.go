package moog

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/filter/biquad"
)

const (
	defaultDrive   = 1.0
	thermalVoltage = 5.0

	minCutoffHz  = 1.0
	maxResonance = 4.0
	minDrive     = 0.1
	maxDrive     = 24.0

	stateLimit = 32.0
)

// ErrInvalidParameter reports an out-of-range constructor or setter value.
var ErrInvalidParameter = errors.New("moog: invalid parameter")

// Variant selects the nonlinear ladder processing model.
type Variant int

const (
	// VariantClassic is the four-stage nonlinear ladder with exact tanh.
	VariantClassic Variant = iota
	// VariantClassicLightweight replaces tanh with a rational approximation.
	VariantClassicLightweight
	// VariantHuovilainen adds tuning and resonance compensation and a
	// half-sample feedback estimate.
	VariantHuovilainen
)

var variantNames = [...]string{"classic", "classic_lightweight", "huovilainen"}

func (v Variant) String() string {
	if !validVariant(v) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}

	return variantNames[v]
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if !validVariant(v) {
		return nil, fmt.Errorf("%w: variant %d", ErrInvalidParameter, int(v))
	}

	return []byte(variantNames[v]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	for i, name := range variantNames {
		if name == string(text) {
			*v = Variant(i)
			return nil
		}
	}

	return fmt.Errorf("%w: variant %q", ErrInvalidParameter, text)
}

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	variant      Variant
	drive        float64
	overSampling int
}

// WithVariant selects the ladder variant.
func WithVariant(variant Variant) Option {
	return func(cfg *config) error {
		if !validVariant(variant) {
			return fmt.Errorf("%w: variant %d", ErrInvalidParameter, int(variant))
		}

		cfg.variant = variant

		return nil
	}
}

// WithDrive sets the nonlinear drive in [0.1, 24].
func WithDrive(drive float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(drive) || drive < minDrive || drive > maxDrive {
			return fmt.Errorf("%w: drive %v", ErrInvalidParameter, drive)
		}

		cfg.drive = drive

		return nil
	}
}

// WithOversampling sets the oversampling factor: 1, 2, 4 or 8.
func WithOversampling(factor int) Option {
	return func(cfg *config) error {
		if !validOversampling(factor) {
			return fmt.Errorf("%w: oversampling %d", ErrInvalidParameter, factor)
		}

		cfg.overSampling = factor

		return nil
	}
}

// state is the ladder memory.
type state struct {
	stage      [4]float64
	tanhLast   [3]float64
	prevInput  float64
	prevOutput float64
}

// Filter is a nonlinear four-stage ladder. The output is taken after the
// second or the fourth stage.
type Filter struct {
	sampleRate   float64
	variant      Variant
	cutoffHz     float64
	resonance    float64
	drive        float64
	overSampling int
	twoPole      bool

	coefficient float64
	feedback    float64
	driveScale  float64
	outputScale float64

	st state

	antiAliasUp   biquad.Section
	antiAliasDown biquad.Section
}

// New returns a ladder at 1 kHz with no resonance.
func New(sampleRate float64, opts ...Option) (*Filter, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %v", ErrInvalidParameter, sampleRate)
	}

	cfg := config{
		variant:      VariantHuovilainen,
		drive:        defaultDrive,
		overSampling: 1,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	f := &Filter{
		sampleRate:   sampleRate,
		variant:      cfg.variant,
		cutoffHz:     1000,
		drive:        cfg.drive,
		overSampling: cfg.overSampling,
	}

	f.rebuild()

	return f, nil
}

// Variant returns the ladder variant.
func (f *Filter) Variant() Variant { return f.variant }

// Oversampling returns the oversampling factor.
func (f *Filter) Oversampling() int { return f.overSampling }

// CutoffHz returns the cutoff after clamping.
func (f *Filter) CutoffHz() float64 { return f.cutoffHz }

// Resonance returns the feedback resonance after clamping.
func (f *Filter) Resonance() float64 { return f.resonance }

// SetSampleRate updates the sample rate and rebuilds coefficients.
func (f *Filter) SetSampleRate(sampleRate float64) error {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %v", ErrInvalidParameter, sampleRate)
	}

	f.sampleRate = sampleRate
	f.rebuild()

	return nil
}

// SetVariant switches the ladder variant.
func (f *Filter) SetVariant(variant Variant) error {
	if !validVariant(variant) {
		return fmt.Errorf("%w: variant %d", ErrInvalidParameter, int(variant))
	}

	if variant != f.variant {
		f.variant = variant
		f.rebuild()
	}

	return nil
}

// SetOversampling switches the oversampling factor.
func (f *Filter) SetOversampling(factor int) error {
	if !validOversampling(factor) {
		return fmt.Errorf("%w: oversampling %d", ErrInvalidParameter, factor)
	}

	if factor != f.overSampling {
		f.overSampling = factor
		f.rebuild()
	}

	return nil
}

// SetPoles selects the two- or four-pole output.
func (f *Filter) SetPoles(poles int) error {
	if poles != 2 && poles != 4 {
		return fmt.Errorf("%w: poles %d", ErrInvalidParameter, poles)
	}

	f.twoPole = poles == 2

	return nil
}

// SetParams sets cutoff in Hz and resonance in [0, 4]. The cutoff clamps
// below Nyquist and the resonance to its range.
func (f *Filter) SetParams(cutoffHz, resonance float64) {
	f.cutoffHz = core.Clamp(cutoffHz, minCutoffHz, 0.49*f.sampleRate)
	f.resonance = core.Clamp(resonance, 0, maxResonance)
	f.rebuild()
}

// SetDrive sets the nonlinear drive, clamped to [0.1, 24].
func (f *Filter) SetDrive(drive float64) {
	drive = core.Clamp(drive, minDrive, maxDrive)
	if drive != f.drive {
		f.drive = drive
		f.rebuild()
	}
}

// Reset clears the ladder and anti-alias state.
func (f *Filter) Reset() {
	f.st = state{}
	f.antiAliasUp.Reset()
	f.antiAliasDown.Reset()
}

// ProcessSample filters one sample. Non-finite input is treated as zero.
func (f *Filter) ProcessSample(input float64) float64 {
	if !core.IsFinite(input) {
		input = 0
	}

	if f.overSampling <= 1 {
		out := f.processCore(input)
		f.st.prevInput = input

		return sanitize(out)
	}

	prev := f.st.prevInput
	delta := (input - prev) / float64(f.overSampling)

	var out float64
	for i := range f.overSampling {
		sub := f.antiAliasUp.ProcessSample(prev + delta*float64(i+1))
		out = f.antiAliasDown.ProcessSample(f.processCore(sub))
	}

	f.st.prevInput = input

	return sanitize(out)
}

// ProcessBlockTo filters src into dst. dst must be at least as long as
// src and may alias it.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}

	f.antiAliasUp.FlushDenormals()
	f.antiAliasDown.FlushDenormals()
}

func (f *Filter) processCore(input float64) float64 {
	switch f.variant {
	case VariantClassicLightweight:
		return f.processClassic(input, fastTanh)
	case VariantHuovilainen:
		return f.processHuovilainen(input)
	default:
		return f.processClassic(input, math.Tanh)
	}
}

func (f *Filter) output() float64 {
	if f.twoPole {
		return f.outputScale * f.st.stage[1]
	}

	return f.outputScale * f.st.stage[3]
}

func (f *Filter) processClassic(input float64, tanh func(float64) float64) float64 {
	s := &f.st
	g := f.coefficient

	x := tanh(f.driveScale * (input - f.feedback*s.stage[3]))
	s.stage[0] = clipState(s.stage[0] + g*(x-s.tanhLast[0]))
	s.tanhLast[0] = tanh(f.driveScale * s.stage[0])

	s.stage[1] = clipState(s.stage[1] + g*(s.tanhLast[0]-s.tanhLast[1]))
	s.tanhLast[1] = tanh(f.driveScale * s.stage[1])

	s.stage[2] = clipState(s.stage[2] + g*(s.tanhLast[1]-s.tanhLast[2]))
	s.tanhLast[2] = tanh(f.driveScale * s.stage[2])

	s.stage[3] = clipState(s.stage[3] + g*(s.tanhLast[2]-tanh(f.driveScale*s.stage[3])))
	s.prevOutput = s.stage[3]

	return f.output()
}

func (f *Filter) processHuovilainen(input float64) float64 {
	s := &f.st
	shape := f.driveScale
	g := f.coefficient

	fb := 0.5 * (s.stage[3] + s.prevOutput)
	t0 := math.Tanh(shape * (input - f.feedback*fb))
	t1 := math.Tanh(shape * s.stage[0])
	t2 := math.Tanh(shape * s.stage[1])
	t3 := math.Tanh(shape * s.stage[2])
	t4 := math.Tanh(shape * s.stage[3])

	s.stage[0] = clipState(s.stage[0] + g*(t0-t1))
	s.tanhLast[0] = math.Tanh(shape * s.stage[0])

	s.stage[1] = clipState(s.stage[1] + g*(s.tanhLast[0]-t2))
	s.tanhLast[1] = math.Tanh(shape * s.stage[1])

	s.stage[2] = clipState(s.stage[2] + g*(s.tanhLast[1]-t3))
	s.tanhLast[2] = math.Tanh(shape * s.stage[2])

	s.stage[3] = clipState(s.stage[3] + g*(s.tanhLast[2]-t4))
	s.prevOutput = s.stage[3]

	return f.output()
}

// rebuild recomputes the stage gain, feedback and output scale. The stage
// gain is divided by the drive scale so drive changes saturation but not
// tuning. The anti-alias sections keep their state across cutoff changes.
func (f *Filter) rebuild() {
	rate := f.sampleRate * float64(f.overSampling)
	fc := f.cutoffHz / rate
	f.driveScale = 0.5 * f.drive / thermalVoltage
	f.feedback = f.resonance
	tune := 1.0

	if f.variant == VariantHuovilainen {
		tune = math.Max(1.8730*fc*fc*fc+0.4955*fc*fc-0.6490*fc+0.9988, 0)
		f.feedback = f.resonance * math.Max(-3.9364*fc*fc+1.8409*fc+0.9968, 0)
	}

	f.coefficient = (1 - math.Exp(-2*math.Pi*tune*fc)) / f.driveScale

	scale := core.DBToLinear(f.resonance)
	f.outputScale = scale * scale / (1 + 0.5*f.resonance)

	if f.overSampling > 1 {
		aa := biquad.LowPass2(0.225*f.sampleRate, math.Sqrt2/2, rate)
		f.antiAliasUp.SetCoefficients(aa)
		f.antiAliasDown.SetCoefficients(aa)
	}
}

func validVariant(v Variant) bool {
	return v >= VariantClassic && v <= VariantHuovilainen
}

func validOversampling(factor int) bool {
	return factor == 1 || factor == 2 || factor == 4 || factor == 8
}

func sanitize(v float64) float64 {
	if !core.IsFinite(v) {
		return 0
	}

	return v
}

func clipState(v float64) float64 {
	return core.Clamp(v, -stateLimit, stateLimit)
}

// fastTanh is a rational tanh approximation, exact at 0 and saturating
// beyond ±3.
func fastTanh(x float64) float64 {
	if x > 3 {
		return 1
	}

	if x < -3 {
		return -1
	}

	x2 := x * x

	return core.Clamp(x*(27+x2)/(27+9*x2), -1, 1)
}
