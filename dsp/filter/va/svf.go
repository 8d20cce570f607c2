package va

// SVF is the zero-delay-feedback state-variable filter.
type SVF struct {
	g      float64
	alpha0 float64
	rho    float64
	sigma  float64

	z1, z2 float64

	// Drive saturates the bandpass integrator input.
	Drive Drive

	sampleRate float64
}

// SVFOutput holds all responses of one SVF step.
type SVFOutput struct {
	LPF float64
	HPF float64
	BPF float64
	BSF float64
	// AnalogLPF restores the analog magnitude near Nyquist.
	AnalogLPF float64
}

// NewSVF returns a state-variable filter for the sample rate.
func NewSVF(sampleRate float64) (*SVF, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	return &SVF{sampleRate: sampleRate}, nil
}

// SetSampleRate changes the sample rate. Call SetParams afterwards.
func (f *SVF) SetSampleRate(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	f.sampleRate = sampleRate

	return nil
}

// SetParams computes coefficients for cutoff fc and native Q (> 0).
func (f *SVF) SetParams(fc, q float64) {
	if q <= 0 {
		q = 0.5
	}

	fc = ClampCutoff(fc, f.sampleRate)
	g := prewarp(fc, f.sampleRate)
	r := 1 / (2 * q)

	f.g = g
	f.alpha0 = 1 / (1 + 2*r*g + g*g)
	f.rho = 2*r + g

	fo := (f.sampleRate / 2) / fc
	f.sigma = 1 / (g * fo * fo)
}

// Reset clears the integrators.
func (f *SVF) Reset() {
	f.z1 = 0
	f.z2 = 0
}

// Process filters one sample.
func (f *SVF) Process(x float64) SVFOutput {
	hpf := f.alpha0 * (x - f.rho*f.z1 - f.z2)
	bpf := f.Drive.apply(f.g*hpf + f.z1)
	lpf := f.g*bpf + f.z2
	sn := f.z1

	f.z1 = f.g*hpf + bpf
	f.z2 = f.g*bpf + lpf

	return SVFOutput{
		LPF:       lpf,
		HPF:       hpf,
		BPF:       bpf,
		BSF:       hpf + lpf,
		AnalogLPF: lpf + f.sigma*sn,
	}
}
