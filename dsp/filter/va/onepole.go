package va

// OnePole is a trapezoidal one-pole lowpass/highpass. Besides standalone
// use it is the building block of the ladder topologies, which set its
// coupling terms (beta, gamma, delta, epsilon, a0 and feedback).
type OnePole struct {
	alpha    float64
	beta     float64
	gamma    float64
	delta    float64
	epsilon  float64
	a0       float64
	feedback float64

	z1 float64

	sampleRate float64
}

// OnePoleOutput holds all responses of one OnePole step.
type OnePoleOutput struct {
	LPF float64
	HPF float64
	APF float64
	// AnalogLPF matches the analog magnitude near Nyquist.
	AnalogLPF float64
}

// NewOnePole returns a one-pole filter for the sample rate.
func NewOnePole(sampleRate float64) (*OnePole, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	f := &OnePole{sampleRate: sampleRate}
	f.resetTerms()

	return f, nil
}

func (f *OnePole) resetTerms() {
	f.beta = 0
	f.gamma = 1
	f.delta = 0
	f.epsilon = 0
	f.a0 = 1
	f.feedback = 0
}

// SetSampleRate changes the sample rate. Call SetCutoff afterwards.
func (f *OnePole) SetSampleRate(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	f.sampleRate = sampleRate

	return nil
}

// SetCutoff computes the integrator gain for fc.
func (f *OnePole) SetCutoff(fc float64) {
	g := prewarp(fc, f.sampleRate)
	f.alpha = g / (1 + g)
}

// Alpha returns the integrator gain G = g/(1+g).
func (f *OnePole) Alpha() float64 { return f.alpha }

// Reset clears the integrator state and the feedback input.
func (f *OnePole) Reset() {
	f.z1 = 0
	f.feedback = 0
}

// feedbackOutput is the stage's contribution to an enclosing loop.
func (f *OnePole) feedbackOutput() float64 {
	return f.beta * (f.z1 + f.feedback*f.delta)
}

func (f *OnePole) step(x float64) (lpf, hpf float64) {
	x = x*f.gamma + f.feedback + f.epsilon*f.feedbackOutput()
	vn := (f.a0*x - f.z1) * f.alpha
	lpf = vn + f.z1
	f.z1 = vn + lpf

	return lpf, x - lpf
}

// Process filters one sample.
func (f *OnePole) Process(x float64) OnePoleOutput {
	lpf, hpf := f.step(x)
	return OnePoleOutput{
		LPF:       lpf,
		HPF:       hpf,
		APF:       lpf - hpf,
		AnalogLPF: lpf + f.alpha*hpf,
	}
}
