package va

// Diode is the four-pole diode ladder. Unlike the Moog ladder its stages
// load each other, so every stage carries its own gamma, delta, epsilon and
// a0 coupling terms and the nested feedback is resolved right to left.
type Diode struct {
	k      float64
	gamma  float64
	sg     [4]float64
	stages [4]OnePole

	// AnalogMatch adds the analog-matched correction of the last stage.
	// It is evaluated only when enabled.
	AnalogMatch bool

	// Drive saturates the ladder input after the feedback sum.
	Drive Drive

	sampleRate float64
}

// NewDiode returns a diode ladder for the sample rate.
func NewDiode(sampleRate float64) (*Diode, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	f := &Diode{sampleRate: sampleRate}
	for i := range f.stages {
		f.stages[i].resetTerms()
	}

	return f, nil
}

// SetSampleRate changes the sample rate. Call SetParams afterwards.
func (f *Diode) SetSampleRate(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	f.sampleRate = sampleRate

	return nil
}

// SetParams computes coefficients for cutoff fc and feedback gain k.
func (f *Diode) SetParams(fc, k float64) {
	g := prewarp(fc, f.sampleRate)
	half := 0.5 * g

	g4 := half / (1 + g)
	g3 := half / (1 + g - half*g4)
	g2 := half / (1 + g - half*g3)
	g1 := g / (1 + g - g*g2)

	f.k = k
	f.gamma = g1 * g2 * g3 * g4
	f.sg = [4]float64{g4 * g3 * g2, g4 * g3, g4, 1}

	alpha := g / (1 + g)
	s := &f.stages
	for i := range s {
		s[i].alpha = alpha
	}

	s[0].beta = 1 / (1 + g - g*g2)
	s[1].beta = 1 / (1 + g - half*g3)
	s[2].beta = 1 / (1 + g - half*g4)
	s[3].beta = 1 / (1 + g)

	s[0].gamma = 1 + g1*g2
	s[1].gamma = 1 + g2*g3
	s[2].gamma = 1 + g3*g4
	s[3].gamma = 1

	s[0].delta = g
	s[1].delta = half
	s[2].delta = half
	s[3].delta = 0

	s[0].epsilon = g2
	s[1].epsilon = g3
	s[2].epsilon = g4
	s[3].epsilon = 0

	s[0].a0 = 1
	s[1].a0 = 0.5
	s[2].a0 = 0.5
	s[3].a0 = 0.5
}

// K returns the current feedback gain.
func (f *Diode) K() float64 { return f.k }

// GainCompensation returns the factor that restores unity DC gain lost to
// feedback.
func (f *Diode) GainCompensation() float64 { return 1 + f.k }

// Reset clears all stages.
func (f *Diode) Reset() {
	for i := range f.stages {
		f.stages[i].Reset()
	}
}

// Process filters one sample and returns the four-pole lowpass output.
func (f *Diode) Process(x float64) float64 {
	s := &f.stages
	s[3].feedback = 0
	s[2].feedback = s[3].feedbackOutput()
	s[1].feedback = s[2].feedbackOutput()
	s[0].feedback = s[1].feedbackOutput()

	sigma := f.sg[0]*s[0].feedbackOutput() +
		f.sg[1]*s[1].feedbackOutput() +
		f.sg[2]*s[2].feedbackOutput() +
		f.sg[3]*s[3].feedbackOutput()

	u := f.Drive.apply((x - f.k*sigma) / (1 + f.k*f.gamma))

	y, _ := s[0].step(u)
	y, _ = s[1].step(y)
	y, _ = s[2].step(y)
	y, hpf := s[3].step(y)

	if f.AnalogMatch {
		y += s[3].alpha * hpf
	}

	return y
}
