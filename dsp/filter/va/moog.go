package va

// Moog is the four-pole transistor ladder with global negative feedback K.
// It self-oscillates as K approaches 4.
type Moog struct {
	k      float64
	gamma  float64
	alpha0 float64

	stages [4]OnePole

	// Drive saturates the ladder input after the feedback sum.
	Drive Drive

	sampleRate float64
}

// MoogOutput holds the responses mixed from the ladder taps.
type MoogOutput struct {
	LPF2 float64
	LPF4 float64
	BPF2 float64
	BPF4 float64
	HPF2 float64
	HPF4 float64
}

// NewMoog returns a Moog ladder for the sample rate.
func NewMoog(sampleRate float64) (*Moog, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	f := &Moog{sampleRate: sampleRate}
	for i := range f.stages {
		f.stages[i].resetTerms()
	}

	return f, nil
}

// SetSampleRate changes the sample rate. Call SetParams afterwards.
func (f *Moog) SetSampleRate(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	f.sampleRate = sampleRate

	return nil
}

// SetParams computes coefficients for cutoff fc and feedback gain k.
func (f *Moog) SetParams(fc, k float64) {
	g := prewarp(fc, f.sampleRate)
	big := g / (1 + g)

	for i := range f.stages {
		f.stages[i].alpha = big
	}

	f.stages[0].beta = big * big * big / (1 + g)
	f.stages[1].beta = big * big / (1 + g)
	f.stages[2].beta = big / (1 + g)
	f.stages[3].beta = 1 / (1 + g)

	f.k = k
	f.gamma = big * big * big * big
	f.alpha0 = 1 / (1 + k*f.gamma)
}

// K returns the current feedback gain.
func (f *Moog) K() float64 { return f.k }

// GainCompensation returns the factor that restores unity passband gain
// lost to feedback.
func (f *Moog) GainCompensation() float64 { return 1 + f.k }

// Reset clears all stages.
func (f *Moog) Reset() {
	for i := range f.stages {
		f.stages[i].Reset()
	}
}

// Process filters one sample.
func (f *Moog) Process(x float64) MoogOutput {
	sigma := f.stages[0].feedbackOutput() +
		f.stages[1].feedbackOutput() +
		f.stages[2].feedbackOutput() +
		f.stages[3].feedbackOutput()

	u := f.Drive.apply((x - f.k*sigma) * f.alpha0)

	lp1, _ := f.stages[0].step(u)
	lp2, _ := f.stages[1].step(lp1)
	lp3, _ := f.stages[2].step(lp2)
	lp4, _ := f.stages[3].step(lp3)

	return MoogOutput{
		LPF2: lp2,
		LPF4: lp4,
		BPF2: 2*lp1 - 2*lp2,
		BPF4: 4*lp2 - 8*lp3 + 4*lp4,
		HPF2: u - 2*lp1 + lp2,
		HPF4: u - 4*lp1 + 6*lp2 - 4*lp3 + lp4,
	}
}
