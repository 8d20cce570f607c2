package va

// Korg35 is the Sallen-Key lowpass or highpass built from three one-poles
// with a single feedback gain K. It self-oscillates as K approaches 2.
type Korg35 struct {
	highpass bool
	k        float64
	alpha0   float64

	// lowpass: lpf1 -> [lpf2 <- hpf1]; highpass: hpf1 -> [hpf2 <- lpf1]
	s1, s2, s3 OnePole

	// Drive saturates the loop before the output gain.
	Drive Drive

	sampleRate float64
}

// NewKorg35 returns a Korg35 filter. highpass selects the HPF topology.
func NewKorg35(sampleRate float64, highpass bool) (*Korg35, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	f := &Korg35{highpass: highpass, sampleRate: sampleRate}
	f.s1.resetTerms()
	f.s2.resetTerms()
	f.s3.resetTerms()

	return f, nil
}

// SetSampleRate changes the sample rate. Call SetParams afterwards.
func (f *Korg35) SetSampleRate(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	f.sampleRate = sampleRate

	return nil
}

// SetHighpass switches between the lowpass and highpass topologies.
func (f *Korg35) SetHighpass(highpass bool) {
	if f.highpass != highpass {
		f.highpass = highpass
		f.Reset()
	}
}

// SetParams computes coefficients for cutoff fc and feedback gain k.
func (f *Korg35) SetParams(fc, k float64) {
	g := prewarp(fc, f.sampleRate)
	big := g / (1 + g)

	f.k = k
	f.s1.alpha = big
	f.s2.alpha = big
	f.s3.alpha = big

	if f.highpass {
		f.s2.beta = -big / (1 + g)
		f.s3.beta = 1 / (1 + g)
	} else {
		f.s2.beta = (k - k*big) / (1 + g)
		f.s3.beta = -1 / (1 + g)
	}

	f.alpha0 = 1 / (1 - k*big + k*big*big)
}

// K returns the current feedback gain.
func (f *Korg35) K() float64 { return f.k }

// Reset clears all stages.
func (f *Korg35) Reset() {
	f.s1.Reset()
	f.s2.Reset()
	f.s3.Reset()
}

// Process filters one sample.
func (f *Korg35) Process(x float64) float64 {
	if f.highpass {
		return f.processHighpass(x)
	}

	return f.processLowpass(x)
}

func (f *Korg35) processLowpass(x float64) float64 {
	y1, _ := f.s1.step(x)
	s35 := f.s3.feedbackOutput() + f.s2.feedbackOutput()
	u := f.Drive.apply(f.alpha0 * (y1 + s35))

	y, _ := f.s2.step(u)
	y *= f.k
	f.s3.step(y)

	if f.k > 0 {
		y /= f.k
	}

	return y
}

func (f *Korg35) processHighpass(x float64) float64 {
	_, y1 := f.s1.step(x)
	s35 := f.s2.feedbackOutput() + f.s3.feedbackOutput()
	u := f.alpha0 * (y1 + s35)

	y := f.Drive.apply(f.k * u)
	_, h := f.s2.step(y)
	f.s3.step(h)

	if f.k > 0 {
		y /= f.k
	}

	return y
}
