package modulator

// Glide produces a portamento offset in semitones. On note change it starts
// at the interval between the previous and the new note and converges
// linearly to zero.
type Glide struct {
	ramp Ramp
}

// Start begins a glide from the note fromNote toward toNote over the given
// time. The returned offsets are added to the pitch of toNote.
func (g *Glide) Start(fromNote, toNote, seconds, sampleRate float64) {
	g.ramp.StartSeconds(fromNote-toNote, 0, seconds, sampleRate)
}

// Advance steps the glide by n samples and returns the current offset in
// semitones.
func (g *Glide) Advance(n int) float64 {
	return g.ramp.Advance(n)
}

// Offset returns the current offset in semitones.
func (g *Glide) Offset() float64 { return g.ramp.Value() }

// Active reports whether a glide is in progress.
func (g *Glide) Active() bool { return g.ramp.Active() }

// Stop ends the glide at zero offset.
func (g *Glide) Stop() { g.ramp.Finish() }
