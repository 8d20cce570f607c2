package buffer

import (
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// AudioBuffer owns a set of input and output channels of fixed maximum
// length. The number of samples valid in the current block is set per
// block with SetSamplesInBlock.
//
// An AudioBuffer is owned by exactly one module and never shared.
type AudioBuffer struct {
	inputs  [][]float64
	outputs [][]float64
	size    int
	inBlock int
}

// New allocates an AudioBuffer with the given channel counts and block size.
// Negative counts are treated as zero.
func New(numInputs, numOutputs, blockSize int) *AudioBuffer {
	if numInputs < 0 {
		numInputs = 0
	}

	if numOutputs < 0 {
		numOutputs = 0
	}

	if blockSize < 0 {
		blockSize = 0
	}

	b := &AudioBuffer{
		inputs:  make([][]float64, numInputs),
		outputs: make([][]float64, numOutputs),
		size:    blockSize,
		inBlock: blockSize,
	}

	for i := range b.inputs {
		b.inputs[i] = make([]float64, blockSize)
	}

	for i := range b.outputs {
		b.outputs[i] = make([]float64, blockSize)
	}

	return b
}

// NumInputs returns the number of input channels.
func (b *AudioBuffer) NumInputs() int { return len(b.inputs) }

// NumOutputs returns the number of output channels.
func (b *AudioBuffer) NumOutputs() int { return len(b.outputs) }

// BlockSize returns the fixed maximum block length.
func (b *AudioBuffer) BlockSize() int { return b.size }

// SamplesInBlock returns the number of samples valid in the current block.
func (b *AudioBuffer) SamplesInBlock() int { return b.inBlock }

// SetSamplesInBlock sets the number of samples in the current block.
//
// n must not exceed BlockSize. This is a caller contract: the channel
// accessors slice past capacity and panic if it is violated.
func (b *AudioBuffer) SetSamplesInBlock(n int) {
	if n < 0 {
		n = 0
	}

	b.inBlock = n
}

// Input returns input channel ch limited to the samples in the block.
func (b *AudioBuffer) Input(ch int) []float64 {
	return b.inputs[ch][:b.inBlock]
}

// Output returns output channel ch limited to the samples in the block.
func (b *AudioBuffer) Output(ch int) []float64 {
	return b.outputs[ch][:b.inBlock]
}

// Inputs returns all input channels at full block size.
func (b *AudioBuffer) Inputs() [][]float64 { return b.inputs }

// Outputs returns all output channels at full block size.
func (b *AudioBuffer) Outputs() [][]float64 { return b.outputs }

// FlushInputs zeroes every input sample.
func (b *AudioBuffer) FlushInputs() {
	for _, ch := range b.inputs {
		core.Zero(ch)
	}
}

// FlushOutputs zeroes every output sample.
func (b *AudioBuffer) FlushOutputs() {
	for _, ch := range b.outputs {
		core.Zero(ch)
	}
}

// Flush zeroes all input and output samples.
func (b *AudioBuffer) Flush() {
	b.FlushInputs()
	b.FlushOutputs()
}

// OutputPeak returns the largest absolute output sample in the current block.
func (b *AudioBuffer) OutputPeak() float64 {
	peak := 0.0
	for ch := range b.outputs {
		if p := vecmath.MaxAbs(b.Output(ch)); p > peak {
			peak = p
		}
	}

	return peak
}
