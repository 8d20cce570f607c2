package core

import "github.com/cwbudde/algo-vecmath"

// Zero clears buf.
func Zero(buf []float64) {
	clear(buf)
}

// CopyChannels copies the first n samples of each src channel into the
// matching dst channel. Unmatched channels are left untouched.
func CopyChannels(dst, src [][]float64, n int) {
	for ch := range min(len(dst), len(src)) {
		copy(dst[ch][:n], src[ch][:n])
	}
}

// AddChannels sums the first n samples of each src channel into the
// matching dst channel.
func AddChannels(dst, src [][]float64, n int) {
	for ch := range min(len(dst), len(src)) {
		vecmath.AddBlockInPlace(dst[ch][:n], src[ch][:n])
	}
}
