// Package buffer provides the fixed-size multichannel audio buffer owned by
// each synth module. Buffers are allocated once at block size and reused for
// every block; nothing in the render path allocates.
package buffer
