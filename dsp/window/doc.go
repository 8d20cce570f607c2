// Package window generates the cosine-sum windows used for spectral
// measurement and smooth table shapes.
package window
