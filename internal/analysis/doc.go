// Package analysis turns recorded traces into numbers and pictures.
//
//   - [Extract]: one entity's axis over time from a trace
//   - [Summarize]: min, max, mean and spread of a series
//   - [DominantFrequency]: strongest periodic component, via FFT
//   - [Crossings]: sign changes of a series, e.g. wall bounces from vx
//   - [PathToASCII]: an entity's path drawn in screen orientation
//
// A bouncing ball in a box reflects off the side walls at a fixed rate,
// which shows up as the dominant frequency of its x position:
//
//	xs, _, _ := analysis.Extract(samples, ball, analysis.AxisX)
//	hz, _ := analysis.DominantFrequency(xs, 1.0/60.0)
package analysis
