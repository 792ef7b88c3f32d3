// Package lowpass provides a first-order exponential smoothing filter for
// streams of scalar samples.
//
// A [Filter] keeps only its smoothing coefficient and its last output. The
// first sample seeds the output directly and is reported with
// [core.StatusNotFinished]; every later sample is blended as
//
//	y[n] = alpha*y[n-1] + (1-alpha)*x[n]
//
// so alpha close to 1 responds slowly and alpha = 0 passes input through.
// Input samples are not validated: NaN and infinite values are accepted and
// propagate into the output.
package lowpass
