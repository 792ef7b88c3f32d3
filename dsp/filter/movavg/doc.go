// Package movavg provides a fixed-size moving-average (boxcar) filter for
// streams of scalar samples.
//
// A [Filter] holds the most recent Capacity samples in a ring together with
// their running sum, so Send and Recv are O(1) regardless of window size.
// Until the window fills, Recv averages only the samples received so far.
//
// Unlike the exponential filter in package lowpass, input is validated
// strictly: NaN and infinite samples are rejected with
// [core.StatusInvalidParam] and leave the window untouched.
package movavg
