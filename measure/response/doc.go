// Package response characterizes streaming filters by driving them with
// test signals.
//
// Any type with Send/Recv methods satisfies [Streamer]; the lowpass, movavg
// and kalman filters all do. The package records step and impulse responses
// sample by sample, transforms impulse responses with an FFT to obtain the
// magnitude response, and derives summary figures such as DC gain, the
// -3 dB cutoff and the settling time.
//
// The filters in this module are only linear once their start-up transient
// has passed (the exponential filter seeds from its first sample, the
// moving average grows its window, the Kalman gain converges). Measurements
// therefore feed a configurable number of zero samples first; see
// [WithWarmup].
//
// # Usage
//
//	f, _ := lowpass.New(0.9)
//	res, err := response.Analyze(f, response.WithSampleRate(100))
//	fmt.Printf("cutoff %.2f Hz, settles in %d samples\n", res.CutoffHz, res.SettlingSamples)
package response
