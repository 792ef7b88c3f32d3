// Package kalman provides a scalar (one-dimensional) Kalman filter for
// estimating a slowly varying quantity from noisy measurements.
//
// The state model is a random walk with no control input: each [Filter.Send]
// runs a predict step that grows the error covariance by the process noise Q,
// then an update step that blends the measurement in with gain
//
//	K = P / (P + R)
//
// where R is the measurement noise. Q and R are fixed at construction.
//
// NaN measurements are rejected; infinite measurements are accepted and
// propagate into the estimate.
package kalman
