package kalman

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

const initialCovariance = 1.0

// ErrInvalidNoise is returned by [New] for a negative or NaN noise variance.
var ErrInvalidNoise = errors.New("kalman: noise variance must be >= 0")

// Filter is a scalar Kalman estimator.
//
// A nil *Filter is safe to use: Send reports [core.StatusInvalidParam] and
// Recv returns NaN.
type Filter struct {
	estimate float64
	p        float64 // error covariance
	q        float64 // process noise
	r        float64 // measurement noise
	k        float64 // last gain
}

// New creates a Filter with process noise q, measurement noise r and a
// starting estimate. initial is stored as given, NaN and Inf included.
// An infinite r yields a zero gain, so measurements never move the estimate.
func New(q, r, initial float64) (*Filter, error) {
	if err := validateNoise(q, "process"); err != nil {
		return nil, err
	}
	if err := validateNoise(r, "measurement"); err != nil {
		return nil, err
	}

	return &Filter{
		estimate: initial,
		p:        initialCovariance,
		q:        q,
		r:        r,
	}, nil
}

func validateNoise(v float64, name string) error {
	if v < 0 || math.IsNaN(v) {
		return fmt.Errorf("%w: %s noise %v", ErrInvalidNoise, name, v)
	}
	return nil
}

// Send incorporates one measurement. NaN measurements are rejected without
// touching the state.
func (f *Filter) Send(z float64) core.Status {
	if f == nil || math.IsNaN(z) {
		return core.StatusInvalidParam
	}

	// Predict.
	f.p += f.q

	// Update. P+R is zero only when Q = R = 0 after the covariance has
	// collapsed; the R -> 0 limit of the gain is 1.
	if s := f.p + f.r; s == 0 {
		f.k = 1
	} else {
		f.k = f.p / s
	}
	f.estimate += f.k * (z - f.estimate)
	f.p *= 1 - f.k

	return core.StatusOK
}

// Recv returns the current estimate.
func (f *Filter) Recv() float64 {
	if f == nil {
		return math.NaN()
	}
	return f.estimate
}

// ProcessSample sends z and returns the resulting estimate.
func (f *Filter) ProcessSample(z float64) float64 {
	f.Send(z)
	return f.Recv()
}

// ProcessBlock filters a block of measurements in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, z := range buf {
		buf[i] = f.ProcessSample(z)
	}
}

// Gain returns the Kalman gain computed by the last accepted Send.
func (f *Filter) Gain() float64 {
	if f == nil {
		return math.NaN()
	}
	return f.k
}

// ErrorCovariance returns the current error covariance P.
func (f *Filter) ErrorCovariance() float64 {
	if f == nil {
		return math.NaN()
	}
	return f.p
}

// ProcessNoise returns Q.
func (f *Filter) ProcessNoise() float64 {
	if f == nil {
		return math.NaN()
	}
	return f.q
}

// MeasurementNoise returns R.
func (f *Filter) MeasurementNoise() float64 {
	if f == nil {
		return math.NaN()
	}
	return f.r
}

// Reset restarts the filter from initial with unit error covariance and
// zero gain. Q and R are kept.
func (f *Filter) Reset(initial float64) {
	if f == nil {
		return
	}
	f.estimate = initial
	f.p = initialCovariance
	f.k = 0
}
