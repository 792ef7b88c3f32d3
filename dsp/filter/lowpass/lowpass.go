package lowpass

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// ErrInvalidAlpha is returned by [New] for a coefficient outside [0, 1].
var ErrInvalidAlpha = errors.New("lowpass: alpha must be in [0, 1]")

// Filter is an exponential (first-order IIR) smoother.
//
// A nil *Filter is safe to use: Send reports [core.StatusInvalidParam] and
// Recv returns NaN.
type Filter struct {
	alpha  float64
	output float64
	seeded bool
}

// New creates a Filter with smoothing coefficient alpha, the weight given to
// the previous output. alpha must be in [0, 1]; NaN is rejected.
func New(alpha float64) (*Filter, error) {
	if !core.InUnitInterval(alpha) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlpha, alpha)
	}
	return &Filter{alpha: alpha}, nil
}

// Send feeds one sample. The first sample after construction or Reset seeds
// the output and returns [core.StatusNotFinished]; later samples return
// [core.StatusOK].
func (f *Filter) Send(x float64) core.Status {
	if f == nil {
		return core.StatusInvalidParam
	}

	if !f.seeded {
		f.output = x
		f.seeded = true
		return core.StatusNotFinished
	}

	f.output = f.output*f.alpha + x*(1-f.alpha)
	return core.StatusOK
}

// Recv returns the current output, or NaN if no sample has been accepted.
func (f *Filter) Recv() float64 {
	if f == nil || !f.seeded {
		return math.NaN()
	}
	return f.output
}

// ProcessSample sends x and returns the resulting output.
func (f *Filter) ProcessSample(x float64) float64 {
	f.Send(x)
	return f.Recv()
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Alpha returns the smoothing coefficient, or NaN for a nil filter.
func (f *Filter) Alpha() float64 {
	if f == nil {
		return math.NaN()
	}
	return f.alpha
}

// Seeded reports whether at least one sample has been accepted.
func (f *Filter) Seeded() bool {
	return f != nil && f.seeded
}

// Reset returns the filter to its unseeded state. Alpha is kept.
func (f *Filter) Reset() {
	if f == nil {
		return
	}
	f.output = 0
	f.seeded = false
}
