package movavg

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/buffer"
	"github.com/cwbudde/algo-smooth/dsp/core"
)

// ErrInvalidCapacity is returned by [New] for a non-positive window size.
var ErrInvalidCapacity = errors.New("movavg: capacity must be > 0")

// Filter averages the last Capacity accepted samples.
//
// A nil *Filter, or a zero Filter not built by [New], is safe to use: Send
// reports [core.StatusInvalidParam] and Recv returns NaN.
type Filter struct {
	ring *buffer.Ring
}

// New creates a moving-average filter over capacity samples.
func New(capacity int) (*Filter, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Filter{ring: buffer.NewRing(capacity)}, nil
}

func (f *Filter) valid() bool {
	return f != nil && f.ring != nil
}

// Send adds x to the window, evicting the oldest sample once the window is
// full. NaN and infinite samples are rejected.
func (f *Filter) Send(x float64) core.Status {
	if !f.valid() || !core.IsFinite(x) {
		return core.StatusInvalidParam
	}
	f.ring.Push(x)
	return core.StatusOK
}

// Recv returns the mean of the samples in the window, or NaN if the window
// is empty.
func (f *Filter) Recv() float64 {
	if !f.valid() {
		return math.NaN()
	}
	return f.ring.Mean()
}

// ProcessSample sends x and returns the resulting mean. A rejected sample
// leaves the window unchanged, so the previous mean is returned.
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

// Capacity returns the window size.
func (f *Filter) Capacity() int {
	if !f.valid() {
		return 0
	}
	return f.ring.Cap()
}

// Len returns the number of samples currently in the window.
func (f *Filter) Len() int {
	if !f.valid() {
		return 0
	}
	return f.ring.Len()
}

// Full reports whether the window holds Capacity samples.
func (f *Filter) Full() bool {
	return f.valid() && f.ring.Full()
}

// Window returns a copy of the samples in the window, oldest first.
func (f *Filter) Window() []float64 {
	if !f.valid() {
		return nil
	}
	return f.ring.Snapshot(nil)
}

// Resync recomputes the running sum from the stored samples. Long streams
// with a wide dynamic range accumulate rounding error in the incremental
// sum; calling Resync occasionally removes it at O(Capacity) cost.
func (f *Filter) Resync() {
	if !f.valid() {
		return
	}
	f.ring.Resync()
}

// Reset empties the window.
func (f *Filter) Reset() {
	if !f.valid() {
		return
	}
	f.ring.Reset()
}
