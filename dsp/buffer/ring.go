package buffer

import "math"

// Ring is a fixed-capacity circular store of float64 samples.
//
// Once the ring is full every Push overwrites the oldest sample. The sum of
// the live samples is maintained incrementally: each eviction subtracts the
// old value before the new one is added.
type Ring struct {
	samples []float64
	head    int // next write position
	count   int
	sum     float64
}

// NewRing returns an empty Ring holding up to capacity samples.
// A negative capacity is treated as zero; a zero-capacity ring drops
// every sample.
func NewRing(capacity int) *Ring {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring{samples: make([]float64, capacity)}
}

// Push appends x. If the ring was already full, the oldest sample is
// overwritten and returned with evicted set to true.
func (r *Ring) Push(x float64) (old float64, evicted bool) {
	n := len(r.samples)
	if n == 0 {
		return 0, false
	}

	if r.count < n {
		r.samples[r.head] = x
		r.sum += x
		r.count++
	} else {
		old = r.samples[r.head]
		r.sum -= old
		r.samples[r.head] = x
		r.sum += x
		evicted = true
	}

	r.head++
	if r.head >= n {
		r.head = 0
	}
	return old, evicted
}

// Len returns the number of live samples.
func (r *Ring) Len() int {
	return r.count
}

// Cap returns the fixed capacity.
func (r *Ring) Cap() int {
	return len(r.samples)
}

// Full reports whether the next Push will evict a sample.
func (r *Ring) Full() bool {
	return len(r.samples) > 0 && r.count == len(r.samples)
}

// Sum returns the running sum of the live samples.
func (r *Ring) Sum() float64 {
	return r.sum
}

// Mean returns Sum()/Len(), or NaN when the ring is empty.
func (r *Ring) Mean() float64 {
	if r.count == 0 {
		return math.NaN()
	}
	return r.sum / float64(r.count)
}

// Snapshot copies the live samples, oldest first, into dst and returns it.
// dst is grown if it is too short.
func (r *Ring) Snapshot(dst []float64) []float64 {
	if cap(dst) < r.count {
		dst = make([]float64, r.count)
	}
	dst = dst[:r.count]

	start := r.head - r.count
	if start < 0 {
		start += len(r.samples)
	}
	for i := range dst {
		j := start + i
		if j >= len(r.samples) {
			j -= len(r.samples)
		}
		dst[i] = r.samples[j]
	}
	return dst
}

// Resync recomputes the running sum from the stored samples, discarding any
// rounding error accumulated by incremental updates. It costs O(Len()).
func (r *Ring) Resync() {
	var sum float64
	start := r.head - r.count
	if start < 0 {
		start += len(r.samples)
	}
	for i := 0; i < r.count; i++ {
		j := start + i
		if j >= len(r.samples) {
			j -= len(r.samples)
		}
		sum += r.samples[j]
	}
	r.sum = sum
}

// Reset empties the ring. Capacity is unchanged.
func (r *Ring) Reset() {
	for i := range r.samples {
		r.samples[i] = 0
	}
	r.head = 0
	r.count = 0
	r.sum = 0
}
