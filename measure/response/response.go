package response

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// Errors returned by response measurements.
var (
	ErrNilStreamer    = errors.New("response: streamer is nil")
	ErrInvalidLength  = errors.New("response: length must be > 0")
	ErrInvalidFFTSize = errors.New("response: FFT size must be a power of two >= 2")
)

// Streamer is a stateful filter fed one sample at a time.
type Streamer interface {
	Send(x float64) core.Status
	Recv() float64
}

// Result summarizes the linear behavior of a filter.
type Result struct {
	DCGain          float64 // sum of the impulse response
	CutoffBin       int     // first bin at or below -3 dB relative to DC, -1 if none
	CutoffHz        float64 // CutoffBin converted with the configured sample rate, NaN if none
	SettlingSamples int     // samples until the step response stays within tolerance, -1 if never
	NyquistDB       float64 // magnitude at the Nyquist bin relative to DC in dB, NaN if DC is zero
}

// Drive feeds input into s and returns Recv after each sample. If s rejects
// a sample, the outputs collected so far are returned together with an
// error wrapping [core.ErrInvalidParam].
func Drive(s Streamer, input []float64) ([]float64, error) {
	if s == nil {
		return nil, ErrNilStreamer
	}

	out := make([]float64, len(input))
	for i, x := range input {
		if err := s.Send(x).Err(); err != nil {
			return out[:i], fmt.Errorf("response: sample %d (%v): %w", i, x, err)
		}
		out[i] = s.Recv()
	}
	return out, nil
}

func warmup(s Streamer, n int) error {
	if s == nil {
		return ErrNilStreamer
	}
	for i := range n {
		if err := s.Send(0).Err(); err != nil {
			return fmt.Errorf("response: warmup sample %d: %w", i, err)
		}
	}
	return nil
}

// StepResponse feeds the configured warmup and then n unit samples, and
// returns the n outputs.
func StepResponse(s Streamer, n int, opts ...Option) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	cfg := ApplyOptions(opts...)
	if err := warmup(s, cfg.Warmup); err != nil {
		return nil, err
	}

	in := make([]float64, n)
	for i := range in {
		in[i] = 1
	}
	return Drive(s, in)
}

// ImpulseResponse feeds the configured warmup and then a unit impulse
// followed by n-1 zeros, and returns the n outputs.
func ImpulseResponse(s Streamer, n int, opts ...Option) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	cfg := ApplyOptions(opts...)
	if err := warmup(s, cfg.Warmup); err != nil {
		return nil, err
	}

	in := make([]float64, n)
	in[0] = 1
	return Drive(s, in)
}

// SettlingIndex returns the first index from which every value of resp lies
// within tol*|target| of target (within tol when target is zero). It
// returns -1 if the last value is still outside the band.
func SettlingIndex(resp []float64, target, tol float64) int {
	band := tol * math.Abs(target)
	if target == 0 {
		band = tol
	}

	for i := len(resp) - 1; i >= 0; i-- {
		if d := math.Abs(resp[i] - target); d > band || math.IsNaN(d) {
			if i == len(resp)-1 {
				return -1
			}
			return i + 1
		}
	}
	return 0
}

// CutoffBin returns the first bin above DC whose magnitude has fallen to
// 1/sqrt(2) of mag[0] or below, or -1 if there is none.
func CutoffBin(mag []float64) int {
	if len(mag) < 2 || !(mag[0] > 0) {
		return -1
	}

	limit := mag[0] / math.Sqrt2
	for k := 1; k < len(mag); k++ {
		if mag[k] <= limit {
			return k
		}
	}
	return -1
}

// Analyze measures the impulse response of s after the configured warmup
// and derives a [Result]. The step response used for settling is the
// running sum of the impulse response. s is consumed by the measurement.
func Analyze(s Streamer, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	ir, err := ImpulseResponse(s, cfg.FFTSize, opts...)
	if err != nil {
		return Result{}, err
	}

	mag, err := Magnitude(ir, cfg.FFTSize)
	if err != nil {
		return Result{}, err
	}

	step := make([]float64, len(ir))
	var acc float64
	for i, v := range ir {
		acc += v
		step[i] = acc
	}

	res := Result{
		DCGain:          acc,
		CutoffBin:       CutoffBin(mag),
		CutoffHz:        math.NaN(),
		SettlingSamples: SettlingIndex(step, acc, cfg.Tolerance),
		NyquistDB:       math.NaN(),
	}
	if mag[0] > 0 {
		res.NyquistDB = core.LinearToDB(mag[len(mag)-1] / mag[0])
	}
	if res.CutoffBin >= 0 {
		res.CutoffHz = float64(res.CutoffBin) * cfg.SampleRate / float64(cfg.FFTSize)
	}
	return res, nil
}
