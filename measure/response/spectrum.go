package response

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// transform zero-pads (or truncates) ir to fftSize and returns the real and
// imaginary parts of bins 0..fftSize/2.
func transform(ir []float64, fftSize int) (re, im []float64, err error) {
	if !isPowerOfTwo(fftSize) {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i := 0; i < len(ir) && i < fftSize; i++ {
		in[i] = complex(ir[i], 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("response: forward FFT: %w", err)
	}

	bins := fftSize/2 + 1
	re = make([]float64, bins)
	im = make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	return re, im, nil
}

// Magnitude returns |H[k]| for k = 0..fftSize/2 of the impulse response ir.
// ir is zero-padded or truncated to fftSize samples.
func Magnitude(ir []float64, fftSize int) ([]float64, error) {
	re, im, err := transform(ir, fftSize)
	if err != nil {
		return nil, err
	}

	mag := make([]float64, len(re))
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// PowerDB returns 10*log10(|H[k]|^2) for k = 0..fftSize/2 of the impulse
// response ir. Bins with zero power are -Inf.
func PowerDB(ir []float64, fftSize int) ([]float64, error) {
	re, im, err := transform(ir, fftSize)
	if err != nil {
		return nil, err
	}

	pow := make([]float64, len(re))
	vecmath.Power(pow, re, im)
	for k, p := range pow {
		pow[k] = core.LinearPowerToDB(p)
	}
	return pow, nil
}
