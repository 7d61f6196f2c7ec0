package spectral

import (
	"context"
	"fmt"

	"github.com/mjibson/go-dsp/fft"

	"github.com/RyanBlaney/sonido-grid/algorithms/fastsize"
	"github.com/RyanBlaney/sonido-grid/logging"
)

// FFT computes transforms with mjibson/go-dsp after rounding the frame
// length with a fastsize.Finder.
type FFT struct {
	finder *fastsize.Finder
	logger logging.Logger
}

// NewFFT creates an FFT that pads frames according to finder. A nil finder
// uses the default sizing config.
func NewFFT(finder *fastsize.Finder, logger logging.Logger) (*FFT, error) {
	logger = logging.OrGlobal(logger)

	if finder == nil {
		var err error
		finder, err = fastsize.NewFinder(nil, logger)
		if err != nil {
			return nil, err
		}
	}

	return &FFT{
		finder: finder,
		logger: logger.WithFields(logging.Fields{"component": "fft"}),
	}, nil
}

// Compute computes the FFT of x at its own length.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	// go-dsp handles all sizes, including non-power-of-2
	return fft.FFTReal(x)
}

// ComputePadded zero-pads x to the length chosen by the finder and returns
// the spectrum together with that length.
func (f *FFT) ComputePadded(ctx context.Context, x []float64) ([]complex128, int, error) {
	if len(x) == 0 {
		return []complex128{}, 0, nil
	}

	n, err := f.finder.Size(ctx, len(x))
	if err != nil {
		return nil, 0, fmt.Errorf("spectral: sizing frame of %d samples: %w", len(x), err)
	}

	frame := x
	if n != len(x) {
		frame = make([]float64, n)
		copy(frame, x)
		f.logger.Debug("padded frame", logging.Fields{
			"samples": len(x),
			"length":  n,
		})
	}

	return fft.FFTReal(frame), n, nil
}

// ComputeInversePadded inverts a spectrum produced by ComputePadded and
// drops the zero padding, returning the first samples values.
func (f *FFT) ComputeInversePadded(spectrum []complex128, samples int) ([]float64, error) {
	if samples < 0 || samples > len(spectrum) {
		return nil, fmt.Errorf("%w: %d samples from a length %d spectrum", ErrInvalidLength, samples, len(spectrum))
	}
	if samples == 0 {
		return []float64{}, nil
	}

	return f.ComputeInverseReal(spectrum)[:samples], nil
}

// ComputeInverse computes inverse FFT
func (f *FFT) ComputeInverse(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	return fft.IFFT(x)
}

// ComputeInverseReal computes inverse FFT and returns real part only
func (f *FFT) ComputeInverseReal(x []complex128) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	result := fft.IFFT(x)
	realResult := make([]float64, len(result))

	for i, val := range result {
		realResult[i] = real(val)
	}

	return realResult
}
