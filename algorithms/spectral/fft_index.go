package spectral

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrShortBuffer is returned when an output slice cannot hold n values.
	ErrShortBuffer = errors.New("spectral: output buffer too short")

	// ErrInvalidLength is returned for negative transform lengths.
	ErrInvalidLength = errors.New("spectral: invalid transform length")
)

// FFTIndex writes the frequency index of each of the n bins of a length-n
// DFT into out[:n]: non-negative frequencies first, then the negative ones
// ending at -1.
//
//	n = 6: 0 1 2 -3 -2 -1
//	n = 5: 0 1 2 -2 -1
//
// For even n the Nyquist bin is reported as -n/2. Odd n puts the extra bin on
// the positive side, so n = 1 yields 0 rather than -1 and every sequence
// starts at 0. Only out[:n] is written.
func FFTIndex(n int, out []int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if len(out) < n {
		return fmt.Errorf("%w: need %d, have %d", ErrShortBuffer, n, len(out))
	}

	split := (n + 1) / 2
	for i := range split {
		out[i] = i
	}
	for i := split; i < n; i++ {
		out[i] = i - n
	}

	return nil
}

// NewFFTIndex allocates and fills the bin index slice for length n.
func NewFFTIndex(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	out := make([]int, n)
	if err := FFTIndex(n, out); err != nil {
		return nil, err
	}
	return out, nil
}

// FrequencyAxis returns the centre frequency in Hz of each bin of a length-n
// DFT sampled at sampleRate, in FFT output order.
func FrequencyAxis(n int, sampleRate float64) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectral: sample rate must be positive, got %v", sampleRate)
	}

	idx, err := NewFFTIndex(n)
	if err != nil {
		return nil, err
	}

	axis := make([]float64, n)
	for i, k := range idx {
		axis[i] = float64(k)
	}
	if n > 0 {
		floats.Scale(sampleRate/float64(n), axis)
	}

	return axis, nil
}
