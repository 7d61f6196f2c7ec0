// Package fastsize rounds transform lengths up to sizes that FFT code
// handles well: powers of two and 2-3-5 smooth numbers.
package fastsize

import (
	"context"
	"errors"
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// MaxFastLength bounds NextFastFFT. It is a power of two, so every x up to
// and including it has a smooth length within the bound.
const MaxFastLength uint = 1 << 31

const defaultCheckInterval = 1024

var (
	// ErrSearchExhausted is returned when no smooth length exists at or
	// below the search limit.
	ErrSearchExhausted = errors.New("fastsize: no fast length within limit")

	// ErrInvalidLength is returned for negative lengths.
	ErrInvalidLength = errors.New("fastsize: invalid length")
)

// NextPow2 returns the smallest power of two >= x, using the bit smearing
// trick: the highest set bit of x-1 is copied into every lower bit and the
// result incremented. NextPow2(0) is 1. Inputs above the largest power of
// two representable in T wrap to 0.
func NextPow2[T constraints.Unsigned](x T) T {
	if x == 0 {
		return 1
	}

	width := uint(bits.Len64(uint64(^T(0))))

	x--
	for shift := uint(1); shift < 32; shift <<= 1 {
		x |= x >> shift
	}
	if width > 32 {
		x |= x >> (width / 2)
	}
	x++

	return x
}

// IsPow2 reports whether x is a power of two.
func IsPow2[T constraints.Unsigned](x T) bool {
	return x != 0 && x&(x-1) == 0
}

// IsFastLength reports whether x has no prime factors other than 2, 3 and 5.
func IsFastLength(x uint) bool {
	if x == 0 {
		return false
	}

	m := x
	for m%2 == 0 {
		m /= 2
	}
	for m%3 == 0 {
		m /= 3
	}
	for m%5 == 0 {
		m /= 5
	}
	return m == 1
}

// NextFastFFT returns the smallest value >= x whose only prime factors are
// 2, 3 and 5, searching upwards one candidate at a time. NextFastFFT(0) is
// 1. Inputs above MaxFastLength return ErrSearchExhausted.
func NextFastFFT(x uint) (uint, error) {
	return search(context.Background(), x, MaxFastLength, defaultCheckInterval)
}

// NextFastFFTContext is NextFastFFT with a caller supplied limit. The search
// stops early with ctx.Err() when ctx is cancelled.
func NextFastFFTContext(ctx context.Context, x, limit uint) (uint, error) {
	return search(ctx, x, limit, defaultCheckInterval)
}

func search(ctx context.Context, x, limit uint, interval int) (uint, error) {
	if x == 0 {
		x = 1
	}

	for n := 0; ; n++ {
		if x > limit {
			return 0, fmt.Errorf("%w: limit %d", ErrSearchExhausted, limit)
		}
		if n%interval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if IsFastLength(x) {
			return x, nil
		}
		// x++ would wrap past the limit when it sits at the top of uint.
		if x == limit {
			return 0, fmt.Errorf("%w: limit %d", ErrSearchExhausted, limit)
		}
		x++
	}
}
