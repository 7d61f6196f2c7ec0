// Package gabor derives lattice parameters for discrete Gabor transforms.
//
// A Gabor transform of length L with time step a and M frequency channels is
// only defined when L is a multiple of both a and M. The helpers here pick
// parameters that satisfy that constraint while staying close to what the
// caller asked for.
package gabor

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/sonido-grid/algorithms/common"
	"github.com/RyanBlaney/sonido-grid/logging"
)

var (
	// ErrInvalidDimension is returned when a signal length or image
	// dimension is not positive.
	ErrInvalidDimension = errors.New("gabor: dimensions must be positive")

	// ErrInvalidLattice is returned by Params.Validate.
	ErrInvalidLattice = errors.New("gabor: invalid lattice")
)

// Params holds the lattice chosen for a signal
type Params struct {
	A     int `json:"a"`      // time step
	M     int `json:"m"`      // number of frequency channels
	L     int `json:"l"`      // transform length, multiple of A and M
	N     int `json:"n"`      // number of time frames, L/A
	NGood int `json:"n_good"` // frames covering only the unpadded signal
}

// ImageParams chooses a lattice so that the coefficients of a signal of ls
// samples form an image close to x columns by y rows.
//
// M is bounded by the smaller of y and ls, N by the larger of x and ls. The
// time step comes from the smallest multiple of lcm(M, N) covering ls, and L
// is then the smallest multiple of lcm(a, M) covering ls. N is recomputed
// from that L, so it can differ from the request; NGood counts the frames
// that do not reach into the zero padding.
func ImageParams(ls, x, y int) (Params, error) {
	if ls <= 0 || x <= 0 || y <= 0 {
		return Params{}, fmt.Errorf("%w: ls=%d x=%d y=%d", ErrInvalidDimension, ls, x, y)
	}

	var p Params

	p.M = common.MinInt(y, ls)
	p.N = common.MaxInt(x, ls)

	// Minimum transform size for the requested grid
	k, err := common.LCM(p.M, p.N)
	if err != nil {
		return Params{}, fmt.Errorf("gabor: image grid: %w", err)
	}

	// Not the L a transform would pick, only used to fix a
	lLong, err := common.MakeLarger(ls, k)
	if err != nil {
		return Params{}, fmt.Errorf("gabor: image grid: %w", err)
	}

	p.A = lLong / p.N
	if p.A == 0 {
		return Params{}, fmt.Errorf("gabor: time step: %w", common.ErrDivisionByZero)
	}

	// a and M are fixed, so L follows the usual rule
	lSmallest, err := common.LCM(p.A, p.M)
	if err != nil {
		return Params{}, fmt.Errorf("gabor: transform length: %w", err)
	}

	p.L, err = common.MakeLarger(ls, lSmallest)
	if err != nil {
		return Params{}, fmt.Errorf("gabor: transform length: %w", err)
	}

	p.N = p.L / p.A
	p.NGood = ls / p.A

	logging.Debug("derived gabor image parameters", logging.Fields{
		"ls":     ls,
		"x":      x,
		"y":      y,
		"a":      p.A,
		"m":      p.M,
		"l":      p.L,
		"n":      p.N,
		"n_good": p.NGood,
	})

	return p, nil
}

// Validate checks the lattice invariants: L is a positive multiple of A and
// M, N equals L/A and NGood does not exceed N.
func (p Params) Validate() error {
	if p.A <= 0 || p.M <= 0 || p.L <= 0 {
		return fmt.Errorf("%w: a=%d m=%d l=%d", ErrInvalidLattice, p.A, p.M, p.L)
	}
	if p.L%p.A != 0 || p.L%p.M != 0 {
		return fmt.Errorf("%w: l=%d is not a multiple of a=%d and m=%d", ErrInvalidLattice, p.L, p.A, p.M)
	}
	if p.N != p.L/p.A {
		return fmt.Errorf("%w: n=%d, want l/a=%d", ErrInvalidLattice, p.N, p.L/p.A)
	}
	if p.NGood < 0 || p.NGood > p.N {
		return fmt.Errorf("%w: n_good=%d outside [0, %d]", ErrInvalidLattice, p.NGood, p.N)
	}
	return nil
}

// Padding returns the number of zeros appended to a signal of ls samples.
func (p Params) Padding(ls int) int {
	return p.L - ls
}

// Redundancy returns the oversampling factor M/A.
func (p Params) Redundancy() float64 {
	return float64(p.M) / float64(p.A)
}
