package gabor

import (
	"fmt"

	"github.com/RyanBlaney/sonido-grid/algorithms/common"
)

// WfacRealSize returns the number of elements in the window factorization
// of a real signal with transform length L, time step a and M channels.
// Only about half of the d = (L/M)/p factorization blocks are kept, since
// the rest follow by conjugate symmetry.
func WfacRealSize(L, a, M int) (int, error) {
	if M == 0 {
		return 0, fmt.Errorf("gabor: wfac size: %w", common.ErrDivisionByZero)
	}

	b := L / M

	c, _, _, err := common.GCD(a, M)
	if err != nil {
		return 0, fmt.Errorf("gabor: wfac size: %w", err)
	}

	p := a / c
	if p == 0 {
		return 0, fmt.Errorf("gabor: wfac size: %w", common.ErrDivisionByZero)
	}
	d := b / p

	// floor
	d2 := d/2 + 1

	return d2 * p * M, nil
}
