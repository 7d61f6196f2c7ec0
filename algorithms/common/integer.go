package common

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Integer helpers shared by the transform sizing code. None of them allocate
// and all are safe for concurrent use.

// Max returns the larger of a and b.
func Max[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// MaxSize and MinSize work on size counters.
func MaxSize(a, b uint) uint { return Max(a, b) }
func MinSize(a, b uint) uint { return Min(a, b) }

// MaxDiff and MinDiff work on signed offsets and differences.
func MaxDiff(a, b int64) int64 { return Max(a, b) }
func MinDiff(a, b int64) int64 { return Min(a, b) }

// MaxInt and MinInt work on plain ints.
func MaxInt(a, b int) int { return Max(a, b) }
func MinInt(a, b int) int { return Min(a, b) }

// GCD runs the extended Euclidean algorithm on a and b. It returns the
// greatest common divisor g together with Bézout coefficients r and s such
// that
//
//	g == r*a + s*b
//
// g is always positive. When the plain recurrence ends on a negative value
// (inputs of mixed or negative sign) g, r and s are negated together, which
// keeps the identity intact. GCD(0, 0) has no divisor and returns
// ErrDivisionByZero; a divisor of math.MinInt cannot be made positive and
// returns ErrOverflow.
func GCD(a, b int) (g, r, s int, err error) {
	a1, b1 := a, b
	a2, b2 := 1, 0
	a3, b3 := 0, 1

	for b1 != 0 {
		d := a1 / b1
		a1, b1 = b1, a1-d*b1
		a2, b2 = b2, a2-d*b2
		a3, b3 = b3, a3-d*b3
	}

	if a1 == 0 {
		return 0, 0, 0, arithErr("gcd", ErrDivisionByZero, a, b)
	}
	if a1 == math.MinInt {
		return 0, 0, 0, arithErr("gcd", ErrOverflow, a, b)
	}
	if a1 < 0 {
		a1, a2, a3 = -a1, -a2, -a3
	}
	return a1, a2, a3, nil
}

// LCM returns the least common multiple of a and b, a*b/gcd(a, b).
// Both operands must be non-negative and not both zero.
func LCM(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, arithErr("lcm", ErrNegativeOperand, a, b)
	}

	g, _, _, err := GCD(a, b)
	if err != nil {
		return 0, arithErr("lcm", ErrDivisionByZero, a, b)
	}

	// Divide first so the product only overflows when the result does.
	hi, lo := bits.Mul64(uint64(a/g), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, arithErr("lcm", ErrOverflow, a, b)
	}
	return int(lo), nil
}

// MakeLarger returns the smallest multiple of K that is >= L.
func MakeLarger(L, K int) (int, error) {
	if K == 0 {
		return 0, arithErr("makelarger", ErrDivisionByZero, L, K)
	}
	if L < 0 || K < 0 {
		return 0, arithErr("makelarger", ErrNegativeOperand, L, K)
	}

	// floor
	o := (L / K) * K

	// ceil
	if L%K > 0 {
		if o > math.MaxInt-K {
			return 0, arithErr("makelarger", ErrOverflow, L, K)
		}
		o += K
	}
	return o, nil
}

// GCDM returns the greatest common divisor of all values.
func GCDM(values ...int) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	res := values[0]
	if len(values) == 1 {
		if res == 0 {
			return 0, arithErr("gcd", ErrDivisionByZero, res)
		}
		if res < 0 {
			res = -res
		}
		return res, nil
	}

	for _, v := range values[1:] {
		g, _, _, err := GCD(res, v)
		if err != nil {
			return 0, err
		}
		res = g
	}
	return res, nil
}

// LCMM returns the least common multiple of all values.
func LCMM(values ...int) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	res := values[0]
	if res < 0 {
		return 0, arithErr("lcm", ErrNegativeOperand, res)
	}

	for _, v := range values[1:] {
		l, err := LCM(res, v)
		if err != nil {
			return 0, err
		}
		res = l
	}
	return res, nil
}
