package common

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the integer helpers.
var (
	// ErrDivisionByZero is returned when an operation would divide or take a
	// remainder by zero, e.g. MakeLarger with K == 0 or LCM(0, 0).
	ErrDivisionByZero = errors.New("common: division by zero")

	// ErrNegativeOperand is returned when an operand must be non-negative.
	ErrNegativeOperand = errors.New("common: negative operand")

	// ErrOverflow is returned if a result would not fit in an int.
	ErrOverflow = errors.New("common: integer overflow")

	// ErrEmptyInput is returned by the variadic folds when given no values.
	ErrEmptyInput = errors.New("common: empty input")
)

// ArithmeticError records the operation and operands that produced an
// arithmetic fault.
type ArithmeticError struct {
	Op       string
	Operands []int
	Err      error
}

func (e *ArithmeticError) Error() string {
	ops := make([]string, len(e.Operands))
	for i, v := range e.Operands {
		ops[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("%s(%s): %v", e.Op, strings.Join(ops, ", "), e.Err)
}

func (e *ArithmeticError) Unwrap() error {
	return e.Err
}

func arithErr(op string, err error, operands ...int) error {
	return &ArithmeticError{Op: op, Operands: operands, Err: err}
}
