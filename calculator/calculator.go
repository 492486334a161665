// Package calculator provides integer arithmetic with an explicit error for
// division by zero.
//
// All operations work on int64 and wrap around on overflow, the same way Go's
// native integer arithmetic does. The functions are pure and safe for
// concurrent use.
package calculator

import "errors"

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Add returns a + b.
func Add(a, b int64) int64 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b int64) int64 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b int64) int64 {
	return a * b
}

// Divide returns a / b truncated toward zero. It returns ErrDivisionByZero if
// b is 0. Divide(math.MinInt64, -1) wraps around to math.MinInt64.
func Divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}
