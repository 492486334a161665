// Package sdk defines the Calculator plugin interface shared by the host and
// the Wasm plugin, together with its local and gRPC implementations.
package sdk

import (
	"context"

	"github.com/lovromazgon/calc/calculator"
)

// ErrDivisionByZero is returned when attempting to divide by zero. It is the
// same error as calculator.ErrDivisionByZero.
var ErrDivisionByZero = calculator.ErrDivisionByZero

// Calculator is the interface for the plugin.
//
// Note that it's advisable for all methods to take a context as a parameter and
// return an error, so the same interface can be used both on the host and in
// the plugin.
type Calculator interface {
	Add(ctx context.Context, a, b int64) (int64, error)
	Sub(ctx context.Context, a, b int64) (int64, error)
	Mul(ctx context.Context, a, b int64) (int64, error)
	Div(ctx context.Context, a, b int64) (int64, error)
}

// Apply calls the method of calc that corresponds to op.
func Apply(ctx context.Context, calc Calculator, op calculator.Op, a, b int64) (int64, error) {
	switch op {
	case calculator.OpAdd:
		return calc.Add(ctx, a, b)
	case calculator.OpSubtract:
		return calc.Sub(ctx, a, b)
	case calculator.OpMultiply:
		return calc.Mul(ctx, a, b)
	case calculator.OpDivide:
		return calc.Div(ctx, a, b)
	default:
		return calculator.Apply(op, a, b)
	}
}
