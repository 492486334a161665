package sdk

import (
	"context"
	"log/slog"

	"github.com/lovromazgon/calc/calculator"
)

// LocalOption configures a Local calculator.
type LocalOption func(*Local)

// WithLocalLogger sets the logger used to trace calculations.
func WithLocalLogger(l *slog.Logger) LocalOption {
	return func(c *Local) { c.logger = l }
}

// Local is a Calculator that computes results in the current process. It is
// the implementation served by the plugin.
type Local struct {
	logger *slog.Logger
}

var _ Calculator = (*Local)(nil)

func NewLocal(opts ...LocalOption) *Local {
	c := &Local{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Local) Add(ctx context.Context, a, b int64) (int64, error) {
	return c.apply(ctx, calculator.OpAdd, a, b)
}

func (c *Local) Sub(ctx context.Context, a, b int64) (int64, error) {
	return c.apply(ctx, calculator.OpSubtract, a, b)
}

func (c *Local) Mul(ctx context.Context, a, b int64) (int64, error) {
	return c.apply(ctx, calculator.OpMultiply, a, b)
}

func (c *Local) Div(ctx context.Context, a, b int64) (int64, error) {
	return c.apply(ctx, calculator.OpDivide, a, b)
}

func (c *Local) apply(ctx context.Context, op calculator.Op, a, b int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r, err := calculator.Apply(op, a, b)
	if err != nil {
		return 0, err
	}

	c.logger.DebugContext(ctx, "calculated", "op", op, "a", a, "b", b, "result", r)
	return r, nil
}
