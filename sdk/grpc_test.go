package sdk

import (
	"context"
	"errors"
	"testing"

	hgrpc "github.com/lovromazgon/calc/grpc"
	"github.com/lovromazgon/calc/internal/frame"
	"github.com/lovromazgon/calc/internal/wasmtest"
	calculatorv1 "github.com/lovromazgon/calc/sdk/proto/calculator/v1"
	"github.com/matryer/is"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatusError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "division by zero", err: ErrDivisionByZero, want: codes.InvalidArgument},
		{name: "wrapped division by zero", err: errors.Join(errors.New("div"), ErrDivisionByZero), want: codes.InvalidArgument},
		{name: "canceled", err: context.Canceled, want: codes.Canceled},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: codes.DeadlineExceeded},
		{name: "status", err: status.Error(codes.NotFound, "nope"), want: codes.NotFound},
		{name: "plain error", err: errors.New("boom"), want: codes.Unknown},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(status.Code(toStatusError(tc.err)), tc.want)
		})
	}
}

// failingCalculator returns err from every method.
type failingCalculator struct {
	err error
}

func (c failingCalculator) Add(context.Context, int64, int64) (int64, error) { return 0, c.err }
func (c failingCalculator) Sub(context.Context, int64, int64) (int64, error) { return 0, c.err }
func (c failingCalculator) Mul(context.Context, int64, int64) (int64, error) { return 0, c.err }
func (c failingCalculator) Div(context.Context, int64, int64) (int64, error) { return 0, c.err }

func newFailingClient(err error) Calculator {
	srv := hgrpc.NewServer(hgrpc.WithLogger(discardLogger()))
	RegisterCalculator(srv, failingCalculator{err: err})
	return NewCalculatorFromConn(hgrpc.NewLocalClient(srv))
}

func TestCalculatorServer_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("should map division by zero from any implementation", func(t *testing.T) {
		is := is.New(t)
		client := newFailingClient(ErrDivisionByZero)

		_, err := client.Div(ctx, 1, 2)
		is.True(errors.Is(err, ErrDivisionByZero))
	})

	t.Run("should not map other errors to division by zero", func(t *testing.T) {
		is := is.New(t)
		client := newFailingClient(errors.New("boom"))

		_, err := client.Div(ctx, 1, 0)
		is.True(!errors.Is(err, ErrDivisionByZero))
		is.Equal(status.Code(err), codes.Unknown)

		_, err = client.Add(ctx, 1, 2)
		is.Equal(status.Code(err), codes.Unknown)
	})
}

func TestInstantiateModuleAndCalculator(t *testing.T) {
	ctx := context.Background()

	instantiate := func(t *testing.T, source []byte) (api.Module, Calculator, error) {
		t.Helper()
		r := wazero.NewRuntime(ctx)
		t.Cleanup(func() { _ = r.Close(ctx) })
		return InstantiateModuleAndCalculator(ctx, r, source, hgrpc.WithLogger(discardLogger()))
	}

	t.Run("should return result from the plugin", func(t *testing.T) {
		is := is.New(t)
		resp, err := frame.EncodeResponse(nil, &calculatorv1.DivResponse{C: 2})
		is.NoErr(err)

		module, calc, err := instantiate(t, wasmtest.Module(resp))
		is.NoErr(err)
		defer module.Close(ctx)

		got, err := calc.Div(ctx, 4, 2)
		is.NoErr(err)
		is.Equal(got, int64(2))
	})

	t.Run("should map division by zero from the plugin", func(t *testing.T) {
		is := is.New(t)
		resp, err := frame.EncodeStatus(nil, status.New(codes.InvalidArgument, ErrDivisionByZero.Error()))
		is.NoErr(err)

		module, calc, err := instantiate(t, wasmtest.Module(resp))
		is.NoErr(err)
		defer module.Close(ctx)

		_, err = calc.Div(ctx, 1, 0)
		is.True(errors.Is(err, ErrDivisionByZero))
	})

	t.Run("should fail on invalid module", func(t *testing.T) {
		is := is.New(t)
		_, _, err := instantiate(t, []byte("not a wasm module"))
		is.True(err != nil)
	})

	t.Run("should fail on module without plugin exports", func(t *testing.T) {
		is := is.New(t)
		module, calc, err := instantiate(t, wasmtest.Module(nil, wasmtest.WithoutExport(wasmtest.MallocExport)))
		is.True(err != nil)
		is.Equal(module, nil)
		is.Equal(calc, nil)
	})
}
