package grpc

import (
	"context"
	"testing"

	calculatorv1 "github.com/lovromazgon/calc/sdk/proto/calculator/v1"
	"github.com/matryer/is"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLocalClientConn(t *testing.T) {
	ctx := context.Background()
	client := calculatorv1.NewCalculatorPluginClient(NewLocalClient(newTestServer()))

	t.Run("should invoke the server", func(t *testing.T) {
		is := is.New(t)
		resp, err := client.Add(ctx, &calculatorv1.AddRequest{A: 40, B: 2})
		is.NoErr(err)
		is.Equal(resp.GetC(), int64(42))
	})

	t.Run("should return server status", func(t *testing.T) {
		is := is.New(t)
		_, err := client.Div(ctx, &calculatorv1.DivRequest{A: 10, B: 0})
		is.Equal(status.Code(err), codes.InvalidArgument)
	})

	t.Run("should respect canceled context", func(t *testing.T) {
		is := is.New(t)
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := client.Add(ctx, &calculatorv1.AddRequest{A: 1, B: 2})
		is.Equal(status.Code(err), codes.Canceled)
	})

	t.Run("should reject non proto messages", func(t *testing.T) {
		is := is.New(t)
		conn := NewLocalClient(newTestServer())
		err := conn.Invoke(ctx, calculatorv1.CalculatorPlugin_Add_FullMethodName, "req", &calculatorv1.AddResponse{})
		is.True(err != nil)
		err = conn.Invoke(ctx, calculatorv1.CalculatorPlugin_Add_FullMethodName, &calculatorv1.AddRequest{}, "resp")
		is.True(err != nil)
	})

	t.Run("should not support streams", func(t *testing.T) {
		is := is.New(t)
		_, err := NewLocalClient(newTestServer()).NewStream(ctx, nil, "")
		is.True(err != nil)
	})
}
