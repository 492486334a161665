package wasm

import (
	"testing"

	"github.com/lovromazgon/calc/internal/frame"
	calculatorv1 "github.com/lovromazgon/calc/sdk/proto/calculator/v1"
	"github.com/matryer/is"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestInit(t *testing.T) {
	t.Run("should answer with a status before Init", func(t *testing.T) {
		is := is.New(t)
		resp := handler.Handle("/calculator.v1.CalculatorPlugin/Add", nil)

		err := frame.Decode(resp, &calculatorv1.AddResponse{})
		is.Equal(status.Code(err), codes.FailedPrecondition)
		is.Equal(status.Convert(err).Message(), errNoHandler.Message())
	})

	t.Run("should forward calls to the handler", func(t *testing.T) {
		is := is.New(t)
		prev := handler
		t.Cleanup(func() { handler = prev })

		var gotMethod string
		Init(HandlerFunc(func(method string, req []byte) []byte {
			gotMethod = method
			return req
		}))

		resp := handler.Handle("/svc/Method", []byte{frame.OK})
		is.Equal(gotMethod, "/svc/Method")
		is.Equal(resp, []byte{frame.OK})
	})
}
