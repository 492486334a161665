package frame

import (
	"testing"

	calculatorv1 "github.com/lovromazgon/calc/sdk/proto/calculator/v1"
	"github.com/matryer/is"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestFrame(t *testing.T) {
	t.Run("should decode a message frame", func(t *testing.T) {
		is := is.New(t)
		out, err := EncodeResponse(nil, &calculatorv1.AddResponse{C: -42})
		is.NoErr(err)
		is.Equal(out[0], OK)

		var resp calculatorv1.AddResponse
		is.NoErr(Decode(out, &resp))
		is.Equal(resp.GetC(), int64(-42))
	})

	t.Run("should decode an empty message frame", func(t *testing.T) {
		is := is.New(t)
		out, err := EncodeResponse(nil, &calculatorv1.AddResponse{})
		is.NoErr(err)
		is.Equal(len(out), 1) // zero values are not encoded

		var resp calculatorv1.AddResponse
		is.NoErr(Decode(out, &resp))
		is.Equal(resp.GetC(), int64(0))
	})

	t.Run("should return status frame as error", func(t *testing.T) {
		is := is.New(t)
		out, err := EncodeStatus(nil, status.New(codes.InvalidArgument, "division by zero"))
		is.NoErr(err)
		is.Equal(out[0], Status)

		err = Decode(out, &calculatorv1.DivResponse{})
		st, ok := status.FromError(err)
		is.True(ok)
		is.Equal(st.Code(), codes.InvalidArgument)
		is.Equal(st.Message(), "division by zero")
	})

	t.Run("should reuse the buffer", func(t *testing.T) {
		is := is.New(t)
		buf := make([]byte, 0, 64)
		out, err := EncodeResponse(buf, &calculatorv1.AddResponse{C: 1})
		is.NoErr(err)
		is.True(&out[0] == &buf[:1][0]) // same backing array
	})

	t.Run("should fail on empty response", func(t *testing.T) {
		is := is.New(t)
		err := Decode(nil, &calculatorv1.AddResponse{})
		is.True(err != nil)
	})

	t.Run("should fail on unknown frame", func(t *testing.T) {
		is := is.New(t)
		err := Decode([]byte{0x7f}, &calculatorv1.AddResponse{})
		is.True(err != nil)
	})

	t.Run("should fail on non proto message", func(t *testing.T) {
		is := is.New(t)
		_, err := EncodeResponse(nil, struct{}{})
		is.True(err != nil)
	})
}
