package calculator

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestParseOp(t *testing.T) {
	testCases := []struct {
		in   string
		want Op
	}{
		{in: "add", want: OpAdd},
		{in: "+", want: OpAdd},
		{in: "ADD", want: OpAdd},
		{in: "subtract", want: OpSubtract},
		{in: "sub", want: OpSubtract},
		{in: "-", want: OpSubtract},
		{in: "multiply", want: OpMultiply},
		{in: "mul", want: OpMultiply},
		{in: "*", want: OpMultiply},
		{in: "x", want: OpMultiply},
		{in: "divide", want: OpDivide},
		{in: " div ", want: OpDivide},
		{in: "/", want: OpDivide},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			is := is.New(t)
			got, err := ParseOp(tc.in)
			is.NoErr(err)
			is.Equal(got, tc.want)
		})
	}

	t.Run("should fail on unknown operation", func(t *testing.T) {
		is := is.New(t)
		_, err := ParseOp("pow")
		is.True(errors.Is(err, ErrUnknownOp))
	})
}

func TestOp_String(t *testing.T) {
	is := is.New(t)
	for _, op := range Ops {
		parsed, err := ParseOp(op.String())
		is.NoErr(err)
		is.Equal(parsed, op) // String output parses back

		parsed, err = ParseOp(op.Symbol())
		is.NoErr(err)
		is.Equal(parsed, op) // Symbol output parses back
	}
	is.Equal(Op(0).String(), "Op(0)")
	is.Equal(Op(0).Symbol(), "?")
	is.True(!Op(0).Valid())
	is.True(!Op(5).Valid())
}

func TestApply(t *testing.T) {
	t.Run("should dispatch to the operation", func(t *testing.T) {
		testCases := []struct {
			op   Op
			a, b int64
			want int64
		}{
			{op: OpAdd, a: 1, b: 2, want: 3},
			{op: OpSubtract, a: 1, b: 2, want: -1},
			{op: OpMultiply, a: 2, b: 3, want: 6},
			{op: OpDivide, a: 4, b: 2, want: 2},
			{op: OpDivide, a: 8, b: 4, want: 2},
		}
		for _, tc := range testCases {
			is := is.New(t)
			got, err := Apply(tc.op, tc.a, tc.b)
			is.NoErr(err)
			is.Equal(got, tc.want)
		}
	})

	t.Run("should return division by zero", func(t *testing.T) {
		is := is.New(t)
		_, err := Apply(OpDivide, 10, 0)
		is.True(errors.Is(err, ErrDivisionByZero))
	})

	t.Run("should reject invalid operation", func(t *testing.T) {
		is := is.New(t)
		_, err := Apply(Op(42), 1, 2)
		is.True(errors.Is(err, ErrUnknownOp))
	})
}
