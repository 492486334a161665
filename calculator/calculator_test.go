package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/matryer/is"
)

// operands covers signs, zero, one and the int64 extremes.
var operands = []int64{
	0, 1, -1, 2, -2, 3, 7, -7, 10, 100, -100, 12345, -98765,
	math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64,
}

func TestAdd(t *testing.T) {
	is := is.New(t)
	is.Equal(Add(1, 2), int64(3))
	is.Equal(Add(-1, 1), int64(0))
	is.Equal(Add(0, 0), int64(0))
}

func TestSubtract(t *testing.T) {
	is := is.New(t)
	is.Equal(Subtract(1, 2), int64(-1))
	is.Equal(Subtract(5, 3), int64(2))
	is.Equal(Subtract(0, 0), int64(0))
}

func TestMultiply(t *testing.T) {
	is := is.New(t)
	is.Equal(Multiply(2, 3), int64(6))
	is.Equal(Multiply(-2, 3), int64(-6))
	is.Equal(Multiply(0, 5), int64(0))
}

func TestDivide(t *testing.T) {
	testCases := []struct {
		a, b int64
		want int64
	}{
		{a: 4, b: 2, want: 2},
		{a: 8, b: 4, want: 2},
		{a: 7, b: 2, want: 3},
		{a: -7, b: 2, want: -3},
		{a: 7, b: -2, want: -3},
		{a: -7, b: -2, want: 3},
		{a: 0, b: 5, want: 0},
		{a: math.MinInt64, b: -1, want: math.MinInt64},
	}
	for _, tc := range testCases {
		is := is.New(t)
		got, err := Divide(tc.a, tc.b)
		is.NoErr(err)
		is.Equal(got, tc.want) // quotient truncated toward zero
	}
}

func TestDivide_ByZero(t *testing.T) {
	for _, a := range []int64{1, 10, 0, -3, math.MaxInt64, math.MinInt64} {
		is := is.New(t)
		got, err := Divide(a, 0)
		is.True(errors.Is(err, ErrDivisionByZero))
		is.Equal(got, int64(0))
	}
}

func TestOverflowWrapsAround(t *testing.T) {
	is := is.New(t)
	is.Equal(Add(math.MaxInt64, 1), int64(math.MinInt64))
	is.Equal(Subtract(math.MinInt64, 1), int64(math.MaxInt64))
	is.Equal(Multiply(math.MaxInt64, 2), int64(-2))
}

func TestProperties(t *testing.T) {
	is := is.New(t)
	for _, a := range operands {
		is.Equal(Add(a, 0), a)      // additive identity
		is.Equal(Multiply(a, 1), a) // multiplicative identity

		for _, b := range operands {
			is.Equal(Add(a, b), Add(b, a))           // add commutes
			is.Equal(Multiply(a, b), Multiply(b, a)) // multiply commutes
			is.Equal(Subtract(a, b), a-b)

			if b == 0 {
				continue
			}
			q, err := Divide(a, b)
			is.NoErr(err)
			is.Equal(q, a/b)
		}
	}
}
