package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOp is returned when an operation is not one of the four supported
// operations.
var ErrUnknownOp = errors.New("unknown operation")

// Op identifies one of the calculator operations. The zero value is not a
// valid operation.
type Op int

const (
	OpAdd Op = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

// Ops lists all valid operations.
var Ops = []Op{OpAdd, OpSubtract, OpMultiply, OpDivide}

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Symbol returns the infix symbol of the operation, or "?" if the operation is
// invalid.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// Valid reports whether o is one of the supported operations.
func (o Op) Valid() bool {
	return o >= OpAdd && o <= OpDivide
}

// ParseOp parses the name, short name or symbol of an operation. Matching is
// case-insensitive.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return OpAdd, nil
	case "subtract", "sub", "-":
		return OpSubtract, nil
	case "multiply", "mul", "*", "x":
		return OpMultiply, nil
	case "divide", "div", "/":
		return OpDivide, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
	}
}

// Apply executes op on a and b.
func Apply(op Op, a, b int64) (int64, error) {
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownOp, op)
	}
}
