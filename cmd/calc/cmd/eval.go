package cmd

import (
	"fmt"
	"strconv"

	"github.com/lovromazgon/calc/calculator"
	"github.com/lovromazgon/calc/sdk"
	"github.com/spf13/cobra"
)

var operationCommands = []struct {
	use     string
	aliases []string
	op      calculator.Op
}{
	{use: "add", op: calculator.OpAdd},
	{use: "sub", aliases: []string{"subtract"}, op: calculator.OpSubtract},
	{use: "mul", aliases: []string{"multiply"}, op: calculator.OpMultiply},
	{use: "div", aliases: []string{"divide"}, op: calculator.OpDivide},
}

func newOperationCommands(opts *options) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(operationCommands))
	for _, oc := range operationCommands {
		cmds = append(cmds, &cobra.Command{
			Use:     oc.use + " A B",
			Aliases: oc.aliases,
			Short:   fmt.Sprintf("Print A %s B", oc.op.Symbol()),
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, opts, oc.op, args[0], args[1])
			},
		})
	}
	return cmds
}

func newEvalCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval OP A B",
		Short: "Evaluate an operation given by name or symbol",
		Long: `Evaluate an operation given by name or symbol.

Examples:
  calc eval + 1 2
  calc eval divide 8 4
  calc eval -- x -2 3`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := calculator.ParseOp(args[0])
			if err != nil {
				return err
			}
			return runOperation(cmd, opts, op, args[1], args[2])
		},
	}
}

func runOperation(cmd *cobra.Command, opts *options, op calculator.Op, rawA, rawB string) error {
	a, b, err := parseOperands(rawA, rawB)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	calc, closeFn, err := opts.calculator(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	r, err := sdk.Apply(ctx, calc, op, a, b)
	if err != nil {
		return fmt.Errorf("%s(%d, %d): %w", op, a, b, err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), r)
	return err
}

func parseOperands(rawA, rawB string) (int64, int64, error) {
	a, err := strconv.ParseInt(rawA, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid operand %q: %w", rawA, err)
	}
	b, err := strconv.ParseInt(rawB, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid operand %q: %w", rawB, err)
	}
	return a, b, nil
}
