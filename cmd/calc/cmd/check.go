package cmd

import (
	"fmt"

	"github.com/lovromazgon/calc/internal/scenario"
	"github.com/spf13/cobra"
)

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Run the cases of YAML scenario files",
		Long: `Run the cases of YAML scenario files against the calculator.

A scenario file lists operations with either the expected result or the
expected error:

  name: calculator
  cases:
    - name: add two positive numbers
      op: add
      a: 1
      b: 2
      want: 3
    - name: divide by zero
      op: divide
      a: 1
      b: 0
      error: division by zero

Every case is printed with its verdict, followed by a summary that lists the
operations no case exercised. The command fails if any case fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			calc, closeFn, err := opts.calculator(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				s, err := scenario.Load(path)
				if err != nil {
					return err
				}

				report, err := scenario.Run(ctx, calc, s)
				if err != nil {
					return err
				}
				for _, res := range report.Results {
					fmt.Fprintln(out, res)
				}
				fmt.Fprintf(out, "%s: %d passed, %d failed", path, report.Passed(), report.Failed())
				if uncovered := report.Uncovered(); len(uncovered) > 0 {
					fmt.Fprintf(out, ", not covered: %v", uncovered)
				}
				fmt.Fprintln(out)

				opts.logger.DebugContext(ctx, "checked scenarios", "path", path, "suite", s.Name)
				failed += report.Failed()
			}

			if failed > 0 {
				return fmt.Errorf("%d scenario cases failed", failed)
			}
			return nil
		},
	}
}
