package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/lovromazgon/calc/calculator"
	"github.com/lovromazgon/calc/sdk"
	"github.com/spf13/cobra"
)

func newBenchCommand(opts *options) *cobra.Command {
	var (
		workers int
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run all operations concurrently on random operands",
		Long: `Run all operations concurrently on random operands.

Every worker performs one addition, subtraction, multiplication and division
with operands between 0 and 99. Roughly half of the divisions are by zero,
those are reported and do not fail the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("workers") {
				opts.cfg.Bench.Workers = workers
			}
			if err := opts.cfg.Validate(); err != nil {
				return err
			}
			return runBench(cmd, opts, seed)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of concurrent workers (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for the random operands")

	return cmd
}

func runBench(cmd *cobra.Command, opts *options, seed uint64) error {
	ctx := cmd.Context()
	calc, closeFn, err := opts.calculator(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	n := opts.cfg.Bench.Workers
	lines := make(chan string, n*len(calculator.Ops))
	errs := make(chan error, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rnd := rand.New(rand.NewPCG(seed, uint64(i)))
			if err := benchWorker(ctx, calc, rnd, lines); err != nil {
				errs <- err
			}
		}()
	}

	go func() {
		wg.Wait()
		close(lines)
		close(errs)
	}()

	out := cmd.OutOrStdout()
	for line := range lines {
		fmt.Fprintln(out, line)
	}

	var benchErr error
	for err := range errs {
		benchErr = errors.Join(benchErr, err)
	}
	return benchErr
}

func benchWorker(ctx context.Context, calc sdk.Calculator, rnd *rand.Rand, lines chan<- string) error {
	for _, op := range calculator.Ops {
		a, b := rnd.Int64N(100), rnd.Int64N(100)
		if op == calculator.OpDivide && b > 50 {
			b = 0
		}

		c, err := sdk.Apply(ctx, calc, op, a, b)
		switch {
		case errors.Is(err, sdk.ErrDivisionByZero):
			lines <- fmt.Sprintf("%s(%d, %d) error: %v", op, a, b, err)
		case err != nil:
			return fmt.Errorf("%s(%d, %d): %w", op, a, b, err)
		default:
			lines <- fmt.Sprintf("%s(%d, %d): %d", op, a, b, c)
		}
	}
	return nil
}
