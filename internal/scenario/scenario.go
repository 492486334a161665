// Package scenario runs calculator cases described in YAML files against a
// Calculator and reports which cases passed and which operations they covered.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/lovromazgon/calc/calculator"
	"github.com/lovromazgon/calc/sdk"
	"gopkg.in/yaml.v3"
)

// errorsByName lists the errors a case can expect.
var errorsByName = map[string]error{
	calculator.ErrDivisionByZero.Error(): calculator.ErrDivisionByZero,
}

// Suite is a named list of cases.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case is one operation and its expected outcome. Exactly one of Want and
// Error is set.
type Case struct {
	Name  string `yaml:"name"`
	Op    string `yaml:"op"`
	A     int64  `yaml:"a"`
	B     int64  `yaml:"b"`
	Want  *int64 `yaml:"want,omitempty"`
	Error string `yaml:"error,omitempty"`
}

// Load reads and validates a suite from a YAML file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a suite.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every case names a known operation and a single
// expected outcome.
func (s *Suite) Validate() error {
	if len(s.Cases) == 0 {
		return errors.New("scenarios: no cases")
	}
	for i, c := range s.Cases {
		if _, err := calculator.ParseOp(c.Op); err != nil {
			return fmt.Errorf("case %d (%s): %w", i, c.Name, err)
		}
		if (c.Want == nil) == (c.Error == "") {
			return fmt.Errorf("case %d (%s): exactly one of want and error must be set", i, c.Name)
		}
		if _, ok := errorsByName[c.Error]; c.Error != "" && !ok {
			return fmt.Errorf("case %d (%s): unknown error %q", i, c.Name, c.Error)
		}
	}
	return nil
}

// Result is the outcome of running a case.
type Result struct {
	Case   Case
	Op     calculator.Op
	Got    int64
	Err    error
	Passed bool
}

func (r Result) String() string {
	verdict := "FAIL"
	if r.Passed {
		verdict = "PASS"
	}
	call := fmt.Sprintf("%s(%d, %d)", r.Op, r.Case.A, r.Case.B)
	if r.Err != nil {
		return fmt.Sprintf("%s %s: %s error: %v", verdict, r.Case.Name, call, r.Err)
	}
	return fmt.Sprintf("%s %s: %s = %d", verdict, r.Case.Name, call, r.Got)
}

// Report collects the results of a suite.
type Report struct {
	Results []Result
	// Coverage counts the cases run per operation.
	Coverage map[calculator.Op]int
}

func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

func (r Report) Failed() int { return len(r.Results) - r.Passed() }

// Uncovered returns the operations no case exercised.
func (r Report) Uncovered() []calculator.Op {
	var out []calculator.Op
	for _, op := range calculator.Ops {
		if r.Coverage[op] == 0 {
			out = append(out, op)
		}
	}
	return out
}

// Run executes every case of the suite against calc. It stops early only if
// ctx is done.
func Run(ctx context.Context, calc sdk.Calculator, s *Suite) (Report, error) {
	report := Report{Coverage: make(map[calculator.Op]int)}
	for _, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		op, err := calculator.ParseOp(c.Op)
		if err != nil {
			return report, err
		}
		got, err := sdk.Apply(ctx, calc, op, c.A, c.B)

		res := Result{Case: c, Op: op, Got: got, Err: err}
		if c.Want != nil {
			res.Passed = err == nil && got == *c.Want
		} else {
			res.Passed = errors.Is(err, errorsByName[c.Error])
		}

		report.Results = append(report.Results, res)
		report.Coverage[op]++
	}
	return report, nil
}
