package fib

import (
	"fmt"
	"io"
)

type Check struct {
	N        int
	Expected uint64
}

var SelfTestTable = []Check{
	{0, 0},
	{1, 1},
	{2, 1},
	{3, 2},
	{4, 3},
	{5, 5},
	{6, 8},
	{7, 13},
	{8, 21},
	{9, 34},
	{10, 55},
}

// RunSelfTest computes every entry of SelfTestTable with calc and writes
// one line per entry to w. It stops at the first mismatch.
func RunSelfTest(w io.Writer, calc Calculator) error {
	for _, check := range SelfTestTable {
		result, err := calc.Compute(check.N)
		if err != nil {
			return err
		}

		fmt.Fprintln(w, check.Format(FormatValue(result))) //nolint:errcheck

		if result == nil || !result.IsUint64() || result.Uint64() != check.Expected {
			return fmt.Errorf("%w: Test failed for n=%d", ErrMismatch, check.N)
		}
	}

	fmt.Fprintln(w, "All tests passed!") //nolint:errcheck
	return nil
}
