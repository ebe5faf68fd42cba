package fib

import (
	"fmt"
	"math/big"
)

// Compute returns the nth Fibonacci number, zero-indexed, with F(0)=0 and
// F(1)=1. The result is exact for any non-negative n.
func Compute(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative index %d", ErrInvalidArgument, n)
	}
	if n <= 1 {
		return big.NewInt(int64(n)), nil
	}

	a, b := big.NewInt(0), big.NewInt(1)
	for i := 2; i <= n; i++ {
		// a, b = b, a+b
		a.Add(a, b)
		a, b = b, a
	}

	return b, nil
}

// Compute64 is Compute on native integers. It fails with ErrOverflow
// past MaxIndex64 instead of wrapping.
func Compute64(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative index %d", ErrInvalidArgument, n)
	}
	if n > MaxIndex64 {
		return 0, fmt.Errorf("%w: F(%d) does not fit in 64 bits", ErrOverflow, n)
	}
	if n <= 1 {
		return uint64(n), nil
	}

	var a, b uint64 = 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}

	return b, nil
}
