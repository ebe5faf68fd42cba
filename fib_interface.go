package fib

import (
	"errors"
	"math/big"
)

var (
	ErrInvalidArgument = errors.New("gofib: invalid argument")
	ErrOverflow        = errors.New("gofib: overflow")
	ErrMismatch        = errors.New("gofib: self-test mismatch")
)

// MaxIndex64 is the largest n for which F(n) fits in a uint64.
const MaxIndex64 = 93

type Calculator interface {
	Compute(n int) (*big.Int, error)
	Compute64(n int) (uint64, error)
}
