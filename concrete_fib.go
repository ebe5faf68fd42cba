package fib

import (
	"math/big"
)

// ConcreteCalculator holds no state; one value may be shared between
// goroutines.
type ConcreteCalculator struct{}

func (c *ConcreteCalculator) Compute(n int) (*big.Int, error) {
	return Compute(n)
}

func (c *ConcreteCalculator) Compute64(n int) (uint64, error) {
	return Compute64(n)
}
