package main

import (
	"fmt"
	"math/big"
	"os"

	fib "github.com/cloudfoundry/gofib"
)

// offByOne returns F(n+1) from n = 5 onward.
type offByOne struct {
	fib.ConcreteCalculator
}

func (c *offByOne) Compute(n int) (*big.Int, error) {
	if n >= 5 {
		n++
	}
	return c.ConcreteCalculator.Compute(n)
}

func main() {
	if err := fib.RunSelfTest(os.Stdout, &offByOne{}); err != nil {
		fmt.Fprintln(os.Stderr, err) //nolint:errcheck
		os.Exit(1)
	}
}
