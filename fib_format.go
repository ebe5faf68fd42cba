package fib

import (
	"fmt"
	"math/big"
)

// Values with more digits than this are abbreviated by FormatDigits.
const compactDigits = 20

func FormatValue(v *big.Int) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}

// FormatDigits renders v in full when it is short, and as a four
// significant digit mantissa plus exponent otherwise, e.g.
// "4.346e+208 (209 digits)".
func FormatDigits(v *big.Int) string {
	s := FormatValue(v)
	if v == nil || len(s) <= compactDigits {
		return s
	}

	exp := len(s) - 1
	mantissa := s[:1] + "." + s[1:4]
	return fmt.Sprintf("%se+%d (%d digits)", mantissa, exp, len(s))
}

func (c Check) Format(result string) string {
	return fmt.Sprintf("fibonacci(%d) = %s (expected: %d)", c.N, result, c.Expected)
}
