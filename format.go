// Copyright 2025 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"math"

	"github.com/shopspring/decimal"
)

// resultDigits is the number of fractional digits in formatted results.
const resultDigits = 6

// Format renders a decoded value in fixed-point notation with six
// fractional digits. The sign of a negative zero is preserved.
// v must be finite; Decode never produces anything else.
func Format(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(resultDigits)
	if v == 0 && math.Signbit(v) {
		s = "-" + s
	}
	return s
}
