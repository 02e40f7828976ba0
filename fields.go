// Copyright 2025 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"math"
	"strings"
)

// Fields holds the three bit fields of a single-precision encoding.
// Each field is a string of '0' and '1' characters owned by the caller,
// with no references back to the input it was split from.
type Fields struct {
	Sign     string // 1 bit, 0 = positive, 1 = negative
	Exponent string // 8 bits, biased by 127
	Mantissa string // 23 bits, the fraction after the implicit leading 1
}

// String returns the decomposition in a form suitable for diagnostics.
func (f Fields) String() string {
	var builder strings.Builder
	builder.WriteString("Sign: ")
	builder.WriteString(f.Sign)
	builder.WriteString(" Exponent: ")
	builder.WriteString(f.Exponent)
	builder.WriteString(" Mantissa: ")
	builder.WriteString(f.Mantissa)
	return builder.String()
}

// Uint32 returns the raw 32-bit word the fields describe, the sign bit at
// the most significant position. The result is unspecified for malformed
// fields.
func (f Fields) Uint32() uint32 {
	return uint32(parseUintBits(f.Sign + f.Exponent + f.Mantissa))
}

// Float32 interprets the fields with a direct bit-cast.
// Unlike Decode, it yields infinities and NaNs for special exponents.
func (f Fields) Float32() float32 {
	return math.Float32frombits(f.Uint32())
}
