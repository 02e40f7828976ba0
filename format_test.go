// Copyright 2025 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v        float64
		expected string
	}{
		{0, "0.000000"},
		{math.Copysign(0, -1), "-0.000000"},
		{1, "1.000000"},
		{2, "2.000000"},
		{0.15625, "0.156250"},
		{-1.5, "-1.500000"},
		{float64(math.Float32frombits(0x40490FDB)), "3.141593"},
		{-123.456, "-123.456000"},
		// subnormals are far below the printable precision
		{math.Ldexp(1, -149), "0.000000"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.expected, Format(test.v))
			a.Equal(test.expected, strconv.FormatFloat(test.v, 'f', resultDigits, 64))
		})
	}
}

func BenchmarkFormat(b *testing.B) {
	v := MustParse("01000000010010010000111111011011")
	for i := 0; i < b.N; i++ {
		Format(v)
	}
}

func BenchmarkFormatDecimal(b *testing.B) {
	d := decimal.NewFromFloat(3.1415927)
	for i := 0; i < b.N; i++ {
		d.StringFixed(resultDigits)
	}
}

func BenchmarkFormatOtherFixed(b *testing.B) {
	f := of.NewF(3.1415927)
	for i := 0; i < b.N; i++ {
		_ = f.String()
	}
}
