// Copyright 2025 Aleksandr Demakin. All rights reserved.

// Package binfloat decodes textual 32-bit IEEE 754 representations,
// strings of '0' and '1' characters, into decimal values.
// An encoding is split into its sign, exponent, and mantissa fields,
// which are then interpreted as
//	(-1)^sign * 2^(exponent-127) * (1 + mantissa)
// for normal numbers. Encodings of infinities and NaNs are reported
// as errors, as they have no decimal representation.
package binfloat

import (
	"errors"
	"fmt"
	"math"

	"github.com/avdva/binfloat/internal/bitfield"
)

const (
	encodedBits  = 32
	signBits     = 1
	exponentBits = 8
	mantissaBits = 23

	bias        = 127
	maxExponent = 1<<exponentBits - 1
)

// ErrNotFinite is returned by Decode and Parse if the exponent field is all
// ones, so the input encodes an infinity or a NaN.
var ErrNotFinite = errors.New("not a finite number")

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

// Split partitions a 32-character binary string into sign, exponent, and
// mantissa fields. The input must consist of exactly 32 '0' or '1'
// characters, anything else is reported as an error with the offending
// position.
func Split(input string) (Fields, error) {
	if len(input) != encodedBits {
		return Fields{}, fmt.Errorf("input must be %d bits long, got %d", encodedBits, len(input))
	}
	if err := checkBits(input); err != nil {
		return Fields{}, fmt.Errorf("parsing failed: %w", err)
	}
	words := bitfield.Pack(input)
	return Fields{
		Sign:     bitfield.Slice(words, encodedBits, 0, signBits),
		Exponent: bitfield.Slice(words, encodedBits, signBits, exponentBits),
		Mantissa: bitfield.Slice(words, encodedBits, signBits+exponentBits, mantissaBits),
	}, nil
}

// Decode reconstructs the decimal value for given fields.
// A special exponent, all ones, yields an error matching ErrNotFinite,
// never a numeric result, so a legitimate zero value cannot be confused
// with an encoded infinity or NaN.
// An all-zeros exponent is decoded as a subnormal: the minimum exponent
// and no implicit leading 1.
func Decode(fields Fields) (float64, error) {
	if err := checkFields(fields); err != nil {
		return 0, err
	}
	sign := parseUintBits(fields.Sign)
	exponent := parseUintBits(fields.Exponent)
	fraction := parseFracBits(fields.Mantissa)

	signPart := 1.0
	if sign == 1 {
		signPart = -1
	}
	switch exponent {
	case maxExponent:
		kind := "NaN"
		if fraction == 0 {
			kind = "infinity"
		}
		return 0, fmt.Errorf("%s: %w", kind, ErrNotFinite)
	case 0:
		return signPart * math.Ldexp(fraction, 1-bias), nil
	default:
		return signPart * math.Ldexp(1+fraction, int(exponent)-bias), nil
	}
}

// Parse decodes a 32-character binary string into its decimal value.
func Parse(input string) (float64, error) {
	fields, err := Split(input)
	if err != nil {
		return 0, err
	}
	return Decode(fields)
}

// MustParse is like Parse, but panics on error.
func MustParse(input string) float64 {
	v, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return v
}

func checkBits(bits string) error {
	for i, r := range bits {
		if r != '0' && r != '1' {
			return newPosError(fmt.Sprintf("unexpected symbol %q", r), i+1)
		}
	}
	return nil
}

func checkFields(fields Fields) error {
	for _, f := range []struct {
		name  string
		bits  string
		width int
	}{
		{"sign", fields.Sign, signBits},
		{"exponent", fields.Exponent, exponentBits},
		{"mantissa", fields.Mantissa, mantissaBits},
	} {
		if len(f.bits) != f.width {
			return fmt.Errorf("%s field must be %d bits long, got %d", f.name, f.width, len(f.bits))
		}
		if err := checkBits(f.bits); err != nil {
			return fmt.Errorf("bad %s field: %w", f.name, err)
		}
	}
	return nil
}

// parseUintBits accumulates bits as a big-endian unsigned integer.
func parseUintBits(bits string) uint64 {
	var acc uint64
	for i := 0; i < len(bits); i++ {
		acc = acc*2 + uint64(bits[i]-'0')
	}
	return acc
}

// parseFracBits accumulates bits as a fractional part after a binary point,
// the i-th bit weighing 2^-(i+1).
func parseFracBits(bits string) float64 {
	var acc float64
	factor := 0.5
	for i := 0; i < len(bits); i++ {
		acc += float64(bits[i]-'0') * factor
		factor /= 2
	}
	return acc
}
