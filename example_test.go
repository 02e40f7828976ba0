// Copyright 2025 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"
)

func ExampleParse() {
	v, err := Parse("01000000010010010000111111011011")
	if err != nil {
		panic(err)
	}
	fmt.Println(Format(v))

	// Output:
	// 3.141593
}

func ExampleSplit() {
	fields, err := Split("00111111100000000000000000000000")
	if err != nil {
		panic(err)
	}
	fmt.Println(fields)

	v, err := Decode(fields)
	if err != nil {
		panic(err)
	}
	fmt.Println(Format(v))

	// Output:
	// Sign: 0 Exponent: 01111111 Mantissa: 00000000000000000000000
	// 1.000000
}

func ExampleDecode() {
	_, err := Decode(Fields{
		Sign:     "0",
		Exponent: "11111111",
		Mantissa: "00000000000000000000000",
	})
	fmt.Println(err)

	// Output:
	// infinity: not a finite number
}
