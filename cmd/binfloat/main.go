// Command binfloat converts 32-bit binary representations of IEEE 754
// single-precision numbers into decimal values.
//
// With no arguments it prompts for a single value on stdin:
//
//	$ binfloat
//	Insert the binary float: 01000000010010010000111111011011
//	Sign: 0 Exponent: 10000000 Mantissa: 10010010000111111011011
//	Result: 3.141593
//
// Otherwise, each command-line argument is converted the same way.
// Errors are printed to stderr and terminate the program with a non-zero
// exit code.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/avdva/binfloat"
)

func main() {
	log.SetFlags(0)
	args := os.Args[1:]
	if len(args) == 0 {
		args = append(args, readInput())
	}
	for _, arg := range args {
		fields, err := binfloat.Split(arg)
		if err != nil {
			log.Fatalf("%q: %v", arg, err)
		}
		fmt.Println(fields)
		v, err := binfloat.Decode(fields)
		if err != nil {
			log.Fatalf("%q: %v", arg, err)
		}
		fmt.Printf("Result: %s\n", binfloat.Format(v))
	}
}

func readInput() string {
	fmt.Print("Insert the binary float: ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			log.Fatalf("read error: %v", err)
		}
		log.Fatal("no input")
	}
	return strings.TrimSpace(scanner.Text())
}
