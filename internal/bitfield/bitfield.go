// Package bitfield packs textual binary digits into machine words and
// extracts bit ranges from them.
package bitfield

import (
	"github.com/yyyoichi/bitstream-go"
)

// Pack packs a string of '0' and '1' characters into 64-bit words, the
// first character at the most significant position. Characters other than
// '1' are packed as zero bits.
func Pack(bits string) []uint64 {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := 0; i < len(bits); i++ {
		w.WriteBool(bits[i] == '1')
	}
	return w.Data()
}

// Slice returns 'width' bits starting at 'from' as a string of '0' and '1'
// characters. nbits is the total number of bits packed into words.
func Slice(words []uint64, nbits, from, width int) string {
	r := bitstream.NewBitReader(words, 0, 0)
	r.SetBits(nbits)
	buf := make([]byte, width)
	for i := range buf {
		bit, _ := r.ReadBitAt(from + i)
		if bit {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
