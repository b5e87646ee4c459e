// Package base16384 implements the Base16384 wide-text encoding.
package base16384

// Version is the current version of the Go implementation.
const Version = "1.0.0"

const (
	// START is the first data code point. It is the character '一'
	// (U+4E00). A data symbol carries its 14 payload bits biased by
	// this constant.
	START uint16 = 0x4E00

	// PaddingOffset is the first padding code point. The padding code
	// points are "㴀㴁㴂㴃㴄㴅㴆" (U+3D00 to U+3D06); the low 3 bits of a
	// marker hold the remainder length.
	PaddingOffset uint16 = 0x3D00
)

// groupSize and groupSymbols define the fundamental bijection: 7 bytes
// (56 bits) pack into exactly 4 symbols of 14 bits.
const (
	groupSize    = 7
	groupSymbols = 4
)

// tailSymbols returns how many symbols the encoded tail occupies for a
// remainder of r bytes, including the trailing padding marker.
func tailSymbols(r int) int {
	switch r {
	case 0:
		return 1
	case 1:
		return 2
	case 2, 3:
		return 3
	case 4, 5:
		return 4
	case 6:
		return 5
	}
	panic("base16384: remainder out of range")
}
