package base16384

import "fmt"

// EncodeLen returns the exact number of 16-bit symbols produced by
// encoding dataLen bytes.
//
// Each full 7-byte group yields 4 symbols. A remainder of r bytes
// yields r/2+1 data symbols plus one padding marker.
func EncodeLen(dataLen int) int {
	n := dataLen / groupSize * groupSymbols
	switch dataLen % groupSize {
	case 0:
		return n
	case 1:
		return n + 2
	case 2, 3:
		return n + 3
	case 4, 5:
		return n + 4
	case 6:
		return n + 5
	}
	panic("unreachable")
}

// DecodeLen returns the exact number of bytes produced by decoding
// dataLen symbols whose trailing padding marker (if any) is padding.
// A padding value of 0 means the stream ends in a data symbol; use
// Padding to classify the last symbol of a stream.
//
// Panics if a non-zero padding value is outside the padding code point
// range (see PaddingOffset).
func DecodeLen(dataLen int, padding uint16) int {
	r := 0
	if padding != 0 {
		if padding < PaddingOffset || padding >= PaddingOffset+7 {
			panic(fmt.Sprintf("base16384: padding 0x%04X out of range", padding))
		}
		r = int(padding - PaddingOffset)
		dataLen -= tailSymbols(r)
	}
	return dataLen/groupSymbols*groupSize + r
}

// Padding classifies a trailing symbol. It returns the symbol and true
// if it is a padding code point, and 0 and false otherwise.
func Padding(last uint16) (uint16, bool) {
	if last >= PaddingOffset && last < PaddingOffset+7 {
		return last, true
	}
	return 0, false
}
