package base16384

import "fmt"

// The UTF-8 surface stores every symbol as a fixed 3-byte sequence
// [0xE0|hi4, 0x80|mid6, 0x80|lo6]: both the data and the padding code
// point ranges lie inside U+0800..U+FFFF. The transcoder works on these
// triplets directly, so the 14 payload bits are split as 8 high bits
// (carried biased by startHi across the first two UTF-8 bytes) and 6
// low bits (the third byte). START's low 6 bits are zero, which is what
// makes the split arithmetic exact.
const (
	symbolUTF8Len = 3
	groupUTF8Len  = symbolUTF8Len * groupSymbols

	startHi = START >> 6

	startUTF8Hi  = 0xE0 | byte(startHi>>6)
	startUTF8Mid = 0x80 | byte(startHi&0x3F)
	startUTF8Lo  = 0x80 | byte(START&0x3F)

	paddingUTF8Hi  = 0xE0 | byte(PaddingOffset>>12)
	paddingUTF8Mid = 0x80 | byte(PaddingOffset>>6&0x3F)
	paddingUTF8Lo  = 0x80 | byte(PaddingOffset&0x3F)
)

// EncodeUTF8Len returns the exact number of UTF-8 bytes produced by
// encoding dataLen bytes: three per symbol.
func EncodeUTF8Len(dataLen int) int {
	return EncodeLen(dataLen) * symbolUTF8Len
}

// DecodeUTF8Len returns the exact number of bytes produced by decoding
// dataLen bytes of Base16384 UTF-8 text whose trailing padding marker
// (if any) is padding. A padding value of 0 means no marker; use
// PaddingUTF8 to classify the last triplet.
//
// Panics if dataLen is not a multiple of 3, or if a non-zero padding
// value is outside the padding code point range.
func DecodeUTF8Len(dataLen int, padding uint16) int {
	if dataLen%symbolUTF8Len != 0 {
		panic(fmt.Sprintf("base16384: utf-8 length %d is not a multiple of 3", dataLen))
	}
	return DecodeLen(dataLen/symbolUTF8Len, padding)
}

// PaddingUTF8 classifies a trailing UTF-8 triplet. It returns the
// decoded code point and true if the triplet is well formed and is a
// padding code point, and 0 and false otherwise.
func PaddingUTF8(last [3]byte) (uint16, bool) {
	if last[0]&0xF0 != 0xE0 || last[1]&0xC0 != 0x80 || last[2]&0xC0 != 0x80 {
		return 0, false
	}
	c := uint16(last[0]&0x0F)<<12 | uint16(last[1]&0x3F)<<6 | uint16(last[2]&0x3F)
	return Padding(c)
}
