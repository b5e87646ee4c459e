// Package base16384 implements the Base16384 binary-to-text encoding,
// which packs 7 bytes of input into 4 CJK code points of 14 payload
// bits each.
//
// Every full 7-byte group becomes exactly 4 symbols in the range
// U+4E00..U+8DFE. A trailing partial group of 1-6 bytes is zero-padded,
// encoded, truncated to the symbols that carry data, and terminated by
// a padding code point in U+3D01..U+3D06 recording the remainder
// length, so arbitrary input lengths round-trip exactly.
//
// Two equivalent surfaces carry the same symbol stream: 16-bit code
// units ([]uint16, e.g. for UTF-16 output) and UTF-8 text where each
// symbol occupies exactly 3 bytes.
//
// Basic usage:
//
//	// 16-bit symbols
//	symbols := base16384.Encode(data)
//	decoded, err := base16384.Decode(symbols)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// UTF-8 text
//	text := base16384.EncodeUTF8(data)
//	decoded, err = base16384.DecodeUTF8(text)
//
// All functions are pure: they touch only their arguments, allocate
// nothing beyond the returned buffer, and are safe for concurrent use
// as long as callers do not share output buffers between invocations.
package base16384
